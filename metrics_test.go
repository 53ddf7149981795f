package krypt

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherCounterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		var total float64
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestRegisterMetricsCountsDecodes(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := RegisterMetrics(reg); err != nil {
		t.Fatalf("RegisterMetrics: %v", err)
	}

	before := gatherCounterValue(t, reg, "krypt_decode_total")
	if _, err := Decode(NewMemoryReader([]byte{0x02, 0x01, 0x01})); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	after := gatherCounterValue(t, reg, "krypt_decode_total")
	if after != before+1 {
		t.Fatalf("krypt_decode_total = %v, want %v", after, before+1)
	}
}

func TestRegisterMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := RegisterMetrics(reg); err != nil {
		t.Fatalf("first RegisterMetrics: %v", err)
	}
	if err := RegisterMetrics(reg); err == nil {
		t.Fatalf("expected error re-registering the same collectors")
	}
}

func TestObserveTemplateParseIncrementsPerType(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := RegisterMetrics(reg); err != nil {
		t.Fatalf("RegisterMetrics: %v", err)
	}
	RegisterTemplate("metricsTestGreeting", &TemplateDefinition{
		Codec: CodecPrimitive, Type: TagPrintableString, Name: "Greeting",
	})
	var greeting string
	if _, err := ParseTemplate([]byte{0x13, 0x02, 'h', 'i'}, "metricsTestGreeting", &greeting); err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var found bool
	for _, f := range families {
		if f.GetName() != "krypt_template_parse_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "type" && l.GetValue() == "metricsTestGreeting" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatalf("expected a krypt_template_parse_total series labeled metricsTestGreeting")
	}
}
