package krypt

/*
metrics.go implements opt-in decode/encode metrics, grounded on
zoomoid-go-ipfix's metrics.go package-level prometheus collectors. The
collectors exist and accumulate from the moment this package is
imported (cheap, unexported-registry no-ops until registered), but are
never attached to any prometheus.Registerer unless the caller calls
RegisterMetrics — so a program that never asks for metrics pays no
observability cost beyond a few counter increments.
*/

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	decodeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "krypt_decode_total",
		Help: "Total number of top-level Decode calls.",
	})
	decodeErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "krypt_decode_errors_total",
		Help: "Total number of Decode calls that returned an error.",
	})
	encodeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "krypt_encode_total",
		Help: "Total number of top-level Encode/ToBytes calls.",
	})
	encodeErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "krypt_encode_errors_total",
		Help: "Total number of Encode/ToBytes calls that returned an error.",
	})
	decodeDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "krypt_decode_duration_seconds",
		Help:    "Wall-clock duration of a top-level Decode call.",
		Buckets: prometheus.DefBuckets,
	})
	templateParseTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "krypt_template_parse_total",
		Help: "Total number of ParseTemplate calls per registered type name.",
	}, []string{"type"})
)

// RegisterMetrics attaches this package's collectors to reg. Callers
// that want /metrics exposure call this once against their own
// registry (or prometheus.DefaultRegisterer); callers that never call
// it get the same Decode/Encode behavior with the collectors simply
// uncollected.
func RegisterMetrics(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		decodeTotal, decodeErrorsTotal, encodeTotal, encodeErrorsTotal,
		decodeDurationSeconds, templateParseTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func observeDecode(start time.Time, err error) {
	decodeTotal.Inc()
	decodeDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		decodeErrorsTotal.Inc()
	}
}

func observeEncode(err error) {
	encodeTotal.Inc()
	if err != nil {
		encodeErrorsTotal.Inc()
	}
}

func observeTemplateParse(typeName string) {
	templateParseTotal.WithLabelValues(typeName).Inc()
}
