package krypt

/*
constraints.go implements value constraints applied to a semantic
value before it is accepted by a constructor, grounded on the
teacher's constr.go/constr_on.go Constraint closures. Generic bounds
are expressed with golang.org/x/exp/constraints rather than the
standard library's constraints package, matching the teacher's
go.mod dependency.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Constraint validates a semantic value before it is accepted by a
// constructor (spec.md §6: constructors "may reject an out-of-range
// or malformed payload before a Value is ever built").
type Constraint func(any) error

// CheckConstraints runs x through every constraint in cs, stopping at
// the first failure.
func CheckConstraints(x any, cs []Constraint) error {
	for _, c := range cs {
		if err := c(x); err != nil {
			return err
		}
	}
	return nil
}

// Range builds a Constraint rejecting any *big.Int outside [min, max].
func Range[T constraints.Integer](min, max T) Constraint {
	lo, hi := big.NewInt(int64(min)), big.NewInt(int64(max))
	return func(x any) error {
		n, ok := x.(*big.Int)
		if !ok {
			return newSerializeError("Range constraint: value is not an INTEGER")
		}
		if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
			return newSerializeError("INTEGER value out of range [" + lo.String() + ", " + hi.String() + "]")
		}
		return nil
	}
}

// Unsigned rejects a negative *big.Int (spec.md §6: INTEGER
// constraints "may prohibit negative values for a given field").
func Unsigned(x any) error {
	n, ok := x.(*big.Int)
	if !ok {
		return newSerializeError("Unsigned constraint: value is not an INTEGER")
	}
	if n.Sign() < 0 {
		return newSerializeError("INTEGER: negative value where Unsigned constraint applies")
	}
	return nil
}

// Enumeration builds a Constraint accepting only the keys of enum.
func Enumeration[V any](enum map[int64]V) Constraint {
	return func(x any) error {
		n, ok := x.(*big.Int)
		if !ok {
			return newSerializeError("Enumeration constraint: value is not an INTEGER")
		}
		if !n.IsInt64() {
			return newSerializeError("ENUMERATED: value overflows platform int64")
		}
		if _, ok := enum[n.Int64()]; !ok {
			return newSerializeError("ENUMERATED: disallowed value " + n.String())
		}
		return nil
	}
}

// Union accepts a value if at least one of cs accepts it.
func Union(cs ...Constraint) Constraint {
	return func(x any) error {
		var last error
		for _, c := range cs {
			if err := c(x); err == nil {
				return nil
			} else {
				last = err
			}
		}
		if last == nil {
			last = newSerializeError("Union constraint: no alternatives supplied")
		}
		return last
	}
}

// Intersection accepts a value only if every constraint in cs accepts
// it.
func Intersection(cs ...Constraint) Constraint {
	return func(x any) error {
		for _, c := range cs {
			if err := c(x); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewConstrainedInteger builds an INTEGER Value like NewInteger, but
// validates the semantic *big.Int against cs first, rejecting the
// construction outright when any constraint fails (spec.md §6/§7).
func NewConstrainedInteger[T int | int64 | *big.Int](x T, cs []Constraint, opts ...TagOverride) (*Value, error) {
	var n *big.Int
	switch v := any(x).(type) {
	case *big.Int:
		n = v
	case int:
		n = big.NewInt(int64(v))
	case int64:
		n = big.NewInt(v)
	}
	if err := CheckConstraints(n, cs); err != nil {
		return nil, err
	}
	return NewInteger(x, opts...)
}
