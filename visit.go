package compat

import (
	"fmt"
	"reflect"

	"github.com/acceleration3/compat-go/pkg/seq"
)

// Visitor is a dispatch table over a Set: one case per alternative,
// indexed by discriminant. Lookup is a single slice index, so a visit
// costs O(1) regardless of arity.
type Visitor[R any] struct {
	set   *Set
	cases []func(any) R
}

// VCase is one visitor case bound to an alternative type. Build with On.
type VCase[R any] struct {
	t  reflect.Type
	fn func(any) R
}

// On adapts a typed case function into a VCase. The assertion inside
// cannot fail at visit time: the table slot is only reached when V's
// discriminant is live.
func On[V any, R any](fn func(V) R) VCase[R] {
	return VCase[R]{
		t:  Alt[V](),
		fn: func(val any) R { return fn(val.(V)) },
	}
}

// NewVisitor builds a dispatch table for s. Cases may be given in any
// order, but the table must be total: exactly one case per alternative.
func NewVisitor[R any](s *Set, cases ...VCase[R]) (*Visitor[R], error) {
	if len(cases) != s.Len() {
		return nil, fmt.Errorf("%w: have %d cases, want %d", ErrArity, len(cases), s.Len())
	}
	table := make([]func(any) R, s.Len())
	for _, c := range cases {
		i, ok := s.index[c.t]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotAlternative, c.t)
		}
		if table[i] != nil {
			return nil, fmt.Errorf("%w: %s", ErrDupCase, c.t)
		}
		table[i] = c.fn
	}
	// every discriminant must map to exactly one case
	for _, i := range seq.Indexes(len(table)) {
		if table[i] == nil {
			return nil, fmt.Errorf("%w: no case for %s", ErrArity, s.alts[i])
		}
	}
	return &Visitor[R]{set: s, cases: table}, nil
}

// MustVisitor is NewVisitor panicking on error, for package-level tables.
func MustVisitor[R any](s *Set, cases ...VCase[R]) *Visitor[R] {
	vis, err := NewVisitor(s, cases...)
	if err != nil {
		panic(err)
	}
	return vis
}

// Visit invokes the case selected by v's discriminant.
func (vis *Visitor[R]) Visit(v Variant) (R, error) {
	if v.set != vis.set {
		var zero R
		return zero, ErrForeignSet
	}
	return vis.cases[v.idx](v.val), nil
}
