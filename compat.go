// Package compat provides small standard-library-adjacent value
// primitives: a closed tagged union with total visitation, plus
// non-owning view types under pkg/span and pkg/strview.
//
// The tagged union lives in this package. A Set fixes an ordered,
// closed list of alternative types once; a Variant then holds exactly
// one live alternative from its set, and the discriminant (the
// alternative's index in the set) always matches the stored value's
// type. Access is checked: asking for the wrong alternative returns
// ErrBadAccess instead of reinterpreting memory.
package compat

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/acceleration3/compat-go/pkg/seq"
)

var (
	ErrEmptySet       = errors.New("compat: alternative set is empty")
	ErrDupAlternative = errors.New("compat: duplicate alternative type")
	ErrNotAlternative = errors.New("compat: type is not an alternative")
	ErrBadAccess      = errors.New("compat: requested alternative is not live")
	ErrIndexRange     = errors.New("compat: alternative index out of range")
	ErrArity          = errors.New("compat: case count does not match alternative count")
	ErrDupCase        = errors.New("compat: duplicate case for alternative")
	ErrForeignSet     = errors.New("compat: variant belongs to a different set")
)

// Set is a closed, ordered list of distinct alternative types. The
// position of a type in the list is its discriminant.
type Set struct {
	alts  []reflect.Type
	index map[reflect.Type]int
}

// Alt returns the reflect.Type naming alternative V in a Set.
func Alt[V any]() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// NewSet builds a Set from the given alternatives in declaration order.
func NewSet(alts ...reflect.Type) (*Set, error) {
	if len(alts) == 0 {
		return nil, ErrEmptySet
	}
	s := &Set{alts: alts, index: make(map[reflect.Type]int, len(alts))}
	for _, i := range seq.Indexes(len(alts)) {
		t := alts[i]
		if _, ok := s.index[t]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDupAlternative, t)
		}
		s.index[t] = i
	}
	return s, nil
}

// MustSet is NewSet panicking on error, for package-level sets.
func MustSet(alts ...reflect.Type) *Set {
	s, err := NewSet(alts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of alternatives.
func (s *Set) Len() int { return len(s.alts) }

// Type returns the alternative type at discriminant i.
func (s *Set) Type(i int) (reflect.Type, error) {
	if i < 0 || i >= len(s.alts) {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	return s.alts[i], nil
}

// IndexOf returns the discriminant for t.
func (s *Set) IndexOf(t reflect.Type) (int, bool) {
	i, ok := s.index[t]
	return i, ok
}

// Variant holds exactly one live alternative from its Set. The zero
// Variant is not usable; construct through Set.New or Make.
type Variant struct {
	set *Set
	idx int
	val any
}

// New constructs a Variant from val, whose dynamic type must be one of
// the set's alternatives.
func (s *Set) New(val any) (Variant, error) {
	t := reflect.TypeOf(val)
	i, ok := s.index[t]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s", ErrNotAlternative, t)
	}
	return Variant{set: s, idx: i, val: val}, nil
}

// Make constructs a Variant holding alternative V. Unlike Set.New the
// alternative is chosen statically, so an interface-typed value cannot
// land in the wrong slot.
func Make[V any](s *Set, val V) (Variant, error) {
	i, ok := s.index[Alt[V]()]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s", ErrNotAlternative, Alt[V]())
	}
	return Variant{set: s, idx: i, val: val}, nil
}

// Assign replaces the live alternative with val and updates the
// discriminant. The previous value is dropped to the garbage collector.
func (v *Variant) Assign(val any) error {
	t := reflect.TypeOf(val)
	i, ok := v.set.index[t]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAlternative, t)
	}
	v.idx, v.val = i, val
	return nil
}

// Emplace stores a new value of alternative V into v.
func Emplace[V any](v *Variant, val V) error {
	i, ok := v.set.index[Alt[V]()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAlternative, Alt[V]())
	}
	v.idx, v.val = i, val
	return nil
}

// Index returns the discriminant of the live alternative.
func (v Variant) Index() int { return v.idx }

// Type returns the type of the live alternative.
func (v Variant) Type() reflect.Type { return v.set.alts[v.idx] }

// Get returns the live value as V. It fails with ErrBadAccess when V is
// not the live alternative; it never reinterprets the stored value.
func Get[V any](v Variant) (V, error) {
	var zero V
	i, ok := v.set.index[Alt[V]()]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotAlternative, Alt[V]())
	}
	if i != v.idx {
		return zero, fmt.Errorf("%w: want %s, live %s", ErrBadAccess, Alt[V](), v.Type())
	}
	return v.val.(V), nil
}

// MustGet is the opt-in unchecked-style access path: it panics instead
// of returning an error.
func MustGet[V any](v Variant) V {
	val, err := Get[V](v)
	if err != nil {
		panic(err)
	}
	return val
}

// At returns the live value by discriminant.
func (v Variant) At(i int) (any, error) {
	if i < 0 || i >= v.set.Len() {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	if i != v.idx {
		return nil, fmt.Errorf("%w: want index %d, live %d", ErrBadAccess, i, v.idx)
	}
	return v.val, nil
}
