// Package strview provides a non-owning byte string view with
// substring-search semantics. Searches compare raw bytes; there is no
// encoding or locale awareness. "Not found" is always the Npos sentinel,
// never an error.
package strview

import (
	"unsafe"

	"github.com/acceleration3/compat-go/internal/common"
	"github.com/acceleration3/compat-go/pkg/span"
)

// Npos is returned by searches when nothing matched. It is negative, so
// it can never collide with a valid index.
const Npos = -1

// View is a non-owning view over byte string data. It composes a byte
// span rather than deriving from it, keeping the storage fields private.
type View struct {
	sp span.Span[byte]
}

// New aliases the string's bytes without copying. Strings are immutable,
// so the resulting view is read-only by construction; it stays valid as
// long as s is reachable.
func New(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{sp: span.New(unsafe.Slice(unsafe.StringData(s), len(s)))}
}

// FromBytes views a caller-owned byte slice. Mutations of b remain
// visible through the view.
func FromBytes(b []byte) View { return View{sp: span.New(b)} }

// FromSpan converts a generic byte view.
func FromSpan(sp span.Span[byte]) View { return View{sp: sp} }

// Len returns the byte count.
func (v View) Len() int { return v.sp.Len() }

// IsEmpty reports whether the view has no bytes.
func (v View) IsEmpty() bool { return v.sp.IsEmpty() }

// Data returns the address of the first byte, nil when empty.
func (v View) Data() *byte { return v.sp.Data() }

// At returns the byte at index i.
func (v View) At(i int) byte { return *v.sp.At(i) }

// Span converts to the generic view type.
func (v View) Span() span.Span[byte] { return v.sp }

// String returns an owned copy of the viewed bytes.
func (v View) String() string { return string(v.sp.Slice()) }

// Substr returns a subview starting at off. n is clamped to the
// remaining length, and Npos means "to the end", as with the substr
// being emulated. An out-of-range off panics like slicing.
func (v View) Substr(off, n int) View {
	rem := v.Len() - off
	if n == Npos {
		n = rem
	}
	n = common.Clamp(n, 0, rem)
	return View{sp: v.sp.Sub(off, n)}
}

// Take moves the view out of v, leaving v empty.
func (v *View) Take() View { return View{sp: v.sp.Take()} }

// Equal reports byte-wise equality of two views.
func Equal(a, b View) bool { return span.Equal(a.sp, b.sp) }

// Compare three-way compares lexicographically: negative when v orders
// before o, zero when equal, positive otherwise. A strict prefix orders
// before the longer string.
func (v View) Compare(o View) int {
	n := common.Min(v.Len(), o.Len())
	for i := 0; i < n; i++ {
		a, b := v.At(i), o.At(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	switch {
	case v.Len() < o.Len():
		return -1
	case v.Len() > o.Len():
		return 1
	}
	return 0
}
