package strview

// All searches are naive byte-wise scans, matching the semantics of the
// standard search functions being emulated. Backward scans run from the
// last feasible start down to 0 inclusive on signed indexes.

// StartsWith reports whether the view begins with prefix.
func (v View) StartsWith(prefix string) bool {
	if len(prefix) > v.Len() {
		return false
	}
	return v.matchAt(0, prefix)
}

// StartsWithByte reports whether the first byte is c.
func (v View) StartsWithByte(c byte) bool { return v.Len() > 0 && v.At(0) == c }

// EndsWith reports whether the view ends with suffix.
func (v View) EndsWith(suffix string) bool {
	off := v.Len() - len(suffix)
	if off < 0 {
		return false
	}
	return v.matchAt(off, suffix)
}

// EndsWithByte reports whether the last byte is c.
func (v View) EndsWithByte(c byte) bool { return v.Len() > 0 && v.At(v.Len()-1) == c }

// Contains reports whether sub occurs in the view.
func (v View) Contains(sub string) bool { return v.Find(sub) != Npos }

// ContainsByte reports whether c occurs in the view.
func (v View) ContainsByte(c byte) bool { return v.FindByte(c) != Npos }

// Find returns the index of the first occurrence of sub, or Npos. An
// empty sub matches at 0.
func (v View) Find(sub string) int {
	for i := 0; i+len(sub) <= v.Len(); i++ {
		if v.matchAt(i, sub) {
			return i
		}
	}
	return Npos
}

// FindByte returns the index of the first occurrence of c, or Npos.
func (v View) FindByte(c byte) int {
	for i := 0; i < v.Len(); i++ {
		if v.At(i) == c {
			return i
		}
	}
	return Npos
}

// RFind returns the start of the last occurrence of sub, or Npos. An
// empty sub matches at Len.
func (v View) RFind(sub string) int {
	for i := v.Len() - len(sub); i >= 0; i-- {
		if v.matchAt(i, sub) {
			return i
		}
	}
	return Npos
}

// RFindByte returns the index of the last occurrence of c, or Npos.
func (v View) RFindByte(c byte) int {
	for i := v.Len() - 1; i >= 0; i-- {
		if v.At(i) == c {
			return i
		}
	}
	return Npos
}

func (v View) matchAt(off int, sub string) bool {
	for j := 0; j < len(sub); j++ {
		if v.At(off+j) != sub[j] {
			return false
		}
	}
	return true
}

// FindFirstOf returns the first index whose byte is in set, or Npos.
func (v View) FindFirstOf(set string) int {
	for i := 0; i < v.Len(); i++ {
		if inSet(set, v.At(i)) {
			return i
		}
	}
	return Npos
}

// FindLastOf returns the last index whose byte is in set, or Npos.
func (v View) FindLastOf(set string) int {
	for i := v.Len() - 1; i >= 0; i-- {
		if inSet(set, v.At(i)) {
			return i
		}
	}
	return Npos
}

// FindFirstNotOf returns the first index whose byte is not in set, or
// Npos.
func (v View) FindFirstNotOf(set string) int {
	for i := 0; i < v.Len(); i++ {
		if !inSet(set, v.At(i)) {
			return i
		}
	}
	return Npos
}

// FindLastNotOf returns the last index whose byte is not in set, or
// Npos.
func (v View) FindLastNotOf(set string) int {
	for i := v.Len() - 1; i >= 0; i-- {
		if !inSet(set, v.At(i)) {
			return i
		}
	}
	return Npos
}

func inSet(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}
