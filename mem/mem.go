// Package mem provides the byte-wise memory routines a freestanding kernel
// needs when no runtime support is available. The routines operate on raw
// pointers and never allocate.
package mem

import "unsafe"

// Copy copies n bytes from src to dest and returns dest. The regions must
// not overlap; use Move when they might.
//
//go:nosplit
func Copy(dest, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Add(dest, i)) = *(*byte)(unsafe.Add(src, i))
	}
	return dest
}

// Fill stores the low 8 bits of value into each of the n bytes at dest and
// returns dest.
//
//go:nosplit
func Fill(dest unsafe.Pointer, value int, n uintptr) unsafe.Pointer {
	b := byte(value)
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Add(dest, i)) = b
	}
	return dest
}

// Move copies n bytes from src to dest, handling overlapping regions, and
// returns dest. Identical pointers are a no-op.
//
//go:nosplit
func Move(dest, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	d, s := uintptr(dest), uintptr(src)
	switch {
	case s == d:
		// Nothing to do.
	case s > d:
		// Forward copy
		for i := uintptr(0); i < n; i++ {
			*(*byte)(unsafe.Add(dest, i)) = *(*byte)(unsafe.Add(src, i))
		}
	default:
		// src precedes dest: walk from the end so unread source bytes are
		// not clobbered.
		for i := n; i > 0; i-- {
			*(*byte)(unsafe.Add(dest, i-1)) = *(*byte)(unsafe.Add(src, i-1))
		}
	}
	return dest
}

// Compare compares n bytes of a and b as unsigned values.
// Parameters:
//   - a, b: the regions to compare
//   - n: number of bytes
//
// Returns -1 or 1 according to the first differing pair, or 0 if all n
// bytes match.
//
//go:nosplit
func Compare(a, b unsafe.Pointer, n uintptr) int {
	for i := uintptr(0); i < n; i++ {
		x := *(*byte)(unsafe.Add(a, i))
		y := *(*byte)(unsafe.Add(b, i))
		if x != y {
			// First difference decides
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}
