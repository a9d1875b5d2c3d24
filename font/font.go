// Package font holds the compiled-in 8x8 bitmap font used by the boot
// screen. The table is plain static data so it can be read before any
// runtime initialization has happened.
package font

const (
	Width  = 8   // pixels per glyph row
	Height = 8   // rows per glyph
	Count  = 128 // ASCII code points covered
)

// Lookup returns the bitmap for c. Code points outside the ASCII range
// have no glyph and report ok == false.
//
//go:nosplit
func Lookup(c byte) (glyph [Height]byte, ok bool) {
	if c >= Count {
		return glyph, false
	}
	return Glyphs[c], true
}

// Lit reports whether column col of row is a foreground pixel.
//
//go:nosplit
func Lit(row byte, col int) bool {
	return row&(1<<uint(7-col)) != 0
}
