// Package raster draws the boot font into a linear 32-bit framebuffer.
//
// Pixels are addressed as 32-bit words: the word for (x, y) lives at
// y*(pitch/4) + x. The package never allocates and never reads the
// framebuffer, so it is safe to run before the Go runtime is initialized.
package raster

import (
	"unsafe"

	"stormy/font"
)

// Glyph cell geometry. The pen advances CharWidth+CharSpacing pixels per
// character.
const (
	CharWidth   = font.Width
	CharHeight  = font.Height
	CharSpacing = 1

	BytesPerPixel = 4
)

// Mode selects how out-of-range coordinates are treated.
type Mode uint8

const (
	// Trusted performs no bounds checks. Coordinates outside the surface
	// write wherever the address formula lands. This is the default.
	Trusted Mode = iota

	// Checked silently clips any pixel outside Width x Height.
	Checked
)

// Surface describes a linear framebuffer of 32-bit pixels.
type Surface struct {
	Base   unsafe.Pointer // first pixel
	Width  uint32         // visible pixels per scanline
	Height uint32         // visible scanlines
	Pitch  uint32         // bytes per scanline, a multiple of 4
	Mode   Mode
}

// NewSurface wraps buf as a surface of the given geometry. pitch is in
// bytes. It is intended for hosted callers that own their pixel memory.
//
// The visible area is shrunk to what buf and pitch can hold: Width is
// capped at pitch/4 pixels and Height at the number of complete scanlines in
// buf, so a Checked surface never writes outside buf.
func NewSurface(buf []uint32, width, height, pitch uint32, mode Mode) *Surface {
	stride := uint64(pitch / BytesPerPixel)
	if uint64(width) > stride {
		width = uint32(stride)
	}

	// Scanline y is addressable when y*stride+width words fit in buf.
	n := uint64(len(buf))
	switch {
	case width == 0 || n < uint64(width):
		height = 0
	case stride > 0:
		if rows := (n-uint64(width))/stride + 1; rows < uint64(height) {
			height = uint32(rows)
		}
	}

	return &Surface{
		Base:   unsafe.Pointer(unsafe.SliceData(buf)),
		Width:  width,
		Height: height,
		Pitch:  pitch,
		Mode:   mode,
	}
}

// Stride returns the number of 32-bit words per scanline.
//
//go:nosplit
func (s *Surface) Stride() uint32 {
	return s.Pitch / BytesPerPixel
}

// WritePixel stores color at (x, y)
// x, y: pixel coordinates
// color: 32-bit XRGB8888 value, written verbatim
//
// A Trusted surface writes wherever the address lands; a Checked surface
// drops pixels outside Width x Height.
//
//go:nosplit
func (s *Surface) WritePixel(x, y uint32, color uint32) {
	// Bounds check
	if s.Mode == Checked && (x >= s.Width || y >= s.Height) {
		return
	}

	// Calculate word index
	// Each row is Pitch bytes, each pixel one 32-bit word
	idx := uintptr(y)*uintptr(s.Stride()) + uintptr(x)

	// Write pixel
	*(*uint32)(unsafe.Add(s.Base, idx*BytesPerPixel)) = color
}

// ClearRect fills a width x height rectangle at (x, y) with color.
//
//go:nosplit
func (s *Surface) ClearRect(x, y, width, height uint32, color uint32) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			s.WritePixel(px, py, color)
		}
	}
}

// Clear fills every visible pixel with color. Padding bytes between Width*4
// and Pitch are left alone.
//
//go:nosplit
func (s *Surface) Clear(color uint32) {
	s.ClearRect(0, 0, s.Width, s.Height, color)
}

// DrawGlyph draws code point c with its top-left corner at (x, y). Only
// foreground bits are written; the rest of the cell keeps its contents.
// color: foreground color
// c: ASCII code point; anything above 127 draws nothing
// x, y: top-left pixel of the glyph cell
//
//go:nosplit
func (s *Surface) DrawGlyph(color uint32, c byte, x, y uint32) {
	// Get bitmap for this character
	glyph, ok := font.Lookup(c)
	if !ok {
		return // Out of range
	}

	// Render each row
	for row := 0; row < CharHeight; row++ {
		bits := glyph[row]
		if bits == 0 {
			continue // Blank row
		}

		// Bit 7 is the leftmost pixel; background bits are skipped
		for col := 0; col < CharWidth; col++ {
			if font.Lit(bits, col) {
				s.WritePixel(x+uint32(col), y+uint32(row), color)
			}
		}
	}
}

// DrawString draws text left to right starting at (x, y). Every byte
// advances the pen, including bytes that have no glyph. There is no
// wrapping.
//
//go:nosplit
func (s *Surface) DrawString(color uint32, text string, x, y uint32) {
	for i := 0; i < len(text); i++ {
		s.DrawGlyph(color, text[i], x, y)
		x += CharWidth + CharSpacing
	}
}

// DrawGlyph draws c into the framebuffer at fb with the given pitch in
// bytes, without bounds checks.
//
//go:nosplit
func DrawGlyph(fb unsafe.Pointer, pitch uint32, color uint32, c byte, x, y uint32) {
	s := Surface{Base: fb, Pitch: pitch}
	s.DrawGlyph(color, c, x, y)
}

// DrawString draws text into the framebuffer at fb with the given pitch in
// bytes, without bounds checks.
//
//go:nosplit
func DrawString(fb unsafe.Pointer, pitch uint32, color uint32, text string, x, y uint32) {
	s := Surface{Base: fb, Pitch: pitch}
	s.DrawString(color, text, x, y)
}
