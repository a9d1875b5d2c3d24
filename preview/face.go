package preview

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	stormyfont "stormy/font"
	"stormy/raster"
)

// Face exposes the boot font as a font.Face, so the glyphs the kernel
// draws can be used anywhere x/image text drawing is accepted.
type Face struct {
	atlas *image.Alpha
}

var _ font.Face = (*Face)(nil)

const (
	faceAscent  = 7
	faceDescent = stormyfont.Height - faceAscent
	faceAdvance = raster.CharWidth + raster.CharSpacing
)

// NewFace builds the glyph atlas: glyph c occupies rows 8c..8c+7.
func NewFace() *Face {
	atlas := image.NewAlpha(image.Rect(0, 0, stormyfont.Width, stormyfont.Height*stormyfont.Count))
	for c := 0; c < stormyfont.Count; c++ {
		for row := 0; row < stormyfont.Height; row++ {
			bits := stormyfont.Glyphs[c][row]
			for col := 0; col < stormyfont.Width; col++ {
				if stormyfont.Lit(bits, col) {
					atlas.Pix[atlas.PixOffset(col, c*stormyfont.Height+row)] = 0xFF
				}
			}
		}
	}
	return &Face{atlas: atlas}
}

// Close implements font.Face.
func (f *Face) Close() error { return nil }

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	if r < 0 || r >= stormyfont.Count {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor()
	y := dot.Y.Floor()
	dr = image.Rect(x, y-faceAscent, x+stormyfont.Width, y+faceDescent)
	return dr, f.atlas, image.Pt(0, int(r)*stormyfont.Height), fixed.I(faceAdvance), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if r < 0 || r >= stormyfont.Count {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(0, -faceAscent, stormyfont.Width, faceDescent)
	return bounds, fixed.I(faceAdvance), true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if r < 0 || r >= stormyfont.Count {
		return 0, false
	}
	return fixed.I(faceAdvance), true
}

// Kern implements font.Face. The boot font is monospaced.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(stormyfont.Height),
		Ascent:     fixed.I(faceAscent),
		Descent:    fixed.I(faceDescent),
		XHeight:    fixed.I(5),
		CapHeight:  fixed.I(faceAscent),
		CaretSlope: image.Pt(0, 1),
	}
}
