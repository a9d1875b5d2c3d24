package preview

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	stormyfont "stormy/font"
)

const captionPad = 4

// RenderPNG encodes the frame, enlarged scale times with nearest-neighbour
// sampling, to w. A non-empty caption is set in the boot font on a strip
// below the image.
func RenderPNG(w io.Writer, f *Frame, scale int, caption string) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	src := f.Image()
	sw, sh := f.Width*scale, f.Height*scale

	strip := 0
	if caption != "" {
		strip = stormyfont.Height + 2*captionPad
	}

	scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	dc := gg.NewContext(sw, sh+strip)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.DrawImage(scaled, 0, 0)

	if caption != "" {
		dc.SetFontFace(NewFace())
		dc.SetRGB(1, 1, 1)
		dc.DrawString(caption, captionPad, float64(sh+captionPad+faceAscent))
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
