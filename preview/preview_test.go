package preview

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	stormyfont "stormy/font"
	"stormy/kernel"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "default pitch", cfg: Config{Width: 640, Height: 480}},
		{name: "padded pitch", cfg: Config{Width: 600, Height: 100, Pitch: 2432}},
		{name: "too narrow", cfg: Config{Width: 100, Height: 480}, wantErr: "smaller than the boot screen"},
		{name: "too short", cfg: Config{Width: 640, Height: 10}, wantErr: "smaller than the boot screen"},
		{name: "odd pitch", cfg: Config{Width: 640, Height: 480, Pitch: 2562}, wantErr: "not a multiple"},
		{name: "short pitch", cfg: Config{Width: 640, Height: 480, Pitch: 2000}, wantErr: "shorter than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBootFrame(t *testing.T) {
	f, err := Boot(Config{Width: 640, Height: 120, Pitch: 640*4 + 64})
	if err != nil {
		t.Fatalf("Boot() error = %v", err)
	}
	if f.Lit() == 0 {
		t.Fatal("boot screen has no lit pixels")
	}
	if got := f.At(0, 0); got != kernel.Black {
		t.Errorf("corner = 0x%08x, want black", got)
	}

	img := f.Image()
	if img.Bounds() != image.Rect(0, 0, 640, 120) {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	lit := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 640; x++ {
			o := img.PixOffset(x, y)
			if img.Pix[o+3] != 0xFF {
				t.Fatalf("pixel (%d,%d) not opaque", x, y)
			}
			if img.Pix[o] != 0 {
				lit++
			}
		}
	}
	if lit != f.Lit() {
		t.Errorf("image lit pixels = %d, frame lit pixels = %d", lit, f.Lit())
	}
}

func TestImageSwizzle(t *testing.T) {
	f := &Frame{Width: 2, Height: 1, Pitch: 16, Pix: []uint32{0x00112233, 0x00AABBCC, 0xFFFFFFFF, 0xFFFFFFFF}}
	img := f.Image()
	want := []uint8{0x11, 0x22, 0x33, 0xFF, 0xAA, 0xBB, 0xCC, 0xFF}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Pix = % x, want % x", img.Pix, want)
	}
}

func TestLabelClips(t *testing.T) {
	f, err := Boot(Config{Width: kernel.MinWidth, Height: kernel.MinHeight + 16})
	if err != nil {
		t.Fatalf("Boot() error = %v", err)
	}
	before := f.Lit()
	f.Label(strings.Repeat("#", 200), kernel.White)
	if f.Lit() <= before {
		t.Errorf("label drew nothing")
	}
}

func TestRawRoundTrip(t *testing.T) {
	f, err := Boot(Config{Width: kernel.MinWidth, Height: kernel.MinHeight})
	if err != nil {
		t.Fatalf("Boot() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteRaw(&buf, f); err != nil {
		t.Fatalf("WriteRaw() error = %v", err)
	}
	if want := 8 + 4*f.Width*f.Height; buf.Len() != want {
		t.Fatalf("dump is %d bytes, want %d", buf.Len(), want)
	}

	img, err := ReadRaw(&buf)
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := img.NRGBAAt(x, y)
			want := f.At(x, y)
			got := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			if got != want&0x00FFFFFF || c.A != 0xFF {
				t.Fatalf("(%d,%d) = %v, want 0x%06x opaque", x, y, c, want)
			}
		}
	}
}

func TestReadRawTruncated(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{name: "short header", data: []byte{1, 0, 0, 0, 1, 0}, wantErr: "read height"},
		{name: "huge dimensions", data: bytes.Repeat([]byte{0xFF}, 8), wantErr: "limit is"},
		{name: "just over the limit", data: []byte{0x00, 0x00, 0x00, 0x04, 0x02, 0x00, 0x00, 0x00}, wantErr: "limit is"},
		{name: "missing pixels", data: []byte{2, 0, 0, 0, 2, 0, 0, 0, 0xFF}, wantErr: "read row 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRaw(bytes.NewReader(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ReadRaw() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	f, err := Boot(Config{Width: kernel.MinWidth, Height: kernel.MinHeight, Pitch: kernel.MinWidth*4 + 32})
	if err != nil {
		t.Fatalf("Boot() error = %v", err)
	}
	var buf bytes.Buffer
	if err := WriteRaw(&buf, f); err != nil {
		t.Fatalf("WriteRaw() error = %v", err)
	}
	img, err := ReadRaw(&buf)
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}

	got := FromImage(img)
	if got.Width != f.Width || got.Height != f.Height {
		t.Fatalf("geometry = %dx%d, want %dx%d", got.Width, got.Height, f.Width, f.Height)
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if got.At(x, y) != f.At(x, y) {
				t.Fatalf("(%d,%d) = 0x%08x, want 0x%08x", x, y, got.At(x, y), f.At(x, y))
			}
		}
	}
	if got.Lit() != f.Lit() {
		t.Errorf("lit = %d, want %d", got.Lit(), f.Lit())
	}
}

func TestRenderPNG(t *testing.T) {
	f, err := Boot(Config{Width: kernel.MinWidth, Height: kernel.MinHeight})
	if err != nil {
		t.Fatalf("Boot() error = %v", err)
	}

	var buf bytes.Buffer
	if err := RenderPNG(&buf, f, 2, "stormy"); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	wantH := 2*f.Height + stormyfont.Height + 2*captionPad
	if b := img.Bounds(); b.Dx() != 2*f.Width || b.Dy() != wantH {
		t.Fatalf("png bounds = %v, want %dx%d", b, 2*f.Width, wantH)
	}

	// Each lit framebuffer pixel becomes a 2x2 block.
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, _, _, _ := img.At(2*x+1, 2*y+1).RGBA()
			if lit := f.At(x, y) != 0; lit != (r > 0) {
				t.Fatalf("scaled pixel for (%d,%d) lit = %v, want %v", x, y, r > 0, lit)
			}
		}
	}

	// The caption strip must carry some ink.
	ink := false
	for y := 2 * f.Height; y < wantH && !ink; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				ink = true
				break
			}
		}
	}
	if !ink {
		t.Error("caption strip is blank")
	}
}

func TestRenderPNGRejectsScale(t *testing.T) {
	f := &Frame{Width: 1, Height: 1, Pitch: 4, Pix: []uint32{0}}
	if err := RenderPNG(&bytes.Buffer{}, f, 0, ""); err == nil {
		t.Error("RenderPNG() accepted scale 0")
	}
}

func TestFaceMatchesGlyphTable(t *testing.T) {
	face := NewFace()
	defer face.Close()

	dot := fixed.P(10, 20)
	dr, mask, maskp, advance, ok := face.Glyph(dot, 'A')
	if !ok {
		t.Fatal("Glyph('A') not ok")
	}
	if advance != fixed.I(9) {
		t.Errorf("advance = %v, want 9px", advance)
	}
	if dr != image.Rect(10, 13, 18, 21) {
		t.Errorf("dr = %v", dr)
	}
	for row := 0; row < stormyfont.Height; row++ {
		for col := 0; col < stormyfont.Width; col++ {
			_, _, _, a := mask.At(maskp.X+col, maskp.Y+row).RGBA()
			if want := stormyfont.Lit(stormyfont.Glyphs['A'][row], col); (a > 0) != want {
				t.Errorf("mask (%d,%d) = %v, want %v", col, row, a > 0, want)
			}
		}
	}

	if _, _, _, _, ok := face.Glyph(dot, 'é'); ok {
		t.Error("Glyph('é') ok for non-ascii rune")
	}
	if got := font.MeasureString(face, "abc"); got != fixed.I(27) {
		t.Errorf("MeasureString = %v, want 27px", got)
	}
}

func TestShowSinglePixel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	f := &Frame{Width: 4, Height: 4, Pitch: 16, Pix: make([]uint32, 16)}
	f.Pix[2*4+1] = kernel.White // (1, 2): bottom half row, top of cell row 1
	Show(screen, f)

	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	for cy := 0; cy < 2; cy++ {
		for cx := 0; cx < 4; cx++ {
			mainc, _, style, _ := screen.GetContent(cx, cy)
			if mainc != halfBlock {
				t.Fatalf("cell (%d,%d) = %q, want half block", cx, cy, mainc)
			}
			fg := black
			if cx == 1 && cy == 1 {
				fg = white
			}
			if want := tcell.StyleDefault.Foreground(fg).Background(black); style != want {
				t.Errorf("cell (%d,%d) style = %v, want %v", cx, cy, style, want)
			}
		}
	}
}

func TestShowDownsamples(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(2, 1)

	f := &Frame{Width: 8, Height: 8, Pitch: 32, Pix: make([]uint32, 64)}
	f.Pix[6*8+5] = kernel.White // block (1, bottom) at step 4
	Show(screen, f)

	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	_, _, left, _ := screen.GetContent(0, 0)
	_, _, right, _ := screen.GetContent(1, 0)
	if want := tcell.StyleDefault.Foreground(black).Background(black); left != want {
		t.Errorf("left cell style = %v, want %v", left, want)
	}
	if want := tcell.StyleDefault.Foreground(black).Background(white); right != want {
		t.Errorf("right cell style = %v, want %v", right, want)
	}
}
