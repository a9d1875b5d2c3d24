// Package preview runs the boot path in an ordinary process and turns the
// resulting framebuffer into something viewable: an image, a raw dump, or a
// terminal rendering.
package preview

import (
	"fmt"
	"image"
	"unsafe"

	"stormy/kernel"
	"stormy/limine"
	"stormy/mem"
	"stormy/raster"
)

// Config is the geometry of the emulated framebuffer.
type Config struct {
	Width  int
	Height int
	Pitch  int // bytes per scanline; 0 means Width*4
}

func (c Config) pitch() int {
	if c.Pitch == 0 {
		return c.Width * raster.BytesPerPixel
	}
	return c.Pitch
}

// Validate reports geometry the kernel cannot draw into.
func (c Config) Validate() error {
	if c.Width < kernel.MinWidth || c.Height < kernel.MinHeight {
		return fmt.Errorf("framebuffer %dx%d is smaller than the boot screen (%dx%d)",
			c.Width, c.Height, kernel.MinWidth, kernel.MinHeight)
	}
	p := c.pitch()
	if p%raster.BytesPerPixel != 0 {
		return fmt.Errorf("pitch %d is not a multiple of %d", p, raster.BytesPerPixel)
	}
	if p < c.Width*raster.BytesPerPixel {
		return fmt.Errorf("pitch %d is shorter than a %d pixel scanline", p, c.Width)
	}
	return nil
}

// Frame is a booted framebuffer held in process memory.
type Frame struct {
	Width  int
	Height int
	Pitch  int
	Pix    []uint32
}

// Boot allocates a framebuffer, hands it to the kernel through an emulated
// loader and returns it once the boot screen is drawn.
func Boot(cfg Config) (*Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pitch := cfg.pitch()
	pix := make([]uint32, pitch/raster.BytesPerPixel*cfg.Height)
	fb := limine.NewFramebuffer(pix, uint64(cfg.Width), uint64(cfg.Height), uint64(pitch))

	r := limine.NewRequests(kernel.BaseRevision)
	loader := &limine.Loader{MaxRevision: kernel.BaseRevision, Framebuffers: []*limine.Framebuffer{fb}}
	loader.Answer(&r)

	if err := kernel.Boot(&r); err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	return &Frame{Width: cfg.Width, Height: cfg.Height, Pitch: pitch, Pix: pix}, nil
}

// FromImage builds a frame holding img's pixels as XRGB8888 words, so a
// dump read back with ReadRaw can be rendered like a booted frame.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := &Frame{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pitch:  b.Dx() * raster.BytesPerPixel,
		Pix:    make([]uint32, b.Dx()*b.Dy()),
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			f.Pix[y*f.Width+x] = (r>>8)<<16 | (g>>8)<<8 | bl>>8
		}
	}
	return f
}

// At returns the XRGB8888 word at (x, y).
func (f *Frame) At(x, y int) uint32 {
	return f.Pix[y*(f.Pitch/raster.BytesPerPixel)+x]
}

// Image converts the visible part of the frame to an opaque RGBA image.
// Each scanline is copied out of the framebuffer before being swizzled, so
// pitch padding never reaches the image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	line := make([]byte, f.Width*raster.BytesPerPixel)
	base := unsafe.Pointer(unsafe.SliceData(f.Pix))

	for y := 0; y < f.Height; y++ {
		src := unsafe.Add(base, y*f.Pitch)
		mem.Copy(unsafe.Pointer(unsafe.SliceData(line)), src, uintptr(len(line)))

		dst := img.Pix[y*img.Stride:]
		for x := 0; x < f.Width; x++ {
			// Little-endian XRGB8888 is B, G, R, X in memory.
			b, g, r := line[4*x], line[4*x+1], line[4*x+2]
			dst[4*x] = r
			dst[4*x+1] = g
			dst[4*x+2] = b
			dst[4*x+3] = 0xFF
		}
	}
	return img
}

// Lit counts pixels that are not black.
func (f *Frame) Lit() int {
	n := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y)&0x00FFFFFF != 0 {
				n++
			}
		}
	}
	return n
}

// Label draws text in the boot font along the bottom-left edge of the
// frame. Anything past the right edge is clipped.
func (f *Frame) Label(text string, color uint32) {
	s := raster.NewSurface(f.Pix, uint32(f.Width), uint32(f.Height), uint32(f.Pitch), raster.Checked)
	s.DrawString(color, text, raster.CharSpacing, uint32(f.Height-raster.CharHeight-raster.CharSpacing))
}
