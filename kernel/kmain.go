// Package kernel is the boot-time composition driver: it validates the
// loader's handoff, clears the first framebuffer and draws the boot screen.
package kernel

import (
	"stormy/cpu"
	"stormy/limine"
	"stormy/raster"
)

// BaseRevision is the Limine base revision this kernel is built against.
const BaseRevision = 3

// requests is read and patched by the loader before Kmain runs. It must stay
// a constant composite literal so no initialization code is needed.
var requests = limine.Requests{
	Start: limine.RequestsStartMarker{
		limine.RequestsStartMagic0, limine.RequestsStartMagic1,
		limine.RequestsStartMagic2, limine.RequestsStartMagic3,
	},
	BaseRevision: limine.BaseRevision{limine.BaseRevisionMagic0, limine.BaseRevisionMagic1, BaseRevision},
	Framebuffer: limine.FramebufferRequest{
		ID: [4]uint64{
			limine.CommonMagic0, limine.CommonMagic1,
			limine.FramebufferRequestID2, limine.FramebufferRequestID3,
		},
		Revision: 0,
	},
	End: limine.RequestsEndMarker{limine.RequestsEndMagic0, limine.RequestsEndMagic1},
}

// halt is swapped out by tests.
var halt = cpu.Halt

// Kmain is invoked by the out-of-tree rt0 stub once a stack is available.
// It never returns on real hardware: a failed handoff and a finished boot
// screen both end in halt.
//
//go:noinline
func Kmain() {
	// The error only matters to hosted callers of Boot; here both outcomes halt.
	_ = Boot(&requests)
	halt()
}

// Boot validates r and, if it is usable, renders the boot screen into the
// first framebuffer. No pixel is touched when an error is returned.
//
//go:nosplit
func Boot(r *limine.Requests) error {
	fb, err := Validate(r)
	if err != nil {
		return err
	}
	Render(fb, DefaultColorScheme)
	return nil
}

// Validate checks the loader's answers and returns the framebuffer to draw
// into. Only the first framebuffer is ever used.
//
//go:nosplit
func Validate(r *limine.Requests) (*limine.Framebuffer, error) {
	if !r.BaseRevision.Supported() {
		return nil, ErrUnsupportedRevision
	}
	fb := r.FirstFramebuffer()
	if fb == nil {
		return nil, ErrNoFramebuffer
	}
	return fb, nil
}

// Render clears fb to the scheme's background and draws Art over it. The
// framebuffer is assumed to be 32 bits per pixel.
//
//go:nosplit
func Render(fb *limine.Framebuffer, scheme ColorScheme) {
	s := raster.Surface{
		Base:   fb.Address,
		Width:  uint32(fb.Width),
		Height: uint32(fb.Height),
		Pitch:  uint32(fb.Pitch),
		Mode:   raster.Trusted,
	}
	s.Clear(scheme.Background)
	for i := range Art {
		s.DrawString(scheme.Text, Art[i], ArtX, ArtY+uint32(i)*raster.CharHeight)
	}
}
