package limine

import "unsafe"

// NewRequests returns a request block asking for base revision rev and the
// framebuffer list, in the state a kernel image carries before boot.
func NewRequests(rev uint64) Requests {
	return Requests{
		Start:        RequestsStartMarker{RequestsStartMagic0, RequestsStartMagic1, RequestsStartMagic2, RequestsStartMagic3},
		BaseRevision: BaseRevision{BaseRevisionMagic0, BaseRevisionMagic1, rev},
		Framebuffer: FramebufferRequest{
			ID: [4]uint64{CommonMagic0, CommonMagic1, FramebufferRequestID2, FramebufferRequestID3},
		},
		End: RequestsEndMarker{RequestsEndMagic0, RequestsEndMagic1},
	}
}

// Loader answers a request block the way a Limine loader does, for running
// the kernel path in a hosted process.
type Loader struct {
	// MaxRevision is the newest base revision the loader understands.
	MaxRevision uint64

	// Framebuffers is handed out in order. An empty list leaves the
	// framebuffer request unanswered.
	Framebuffers []*Framebuffer
}

// Answer patches r in place.
func (l *Loader) Answer(r *Requests) {
	if r.BaseRevision[2] <= l.MaxRevision {
		r.BaseRevision[1] = r.BaseRevision[2]
		r.BaseRevision[2] = 0
	}
	if len(l.Framebuffers) == 0 {
		return
	}
	r.Framebuffer.Response = &FramebufferResponse{
		Revision:         1,
		FramebufferCount: uint64(len(l.Framebuffers)),
		List:             unsafe.SliceData(l.Framebuffers),
	}
}

// NewFramebuffer describes pix as a 32bpp XRGB8888 framebuffer. pitch is in
// bytes.
func NewFramebuffer(pix []uint32, width, height, pitch uint64) *Framebuffer {
	return &Framebuffer{
		Address:        unsafe.Pointer(unsafe.SliceData(pix)),
		Width:          width,
		Height:         height,
		Pitch:          pitch,
		BPP:            32,
		MemoryModel:    MemoryModelRGB,
		RedMaskSize:    8,
		RedMaskShift:   16,
		GreenMaskSize:  8,
		GreenMaskShift: 8,
		BlueMaskSize:   8,
		BlueMaskShift:  0,
	}
}
