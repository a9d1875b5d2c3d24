// Package limine describes the records exchanged with a Limine-compatible
// boot loader. The Go types mirror the C layout of the protocol structures
// so a single statically initialized Requests value can be read and patched
// by the loader before control reaches the kernel.
package limine

import "unsafe"

// Protocol magic values.
const (
	CommonMagic0 = 0xc7b1dd30df4c8b88
	CommonMagic1 = 0x0a82e883a194f07b

	BaseRevisionMagic0 = 0xf9562b2d5c95a6c8
	BaseRevisionMagic1 = 0x6a7b384944536bdc

	FramebufferRequestID2 = 0x9d5827dcd881dd75
	FramebufferRequestID3 = 0xa3148604f6fab11b

	RequestsStartMagic0 = 0xf6b8f4b39de7d1ae
	RequestsStartMagic1 = 0xfab91a6940fcb9cf
	RequestsStartMagic2 = 0x785c6ed015d3e316
	RequestsStartMagic3 = 0x181e920a7852b9d9

	RequestsEndMagic0 = 0xadc0e0531bb10d03
	RequestsEndMagic1 = 0x9572709f31764c62
)

// MemoryModelRGB is the only framebuffer memory model the protocol defines.
const MemoryModelRGB = 1

// BaseRevision is the revision tag the kernel is built against. The loader
// zeroes word 2 when it supports the requested revision.
type BaseRevision [3]uint64

// Supported reports whether the loader acknowledged the revision.
//
//go:nosplit
func (r *BaseRevision) Supported() bool {
	return r[2] == 0
}

// RequestsStartMarker and RequestsEndMarker bracket the request records.
type (
	RequestsStartMarker [4]uint64
	RequestsEndMarker   [2]uint64
)

// FramebufferRequest asks the loader for its framebuffers. Response is
// filled in by the loader and stays nil if it had none to offer.
type FramebufferRequest struct {
	ID       [4]uint64
	Revision uint64
	Response *FramebufferResponse
}

// FramebufferResponse is owned by the loader.
type FramebufferResponse struct {
	Revision         uint64
	FramebufferCount uint64
	List             **Framebuffer
}

// Framebuffers returns the loader's descriptors as a slice.
//
//go:nosplit
func (r *FramebufferResponse) Framebuffers() []*Framebuffer {
	if r == nil || r.List == nil || r.FramebufferCount == 0 {
		return nil
	}
	return unsafe.Slice(r.List, r.FramebufferCount)
}

// Framebuffer mirrors struct limine_framebuffer.
type Framebuffer struct {
	Address        unsafe.Pointer
	Width          uint64
	Height         uint64
	Pitch          uint64
	BPP            uint16
	MemoryModel    uint8
	RedMaskSize    uint8
	RedMaskShift   uint8
	GreenMaskSize  uint8
	GreenMaskShift uint8
	BlueMaskSize   uint8
	BlueMaskShift  uint8
	_              [7]uint8
	EDIDSize       uint64
	EDID           unsafe.Pointer

	// Present from response revision 1.
	ModeCount uint64
	Modes     **VideoMode
}

// VideoMode mirrors struct limine_video_mode.
type VideoMode struct {
	Pitch          uint64
	Width          uint64
	Height         uint64
	BPP            uint16
	MemoryModel    uint8
	RedMaskSize    uint8
	RedMaskShift   uint8
	GreenMaskSize  uint8
	GreenMaskShift uint8
	BlueMaskSize   uint8
	BlueMaskShift  uint8
}

// Requests is the complete set of records the kernel exposes to the loader,
// kept contiguous so the markers delimit everything in between.
type Requests struct {
	Start        RequestsStartMarker
	BaseRevision BaseRevision
	Framebuffer  FramebufferRequest
	End          RequestsEndMarker
}

// FirstFramebuffer returns the loader's first framebuffer, or nil if the
// loader did not answer the request or supplied none.
//
//go:nosplit
func (r *Requests) FirstFramebuffer() *Framebuffer {
	fbs := r.Framebuffer.Response.Framebuffers()
	if len(fbs) == 0 {
		return nil
	}
	return fbs[0]
}
