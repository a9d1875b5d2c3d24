package preview

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
)

// WriteRaw writes the frame as a little-endian width and height followed
// by width*height ARGB8888 pixels, the same layout the kernel image tools
// consume.
func WriteRaw(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint32(f.Width)); err != nil {
		return fmt.Errorf("write width: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(f.Height)); err != nil {
		return fmt.Errorf("write height: %w", err)
	}

	row := make([]uint32, f.Width)
	for y := 0; y < f.Height; y++ {
		for x := range row {
			// The framebuffer has no alpha; mark every pixel opaque.
			row[x] = 0xFF000000 | f.At(x, y)&0x00FFFFFF
		}
		if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// MaxRawPixels bounds the width*height a raw dump header may claim.
const MaxRawPixels = 1 << 26

// ReadRaw decodes a dump produced by WriteRaw.
func ReadRaw(r io.Reader) (*image.NRGBA, error) {
	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	// Both fit in 32 bits, so the product cannot overflow 64.
	if uint64(width)*uint64(height) > MaxRawPixels {
		return nil, fmt.Errorf("raw dump claims %dx%d pixels, limit is %d", width, height, MaxRawPixels)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	row := make([]uint32, width)
	for y := 0; y < int(height); y++ {
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("read row %d: %w", y, err)
		}
		for x, p := range row {
			o := img.PixOffset(x, y)
			img.Pix[o] = uint8(p >> 16)
			img.Pix[o+1] = uint8(p >> 8)
			img.Pix[o+2] = uint8(p)
			img.Pix[o+3] = uint8(p >> 24)
		}
	}
	return img, nil
}
