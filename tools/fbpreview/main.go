package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"stormy/kernel"
	"stormy/preview"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fbpreview [flags]\n")
		fmt.Fprintf(os.Stderr, "Boots the kernel against an in-memory framebuffer and shows the result\n")
		fmt.Fprintf(os.Stderr, "With -in, loads a raw dump instead of booting\n")
		fmt.Fprintf(os.Stderr, "Raw output format (-raw):\n")
		fmt.Fprintf(os.Stderr, "  4 bytes: width (uint32 little-endian)\n")
		fmt.Fprintf(os.Stderr, "  4 bytes: height (uint32 little-endian)\n")
		fmt.Fprintf(os.Stderr, "  width*height*4 bytes: ARGB8888 pixel data\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	width := flag.Int("width", 640, "framebuffer width in pixels")
	height := flag.Int("height", 480, "framebuffer height in pixels")
	pitch := flag.Int("pitch", 0, "bytes per scanline (default width*4)")
	scale := flag.Int("scale", 2, "PNG enlargement factor")
	pngPath := flag.String("png", "", "write a PNG preview to this path")
	rawPath := flag.String("raw", "", "write a raw ARGB8888 dump to this path")
	caption := flag.String("caption", "", "caption to set below the PNG preview")
	label := flag.String("label", "", "text to draw into the framebuffer's bottom edge")
	term := flag.Bool("term", false, "display the framebuffer in the terminal")
	inPath := flag.String("in", "", "read a raw ARGB8888 dump instead of booting the kernel")
	flag.Parse()

	if flag.NArg() != 0 || (*pngPath == "" && *rawPath == "" && !*term) {
		flag.Usage()
		os.Exit(1)
	}

	var frame *preview.Frame
	if *inPath != "" {
		frame = loadDump(*inPath)
	} else {
		var err error
		frame, err = preview.Boot(preview.Config{Width: *width, Height: *height, Pitch: *pitch})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error booting kernel: %v\n", err)
			os.Exit(1)
		}
	}
	if *label != "" {
		frame.Label(*label, kernel.DefaultColorScheme.Text)
	}
	fmt.Printf("Framebuffer: %d x %d, pitch %d, %d lit pixels\n", frame.Width, frame.Height, frame.Pitch, frame.Lit())

	if *rawPath != "" {
		writeFile(*rawPath, func(f *os.File) error { return preview.WriteRaw(f, frame) })
	}
	if *pngPath != "" {
		writeFile(*pngPath, func(f *os.File) error { return preview.RenderPNG(f, frame, *scale, *caption) })
	}

	if *term {
		screen, err := tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
			os.Exit(1)
		}
		if err := preview.Run(screen, frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error displaying framebuffer: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadDump(path string) *preview.Frame {
	in, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dump: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	img, err := preview.ReadRaw(bufio.NewReader(in))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding dump: %v\n", err)
		os.Exit(1)
	}
	return preview.FromImage(img)
}

func writeFile(path string, write func(*os.File) error) {
	out, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	if err := write(out); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", path, err)
		os.Exit(1)
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading back %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, info.Size())
}
