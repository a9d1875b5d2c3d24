package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// halfBlock fills the top half of a cell with the foreground color; the
// background shows through underneath, giving two pixels per cell.
const halfBlock = '▀'

// Show paints the frame onto screen, shrinking it to fit. Each cell covers
// a square block of pixels per half; a half is lit if any pixel in its
// block is.
func Show(screen tcell.Screen, f *Frame) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	step := ceilDiv(f.Width, cols)
	if s := ceilDiv(f.Height, rows*2); s > step {
		step = s
	}
	if step < 1 {
		step = 1
	}

	screen.Clear()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x := cx * step
			top := 2 * cy * step
			if x >= f.Width || top >= f.Height {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(color(f.sample(x, top, step))).
				Background(color(f.sample(x, top+step, step)))
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	screen.Show()
}

// Run displays the frame until a key is pressed, redrawing on resize.
func Run(screen tcell.Screen, f *Frame) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	Show(screen, f)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Show(screen, f)
		case *tcell.EventKey, nil:
			return nil
		}
	}
}

// sample ORs together the step x step block at (x, y), clipped to the frame.
func (f *Frame) sample(x, y, step int) uint32 {
	var v uint32
	for py := y; py < y+step && py < f.Height; py++ {
		for px := x; px < x+step && px < f.Width; px++ {
			v |= f.At(px, py)
		}
	}
	return v & 0x00FFFFFF
}

func color(xrgb uint32) tcell.Color {
	return tcell.NewRGBColor(int32(xrgb>>16&0xFF), int32(xrgb>>8&0xFF), int32(xrgb&0xFF))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
