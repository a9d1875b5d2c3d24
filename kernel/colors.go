package kernel

// Colors are XRGB8888 words written verbatim into the framebuffer.
const (
	Black uint32 = 0x00000000
	White uint32 = 0x00FFFFFF
)

// ColorScheme pairs the colors used for the boot screen.
type ColorScheme struct {
	Background uint32
	Text       uint32
}

// DefaultColorScheme is white text on black.
var DefaultColorScheme = ColorScheme{
	Background: Black,
	Text:       White,
}
