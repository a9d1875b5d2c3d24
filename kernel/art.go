package kernel

import "stormy/raster"

// Position of the first art line's top-left pixel. Line i is drawn
// CharHeight pixels below line i-1.
const (
	ArtX = 20
	ArtY = 20
)

// artColumns is the length of the longest Art line.
const artColumns = 57

// MinWidth and MinHeight bound the pixels Render writes. Smaller
// framebuffers are drawn without bounds checks.
const (
	MinWidth  = ArtX + (artColumns-1)*(raster.CharWidth+raster.CharSpacing) + raster.CharWidth
	MinHeight = ArtY + len(Art)*raster.CharHeight
)

// Art is the boot screen.
var Art = [...]string{
	"  ,-~~-.___.                                             ",
	" / |  '     \\         It was a dark and stormy night....",
	"(  )         0                                           ",
	" \\_/-, ,----'                                            ",
	"    ====           //                                    ",
	"   /  \\-'~;    /~~~(O)                                  ",
	"  /  __/~|   /       |                                   ",
	"=(  _____| (_________|   W<                              ",
}
