package icon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Placeholder palette: royal blue fill with a white outline.
var (
	Background = color.NRGBA{R: 65, G: 105, B: 225, A: 255}
	Outline    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// BorderWidth returns the outline thickness for a size px placeholder,
// scaling with the icon but never thinner than 2 px.
func BorderWidth(size int) int {
	if w := size / 16; w > 2 {
		return w
	}
	return 2
}

// Draw renders a size×size placeholder icon: a solid background with a white
// border inset by the border width. No glyph is drawn.
func Draw(size int) image.Image {
	bw := float64(BorderWidth(size))

	dc := gg.NewContext(size, size)
	dc.SetColor(Background)
	dc.Clear()

	// Stroke centered at 1.5*bw so the band covers [bw, 2*bw] on each edge.
	dc.SetColor(Outline)
	dc.SetLineWidth(bw)
	dc.DrawRectangle(1.5*bw, 1.5*bw, float64(size)-3*bw, float64(size)-3*bw)
	dc.Stroke()

	return dc.Image()
}

// Resize scales src to a size×size square using Lanczos resampling.
func Resize(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}
