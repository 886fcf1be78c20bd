package stitch

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Outline returns a copy of the merged image with a 1px box drawn around
// the original pixels of every tile. Handy for seeing where padding went.
func Outline(res *Result, c color.Color) image.Image {
	dc := gg.NewContextForImage(res.Image)
	dc.SetColor(c)
	dc.SetLineWidth(1)

	for _, p := range res.Placements {
		b := p.Bounds
		if b.Empty() {
			continue
		}
		// +0.5 puts the line on pixel centres so it's drawn crisp
		dc.DrawRectangle(
			float64(b.Min.X)+0.5,
			float64(b.Min.Y)+0.5,
			float64(b.Dx()-1),
			float64(b.Dy()-1),
		)
		dc.Stroke()
	}

	return dc.Image()
}
