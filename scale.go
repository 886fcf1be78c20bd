package stitch

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// Rescale resizes `in` by the given factor. Dimensions never drop below 1px.
func Rescale(in image.Image, factor float64) image.Image {
	size := in.Bounds().Size()

	width := int(math.Round(float64(size.X) * factor))
	height := int(math.Round(float64(size.Y) * factor))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return resize.Resize(uint(width), uint(height), in, resize.Lanczos3)
}
