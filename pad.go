package stitch

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Insets is how many pixels of fill go on each side of a tile
type Insets struct {
	Top, Bottom, Left, Right int
}

// Padding works out the insets needed to grow `size` to `target`.
// Where the padding is odd the extra pixel goes to the bottom / right.
func Padding(size, target image.Point) (Insets, error) {
	dx := target.X - size.X
	dy := target.Y - size.Y
	if dx < 0 || dy < 0 {
		return Insets{}, fmt.Errorf("%w: %v > %v", ErrNegativePadding, size, target)
	}

	in := Insets{Top: dy / 2, Left: dx / 2}
	in.Bottom = dy - in.Top
	in.Right = dx - in.Left
	return in, nil
}

// Pad centres `img` on a `target` sized canvas of `fill`.
// We return the padded image & where the original pixels were placed.
func Pad(img image.Image, target image.Point, fill color.Color) (*image.NRGBA, image.Rectangle, error) {
	size := img.Bounds().Size()

	in, err := Padding(size, target)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	at := image.Pt(in.Left, in.Top)
	dst := imaging.New(target.X, target.Y, fill)
	dst = imaging.Paste(dst, img, at)

	return dst, image.Rectangle{Min: at, Max: at.Add(size)}, nil
}
