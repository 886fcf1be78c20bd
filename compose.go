package stitch

import (
	"fmt"
	"image"
	"image/draw"
)

// HStack places images left -> right. All images must be the same height.
func HStack(imgs []*image.NRGBA) (*image.NRGBA, error) {
	if len(imgs) == 0 {
		return nil, ErrNoTiles
	}

	height := imgs[0].Bounds().Dy()
	width := 0
	for i, im := range imgs {
		if im.Bounds().Dy() != height {
			return nil, fmt.Errorf("%w: image %d is %dpx high, expected %dpx", ErrGridMismatch, i, im.Bounds().Dy(), height)
		}
		width += im.Bounds().Dx()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, im := range imgs {
		w := im.Bounds().Dx()
		draw.Draw(dst, image.Rect(x, 0, x+w, height), im, im.Bounds().Min, draw.Src)
		x += w
	}
	return dst, nil
}

// VStack places images top -> bottom. All images must be the same width.
func VStack(imgs []*image.NRGBA) (*image.NRGBA, error) {
	if len(imgs) == 0 {
		return nil, ErrNoTiles
	}

	width := imgs[0].Bounds().Dx()
	height := 0
	for i, im := range imgs {
		if im.Bounds().Dx() != width {
			return nil, fmt.Errorf("%w: strip %d is %dpx wide, expected %dpx", ErrGridMismatch, i, im.Bounds().Dx(), width)
		}
		height += im.Bounds().Dy()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	y := 0
	for _, im := range imgs {
		h := im.Bounds().Dy()
		draw.Draw(dst, image.Rect(0, y, width, y+h), im, im.Bounds().Min, draw.Src)
		y += h
	}
	return dst, nil
}

// Compose stacks each row of padded tiles into a strip, then stacks the
// strips. Empty rows are skipped.
func Compose(rows [][]*image.NRGBA) (*image.NRGBA, error) {
	strips := []*image.NRGBA{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		strip, err := HStack(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		strips = append(strips, strip)
	}
	return VStack(strips)
}
