package stitch

import (
	"fmt"
	"image"
	"image/color"
)

// gradient returns an opaque image where (nearly) every pixel differs
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 5), G: uint8(y * 7), B: uint8((x*3 + y*11) % 256), A: 255})
		}
	}
	return img
}

// solid returns a w x h image of one colour
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// memLoader serves images from a map rather than disk
func memLoader(imgs map[string]image.Image) Loader {
	return func(path string) (image.Image, error) {
		img, ok := imgs[path]
		if !ok {
			return nil, fmt.Errorf("no such image %s", path)
		}
		return img, nil
	}
}

// sameSize returns w x h images for a rows x cols grid named base_<row>_<col>.ext
func sameSize(base, ext string, rows, cols, w, h int) map[string]image.Image {
	imgs := map[string]image.Image{}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			imgs[fmt.Sprintf("%s_%d_%d.%s", base, r, c, ext)] = solid(w, h, color.NRGBA{R: uint8(r * 40), G: uint8(c * 40), A: 255})
		}
	}
	return imgs
}

func keys(in map[string]image.Image) []string {
	out := []string{}
	for k := range in {
		out = append(out, k)
	}
	return out
}

func black() color.NRGBA {
	return color.NRGBA{A: 255}
}
