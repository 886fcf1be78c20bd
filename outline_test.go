package stitch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	imgs := sameSize("im", "png", 1, 2, 10, 10)
	imgs["im_0_1.png"] = solid(6, 10, color.NRGBA{G: 255, A: 255})
	res, err := NewMerger(nil, WithLoader(memLoader(imgs))).Merge(keys(imgs))
	require.Nil(t, err)
	before := append([]uint8{}, res.Image.Pix...)

	out := Outline(res, color.NRGBA{R: 255, A: 255})

	assert.Equal(t, res.Image.Bounds(), out.Bounds())
	assert.Equal(t, before, res.Image.Pix)

	// second tile is 6px wide centred in a 10px cell, so it's left edge is x=12
	r, g, _, _ := out.At(12, 5).RGBA()
	assert.True(t, r > 0x8000, "expected outline at left edge")
	assert.True(t, g < 0x8000, "expected outline at left edge")

	// fill between the tiles is untouched
	r, g, b, _ := out.At(10, 5).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}
