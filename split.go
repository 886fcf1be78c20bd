package stitch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Piece is one tile cut from a larger image
type Piece struct {
	Row   int
	Col   int
	Image *image.NRGBA
}

// Name returns the tile filename for this piece, ie. <base>_<row>_<col>.<ext>
func (p *Piece) Name(base, ext string) string {
	return fmt.Sprintf("%s_%d_%d.%s", base, p.Row, p.Col, ext)
}

// Split cuts `in` into tiles of tw x th pixels, row by row.
// Tiles on the right & bottom edges hold whatever is left over so may
// be smaller.
func Split(in image.Image, tw, th int) ([]*Piece, error) {
	if tw < 1 || th < 1 {
		return nil, fmt.Errorf("tile size must be at least 1x1, got %dx%d", tw, th)
	}

	bnds := in.Bounds()
	pieces := []*Piece{}
	for row, y := 0, bnds.Min.Y; y < bnds.Max.Y; row, y = row+1, y+th {
		for col, x := 0, bnds.Min.X; x < bnds.Max.X; col, x = col+1, x+tw {
			r := image.Rect(x, y, x+tw, y+th).Intersect(bnds)
			pieces = append(pieces, &Piece{Row: row, Col: col, Image: imaging.Crop(in, r)})
		}
	}
	return pieces, nil
}

// WritePieces saves pieces into `dir` named after `base` & `ext` (without
// the leading '.'), returning the paths written.
func WritePieces(dir, base, ext string, pieces []*Piece, overwrite bool) ([]string, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}

	written := []string{}
	for _, p := range pieces {
		fpath := filepath.Join(dir, p.Name(base, ext))
		if fileExists(fpath) && !overwrite {
			return written, fmt.Errorf("%w: %s", ErrOutputExists, fpath)
		}

		err = imaging.Save(p.Image, fpath)
		if err != nil {
			return written, err
		}
		written = append(written, fpath)
	}
	return written, nil
}
