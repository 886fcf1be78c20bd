/* file handles working out where a tile belongs from it's filename.

Tiles are named <basename>_<row>_<col>.<ext> where row & col are plain
decimal integers.
*/
package stitch

import (
	"fmt"
	"image"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Extensions are the file extensions we'll consider as tiles (case sensitive)
var Extensions = []string{".jpg", ".jpeg", ".tif", ".bmp", ".png", ".gif"}

var tileSuffix = regexp.MustCompile(`_([0-9]+)_([0-9]+)\.([a-zA-Z]+)$`)

// Tile is a single tile image on disk & where it sits in the grid.
// Coordinates are parsed once from the path, the image itself is only
// read when we need pixels.
type Tile struct {
	Path string
	Row  int
	Col  int
}

// Raster is a Tile along with it's decoded pixels
type Raster struct {
	Tile
	Image image.Image
}

// Size returns the width & height of the raster as a point
func (r *Raster) Size() image.Point {
	return r.Image.Bounds().Size()
}

// Coords returns the row & column encoded in the given filename.
func Coords(name string) (int, int, error) {
	match := tileSuffix.FindStringSubmatch(filepath.Base(name))
	if match == nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedName, name)
	}

	row, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrMalformedName, name, err)
	}
	col, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrMalformedName, name, err)
	}

	return row, col, nil
}

// ParseTile builds a Tile from it's path
func ParseTile(path string) (Tile, error) {
	row, col, err := Coords(path)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Path: path, Row: row, Col: col}, nil
}

// Eligible returns if the given filename looks like a tile we can read.
// That is, it has one of our Extensions & a _<row>_<col> suffix.
func Eligible(name string) bool {
	if !tileSuffix.MatchString(filepath.Base(name)) {
		return false
	}
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// MergedName is the name of the merged image for a tile set, given the
// path of one of it's tiles. Ie. "scanA_0_0.jpg" -> "scanA_merged.jpg"
func MergedName(path string) (string, error) {
	base := filepath.Base(path)

	loc := tileSuffix.FindStringSubmatchIndex(base)
	if loc == nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedName, path)
	}

	// loc[6], loc[7] bound the extension submatch
	return fmt.Sprintf("%s_merged.%s", base[:loc[0]], base[loc[6]:loc[7]]), nil
}
