package stitch

import (
	"errors"
)

var (
	// ErrNoTileSets is returned when nothing under a path looks like a tile set
	ErrNoTileSets = errors.New("no tiled images found")

	// ErrNoTiles is returned when asked to merge an empty tile set
	ErrNoTiles = errors.New("tile set has no tiles")

	// ErrMalformedName is returned for a filename without a trailing _<row>_<col>.<ext>
	ErrMalformedName = errors.New("malformed tile name")

	// ErrGridMismatch is returned when padded tiles or row strips can't be
	// stacked because their sizes disagree
	ErrGridMismatch = errors.New("inconsistent tile grid")

	// ErrNegativePadding is returned when a tile is larger than the size
	// we're asked to pad it to
	ErrNegativePadding = errors.New("tile larger than target size")
)

// ErrOutputExists is returned when we'd overwrite an existing file & haven't been told we can
var ErrOutputExists = errors.New("output file exists")
