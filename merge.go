package stitch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

// Loader reads the image at the given path
type Loader func(path string) (image.Image, error)

// Merger rebuilds whole images from tile sets.
type Merger struct {
	cfg    *Config
	load   Loader
	logger *log.Logger
}

// Option configures a Merger
type Option func(*Merger)

// WithLoader sets how tile images are read (default: imaging.Open)
func WithLoader(l Loader) Option {
	return func(m *Merger) {
		m.load = l
	}
}

// WithLogger sets the logger the merger writes debug output to
func WithLogger(l *log.Logger) Option {
	return func(m *Merger) {
		m.logger = l
	}
}

// NewMerger returns a merger using the given config (nil for defaults)
func NewMerger(cfg *Config, opts ...Option) *Merger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	m := &Merger{
		cfg:    cfg,
		load:   func(path string) (image.Image, error) { return imaging.Open(path) },
		logger: log.Default(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Placement records where a tile ended up in the merged image.
type Placement struct {
	Tile

	// index of the row group the tile was in
	Group int

	// the padded cell the tile occupies
	Cell image.Rectangle

	// where the tile's own pixels are (inside Cell)
	Bounds image.Rectangle
}

// Padded returns if fill was added around the tile
func (p *Placement) Padded() bool {
	return p.Cell != p.Bounds
}

// Result of merging a tile set
type Result struct {
	Image      *image.NRGBA
	Name       string
	Rows       int
	Placements []Placement
}

// Padded returns how many tiles needed padding
func (r *Result) Padded() int {
	n := 0
	for i := range r.Placements {
		if r.Placements[i].Padded() {
			n++
		}
	}
	return n
}

// Merge the tiles at the given paths into one image.
// All paths should share an extension & belong to the same tile set.
func (m *Merger) Merge(paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoTiles
	}

	tiles := make([]Tile, len(paths))
	for i, p := range paths {
		t, err := ParseTile(p)
		if err != nil {
			return nil, err
		}
		tiles[i] = t
	}

	name, err := MergedName(Sort(tiles)[0].Path)
	if err != nil {
		return nil, err
	}

	groups := Group(tiles)
	m.logger.Debug("grouped tiles", "tiles", len(tiles), "groups", len(groups))

	rows := make([]Row, len(groups))
	for i, g := range groups {
		rows[i] = make(Row, len(g))
		for j, t := range g {
			img, err := m.load(t.Path)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", t.Path, err)
			}
			rows[i][j] = &Raster{Tile: t, Image: img}
		}
	}

	dims := Reconcile(rows)
	fill := m.cfg.FillColor()

	padded := make([][]*image.NRGBA, len(rows))
	placements := []Placement{}
	y := 0
	for i, row := range rows {
		x := 0
		height := 0
		for _, r := range row {
			target := dims.Target(r, i)
			pimg, inner, err := Pad(r.Image, target, fill)
			if err != nil {
				return nil, fmt.Errorf("padding %s: %w", r.Path, err)
			}
			padded[i] = append(padded[i], pimg)

			at := image.Pt(x, y)
			placements = append(placements, Placement{
				Tile:   r.Tile,
				Group:  i,
				Cell:   image.Rectangle{Min: at, Max: at.Add(target)},
				Bounds: inner.Add(at),
			})
			m.logger.Debug("padded tile", "path", r.Path, "size", r.Size(), "target", target)

			x += target.X
			height = target.Y
		}
		y += height
	}

	out, err := Compose(padded)
	if err != nil {
		return nil, err
	}

	return &Result{Image: out, Name: name, Rows: len(rows), Placements: placements}, nil
}

// Save writes the result into the given directory, returning the path
// written.
//
// The image is scaled by the configured Scale & an outlined copy is also
// written if Outline is set.
func (m *Merger) Save(res *Result, dir string) (string, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", err
	}

	fpath := filepath.Join(dir, res.Name)
	err = m.write(res.Image, fpath)
	if err != nil {
		return "", err
	}

	if !m.cfg.Outline {
		return fpath, nil
	}

	col, err := ParseColor(m.cfg.OutlineColor)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(res.Name)
	opath := filepath.Join(dir, strings.TrimSuffix(res.Name, ext)+"_outline"+ext)
	return fpath, m.write(Outline(res, col), opath)
}

// write an image to disk, honouring scale & overwrite settings
func (m *Merger) write(img image.Image, fpath string) error {
	if fileExists(fpath) && !m.cfg.Overwrite {
		return fmt.Errorf("%w: %s", ErrOutputExists, fpath)
	}

	if m.cfg.Scale != 1 {
		img = Rescale(img, m.cfg.Scale)
	}

	m.logger.Debug("writing image", "path", fpath, "size", img.Bounds().Size())
	return imaging.Save(img, fpath, imaging.JPEGQuality(m.cfg.JPEGQuality))
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
