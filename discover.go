package stitch

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
)

// TileSet is the tiles of one image, all in one directory with the same
// file extension.
type TileSet struct {
	Dir   string
	Ext   string
	Paths []string
}

// ReadTileSet returns the tile set in the given directory, or nil if there
// are no tiles in it.
//
// The extension of the first tile (in natural order) decides the set's
// extension, tiles with other extensions are ignored.
func ReadTileSet(dir string) (*TileSet, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, info := range infos {
		if info.IsDir() || !Eligible(info.Name()) {
			continue
		}
		names = append(names, info.Name())
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Sort(natural.StringSlice(names))

	ts := &TileSet{Dir: dir, Ext: filepath.Ext(names[0]), Paths: []string{}}
	for _, name := range names {
		if filepath.Ext(name) != ts.Ext {
			continue
		}
		ts.Paths = append(ts.Paths, filepath.Join(dir, name))
	}

	return ts, nil
}

// FindTileSets looks for tile sets at `root`.
//
// If root holds tiles itself it's the only tile set, otherwise each
// immediate subdirectory holding tiles is a tile set.
func FindTileSets(root string) ([]*TileSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoTileSets, root)
	}

	ts, err := ReadTileSet(root)
	if err != nil {
		return nil, err
	}
	if ts != nil {
		return []*TileSet{ts}, nil
	}

	infos, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, err
	}

	dirs := []string{}
	for _, info := range infos {
		if info.IsDir() {
			dirs = append(dirs, info.Name())
		}
	}
	sort.Sort(natural.StringSlice(dirs))

	found := []*TileSet{}
	for _, d := range dirs {
		ts, err := ReadTileSet(filepath.Join(root, d))
		if err != nil {
			return nil, err
		}
		if ts != nil {
			found = append(found, ts)
		}
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTileSets, root)
	}
	return found, nil
}
