package stitch

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates empty files, making parent dirs as needed
func touch(t *testing.T, root string, names ...string) {
	for _, n := range names {
		fpath := filepath.Join(root, n)
		require.Nil(t, os.MkdirAll(filepath.Dir(fpath), 0755))
		require.Nil(t, ioutil.WriteFile(fpath, []byte{}, 0644))
	}
}

func TestFindTileSetsRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "im_0_1.png", "im_0_0.png", "im_0_10.png", "im_0_2.png", "readme.txt", "sub/other_0_0.png")

	sets, err := FindTileSets(root)

	require.Nil(t, err)
	require.Equal(t, 1, len(sets))
	assert.Equal(t, root, sets[0].Dir)
	assert.Equal(t, ".png", sets[0].Ext)
	assert.Equal(t, []string{
		filepath.Join(root, "im_0_0.png"),
		filepath.Join(root, "im_0_1.png"),
		filepath.Join(root, "im_0_2.png"),
		filepath.Join(root, "im_0_10.png"),
	}, sets[0].Paths)
}

func TestFindTileSetsSubdirs(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"b/scan_0_0.jpg", "b/scan_0_1.jpg",
		"a/photo_0_0.tif",
		"c/notes.txt",
		"d/nested/deep_0_0.png",
		"loose.png",
	)

	sets, err := FindTileSets(root)

	require.Nil(t, err)
	require.Equal(t, 2, len(sets))
	assert.Equal(t, filepath.Join(root, "a"), sets[0].Dir)
	assert.Equal(t, ".tif", sets[0].Ext)
	assert.Equal(t, filepath.Join(root, "b"), sets[1].Dir)
	assert.Equal(t, 2, len(sets[1].Paths))
}

func TestReadTileSetMixedExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "im_0_1.png", "im_0_0.jpg", "im_0_1.jpg", "im_0_0.PNG")

	ts, err := ReadTileSet(root)

	require.Nil(t, err)
	assert.Equal(t, ".jpg", ts.Ext)
	assert.Equal(t, []string{filepath.Join(root, "im_0_0.jpg"), filepath.Join(root, "im_0_1.jpg")}, ts.Paths)
}

func TestReadTileSetNone(t *testing.T) {
	ts, err := ReadTileSet(t.TempDir())

	assert.Nil(t, err)
	assert.Nil(t, ts)
}

func TestFindTileSetsNone(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "x/readme.md", "image.png")

	_, err := FindTileSets(root)
	assert.True(t, errors.Is(err, ErrNoTileSets))

	_, err = FindTileSets(filepath.Join(root, "image.png"))
	assert.True(t, errors.Is(err, ErrNoTileSets))

	_, err = FindTileSets(filepath.Join(root, "missing"))
	assert.NotNil(t, err)
}
