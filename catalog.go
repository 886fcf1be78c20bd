package stitch

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlRecordMerge = `INSERT INTO merges (dir, output, row_count, tile_count, padded_count, width, height, merged)
		VALUES (:dir, :output, :row_count, :tile_count, :padded_count, :width, :height, :merged)
		ON CONFLICT (dir) DO UPDATE SET
			output=EXCLUDED.output, row_count=EXCLUDED.row_count, tile_count=EXCLUDED.tile_count, padded_count=EXCLUDED.padded_count,
			width=EXCLUDED.width, height=EXCLUDED.height, merged=EXCLUDED.merged;`
	sqlGetMerge  = `SELECT dir, output, row_count, tile_count, padded_count, width, height, merged FROM merges WHERE dir=? LIMIT 1;`
	sqlAllMerges = `SELECT dir, output, row_count, tile_count, padded_count, width, height, merged FROM merges ORDER BY dir;`
)

// Catalog is a sqlite database of tile sets we've merged, so a rerun over
// the same folders can tell what's already been done.
type Catalog struct {
	filename string
	db       *sqlx.DB
}

// Record is a single merged tile set
type Record struct {
	Dir    string `db:"dir"`
	Output string `db:"output"`
	Rows   int    `db:"row_count"`
	Tiles  int    `db:"tile_count"`
	Padded int    `db:"padded_count"`
	Width  int    `db:"width"`
	Height int    `db:"height"`
	Merged int64  `db:"merged"` // unix seconds
}

// NewRecord describes the merge of the tile set in `dir` written to `output`
func NewRecord(dir, output string, res *Result) *Record {
	size := res.Image.Bounds().Size()
	return &Record{
		Dir:    dir,
		Output: output,
		Rows:   res.Rows,
		Tiles:  len(res.Placements),
		Padded: res.Padded(),
		Width:  size.X,
		Height: size.Y,
		Merged: time.Now().Unix(),
	}
}

// OpenCatalog given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenCatalog(fname string) (*Catalog, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	c := &Catalog{db: db, filename: fname}
	return c, c.init()
}

// Filename returns the path to the catalog on disk
func (c *Catalog) Filename() string {
	return c.filename
}

// Record a merge, replacing any earlier record for the same directory
func (c *Catalog) Record(r *Record) error {
	_, err := c.db.NamedExec(sqlRecordMerge, r)
	return err
}

// Lookup the record for the given tile set directory (or nil if unset)
func (c *Catalog) Lookup(dir string) (*Record, error) {
	r := &Record{}
	err := c.db.Get(r, sqlGetMerge, dir)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Records returns every merge, ordered by directory
func (c *Catalog) Records() ([]*Record, error) {
	rs := []*Record{}
	err := c.db.Select(&rs, sqlAllMerges)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// Close the underlying database
func (c *Catalog) Close() error {
	return c.db.Close()
}

// init creates our table if it doesn't exist
func (c *Catalog) init() error {
	createMerges := `CREATE TABLE IF NOT EXISTS merges(
		dir TEXT PRIMARY KEY,
		output TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		tile_count INTEGER NOT NULL,
		padded_count INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		merged INTEGER NOT NULL
	    );`
	_, err := c.db.Exec(createMerges)
	return err
}
