package stitch

import (
	"image"
)

// Row is a RowGroup with decoded pixels
type Row []*Raster

// Dimensions holds the sizes we pad tiles out to.
//
// Heights are keyed by the row coordinate of each tile, widths by the
// position of the row group. Since every group is stacked independently
// only tiles within a group need to agree on width.
//
// Keying widths by group rather than column means a row missing it's
// leading column(s) still pads to the widest tile of that row.
type Dimensions struct {
	Heights map[int]int
	Widths  map[int]int
}

// Reconcile works out the max height of each row & the max width of
// each row group in one pass.
func Reconcile(rows []Row) *Dimensions {
	d := &Dimensions{Heights: map[int]int{}, Widths: map[int]int{}}
	for i, row := range rows {
		for _, r := range row {
			size := r.Size()
			if size.Y > d.Heights[r.Row] {
				d.Heights[r.Row] = size.Y
			}
			if size.X > d.Widths[i] {
				d.Widths[i] = size.X
			}
		}
	}
	return d
}

// Target returns the size the given raster in row group `group` should be
// padded to.
func (d *Dimensions) Target(r *Raster, group int) image.Point {
	return image.Pt(d.Widths[group], d.Heights[r.Row])
}
