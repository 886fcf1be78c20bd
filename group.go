package stitch

import (
	"sort"

	"github.com/maruel/natural"
)

// RowGroup is a set of tiles sharing a row, ordered left -> right
type RowGroup []Tile

// grouping is the running state as we walk sorted tiles
type grouping struct {
	last   int
	groups []RowGroup
}

// add returns the grouping with `t` appended to the current group, or in a
// new group if `t` starts a new row.
func (g grouping) add(t Tile) grouping {
	if t.Row == g.last {
		i := len(g.groups) - 1
		g.groups[i] = append(g.groups[i], t)
		return g
	}
	return grouping{last: t.Row, groups: append(g.groups, RowGroup{t})}
}

// Sort tiles into natural order by path (so x_2_10 comes after x_2_9)
func Sort(tiles []Tile) []Tile {
	sorted := make([]Tile, len(tiles))
	copy(sorted, tiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return natural.Less(sorted[i].Path, sorted[j].Path)
	})
	return sorted
}

// Group tiles into rows.
//
// Tiles are naturally sorted then walked in order, a new group starts each
// time the row changes. We assume the grid is rectangular & has no gaps, so
// rows come out contiguous & in increasing order.
//
// Nb. the first group is always for row 0, if there are no row 0 tiles it's
// left empty. Empty input gives a single empty group.
func Group(tiles []Tile) []RowGroup {
	g := grouping{groups: []RowGroup{{}}}
	for _, t := range Sort(tiles) {
		g = g.add(t)
	}
	return g.groups
}
