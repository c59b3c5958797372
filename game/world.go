package game

import (
	"math"
	"slices"
)

// Grid is a uniform spatial partition of the arena holding enemy indices.
// Each enemy sits only in the cell of its center, so queries widen their reach
// by the largest enemy radius.
type Grid struct {
	cellSize   float64
	cols, rows int
	cells      [][]int
}

// NewGrid preallocates a grid covering the arena
func NewGrid(arena Arena, cellSize float64) *Grid {
	cols := max(1, int(math.Ceil(arena.W/cellSize)))
	rows := max(1, int(math.Ceil(arena.H/cellSize)))
	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 8)
	}
	return &Grid{cellSize: cellSize, cols: cols, rows: rows, cells: cells}
}

// cellOf converts a position to cell coordinates, clamping to the grid
func (g *Grid) cellOf(p Vec2) (int, int) {
	cx := int(math.Floor(p.X / g.cellSize))
	cy := int(math.Floor(p.Y / g.cellSize))
	return min(max(cx, 0), g.cols-1), min(max(cy, 0), g.rows-1)
}

// Reset empties every cell, keeping capacity
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert files an index under the cell containing pos
func (g *Grid) Insert(index int, pos Vec2) {
	cx, cy := g.cellOf(pos)
	i := cy*g.cols + cx
	g.cells[i] = append(g.cells[i], index)
}

// Query appends to out every index filed in cells within reach of pos, in ascending order
func (g *Grid) Query(pos Vec2, reach float64, out []int) []int {
	out = out[:0]
	minX, minY := g.cellOf(Vec2{pos.X - reach, pos.Y - reach})
	maxX, maxY := g.cellOf(Vec2{pos.X + reach, pos.Y + reach})
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			out = append(out, g.cells[cy*g.cols+cx]...)
		}
	}
	slices.Sort(out)
	return out
}

// Rebuild files every valid enemy under its index
func (g *Grid) Rebuild(enemies []Enemy) {
	g.Reset()
	for i, e := range enemies {
		if e == nil || !e.Body().Valid() {
			continue
		}
		g.Insert(i, e.Body().Pos)
	}
}
