// Package mesh builds the flat XZ grid drawn by the wave renderer as one
// continuous triangle strip.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidDimensions is returned when the grid cannot form a strip.
var ErrInvalidDimensions = errors.New("grid needs at least 2 rows and 1 column")

// Grid is a rows × columns vertex lattice plus its strip indices.
// Vertices are row-major: vertex (r, c) lives at r*Columns + c.
type Grid struct {
	Rows     int
	Columns  int
	Vertices []mgl32.Vec3
	Indices  []uint32
}

// VertexCount returns rows × columns.
func VertexCount(rows, columns int) int {
	return rows * columns
}

// IndexCount returns the strip length, (rows-1) × (2×columns + 2).
// Each row transition contributes two vertices per column plus a
// degenerate lead-in and lead-out.
func IndexCount(rows, columns int) int {
	if rows < 2 {
		return 0
	}
	return (rows - 1) * (2*columns + 2)
}

// Generate builds a grid spanning roughly [-1, 1] on X and Z with Y = 0.
// Buffers are sized exactly from VertexCount and IndexCount.
func Generate(rows, columns int) (*Grid, error) {
	if rows < 2 || columns < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}

	g := &Grid{
		Rows:     rows,
		Columns:  columns,
		Vertices: make([]mgl32.Vec3, VertexCount(rows, columns)),
		Indices:  make([]uint32, 0, IndexCount(rows, columns)),
	}

	halfCols := float32(columns) / 2
	halfRows := float32(rows) / 2
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			g.Vertices[r*columns+c] = mgl32.Vec3{
				float32(c)/halfCols - 1,
				0,
				float32(r)/halfRows - 1,
			}
		}
	}

	for r := 0; r < rows-1; r++ {
		g.Indices = append(g.Indices, g.RowSegment(r)...)
	}

	return g, nil
}

// RowSegment returns the strip indices joining row r to row r+1:
// a degenerate lead-in, the zig-zag pairs, and a degenerate lead-out.
func (g *Grid) RowSegment(r int) []uint32 {
	top := uint32(r * g.Columns)
	bottom := uint32((r + 1) * g.Columns)

	seg := make([]uint32, 0, 2*g.Columns+2)
	seg = append(seg, top)
	for c := uint32(0); c < uint32(g.Columns); c++ {
		seg = append(seg, top+c, bottom+c)
	}
	seg = append(seg, bottom+uint32(g.Columns-1))
	return seg
}

// Positions flattens the vertices into xyz triples for upload.
func (g *Grid) Positions() []float32 {
	out := make([]float32, 0, len(g.Vertices)*3)
	for _, v := range g.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// At returns the vertex at row r, column c.
func (g *Grid) At(r, c int) mgl32.Vec3 {
	return g.Vertices[r*g.Columns+c]
}
