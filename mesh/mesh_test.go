package mesh

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		rows, columns int
		vertices      int
		indices       int
	}{
		{16, 32, 512, 990},
		{16, 64, 1024, 1950},
		{2, 1, 2, 4},
		{3, 5, 15, 24},
	}

	for _, tt := range tests {
		g, err := Generate(tt.rows, tt.columns)
		if err != nil {
			t.Fatalf("Generate(%d, %d): %v", tt.rows, tt.columns, err)
		}
		if len(g.Vertices) != tt.vertices {
			t.Errorf("%dx%d: expected %d vertices, got %d", tt.rows, tt.columns, tt.vertices, len(g.Vertices))
		}
		if len(g.Indices) != tt.indices {
			t.Errorf("%dx%d: expected %d indices, got %d", tt.rows, tt.columns, tt.indices, len(g.Indices))
		}
		if IndexCount(tt.rows, tt.columns) != tt.indices {
			t.Errorf("%dx%d: IndexCount = %d, want %d", tt.rows, tt.columns, IndexCount(tt.rows, tt.columns), tt.indices)
		}
		if len(g.Positions()) != 3*tt.vertices {
			t.Errorf("%dx%d: expected %d floats, got %d", tt.rows, tt.columns, 3*tt.vertices, len(g.Positions()))
		}
	}
}

func TestGenerateRejectsDegenerateGrids(t *testing.T) {
	for _, dims := range [][2]int{{1, 32}, {0, 0}, {16, 0}, {-2, 4}} {
		if _, err := Generate(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Generate(%d, %d): expected ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestVertexLayout(t *testing.T) {
	g, err := Generate(16, 32)
	if err != nil {
		t.Fatal(err)
	}

	// Corners of the grid
	first := g.At(0, 0)
	if first.X() != -1 || first.Y() != 0 || first.Z() != -1 {
		t.Errorf("expected (-1, 0, -1) at origin, got %v", first)
	}
	last := g.At(15, 31)
	if math.Abs(float64(last.X())-(31.0/16-1)) > 1e-6 || math.Abs(float64(last.Z())-(15.0/8-1)) > 1e-6 {
		t.Errorf("unexpected far corner %v", last)
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			v := g.At(r, c)
			if v.Y() != 0 {
				t.Errorf("vertex (%d,%d) has y=%f, want 0", r, c, v.Y())
			}
			if c > 0 && v.X() < g.At(r, c-1).X() {
				t.Errorf("x decreases along row %d at column %d", r, c)
			}
			if r > 0 && v.Z() < g.At(r-1, c).Z() {
				t.Errorf("z decreases along column %d at row %d", c, r)
			}
		}
	}
}

func TestRowSegmentsAreStitched(t *testing.T) {
	g, err := Generate(16, 32)
	if err != nil {
		t.Fatal(err)
	}

	segLen := 2*g.Columns + 2
	for r := 0; r < g.Rows-1; r++ {
		seg := g.Indices[r*segLen : (r+1)*segLen]

		// Degenerate lead-in repeats the first real index
		if seg[0] != seg[1] {
			t.Errorf("row %d: lead-in %d does not repeat first index %d", r, seg[0], seg[1])
		}
		if seg[0] != uint32(r*g.Columns) {
			t.Errorf("row %d: lead-in %d, want %d", r, seg[0], r*g.Columns)
		}

		// Degenerate lead-out repeats the last real index
		n := len(seg)
		if seg[n-1] != seg[n-2] {
			t.Errorf("row %d: lead-out %d does not repeat last index %d", r, seg[n-1], seg[n-2])
		}
		if seg[n-1] != uint32((r+1)*g.Columns+g.Columns-1) {
			t.Errorf("row %d: lead-out %d, want %d", r, seg[n-1], (r+1)*g.Columns+g.Columns-1)
		}

		// Zig-zag between the two rows
		for c := 0; c < g.Columns; c++ {
			if seg[1+2*c] != uint32(r*g.Columns+c) || seg[2+2*c] != uint32((r+1)*g.Columns+c) {
				t.Errorf("row %d column %d: got pair (%d,%d)", r, c, seg[1+2*c], seg[2+2*c])
			}
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	g, err := Generate(16, 64)
	if err != nil {
		t.Fatal(err)
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d at position %d exceeds vertex count %d", idx, i, len(g.Vertices))
		}
	}
}
