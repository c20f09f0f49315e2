package scene_test

import (
	"fmt"
	"testing"

	"github.com/plus3/conefield/geom"
	"github.com/plus3/conefield/scene"
	"github.com/stretchr/testify/assert"
)

func TestCellPositionFormula(t *testing.T) {
	const n = 201
	const spacing = float32(2.5)

	tests := []struct {
		row, col int
		want     geom.Vec3
	}{
		{0, 0, geom.V3(-250, -250, 0)},
		{100, 100, geom.V3(0, 0, 0)},
		{200, 200, geom.V3(250, 250, 0)},
		{0, 200, geom.V3(-250, 250, 0)},
		{137, 42, geom.V3(92.5, -145, 0)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("row=%d,col=%d", tt.row, tt.col), func(t *testing.T) {
			got := scene.CellPosition(tt.row, tt.col, n, spacing)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, float32(0), got.Z)
		})
	}
}

func TestCellPositionsUnique(t *testing.T) {
	// The full 201×201 grid: every cell maps to a distinct position.
	const n = 201
	seen := make(map[geom.Vec3]struct{}, n*n)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pos := scene.CellPosition(row, col, n, 2.5)
			if _, dup := seen[pos]; dup {
				t.Fatalf("duplicate position %v at (%d,%d)", pos, row, col)
			}
			seen[pos] = struct{}{}
		}
	}
	assert.Len(t, seen, n*n)
}

func TestCellPositionCenteredForOddGrid(t *testing.T) {
	// Odd edge length puts the middle cell exactly on the origin.
	assert.Equal(t, geom.V3(0, 0, 0), scene.CellPosition(2, 2, 5, 1.0))
	// Even edge length uses integer halving, same as the source formula.
	assert.Equal(t, geom.V3(-2, -2, 0), scene.CellPosition(0, 0, 4, 1.0))
}
