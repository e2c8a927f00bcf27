package stacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimContainedBlock(t *testing.T) {
	top := Block{CenterX: 200, CenterY: 587.5, Width: 200, Height: 25}    // 100-300
	moving := Block{CenterX: 200, CenterY: 562.5, Width: 100, Height: 25} // 150-250

	placed, offcuts, ok := Trim(moving, top, 10)
	require.True(t, ok)
	assert.Equal(t, Block{CenterX: 200, CenterY: 562.5, Width: 100, Height: 25}, placed)
	assert.Empty(t, offcuts)
}

func TestTrimMissedBlock(t *testing.T) {
	top := Block{CenterX: 200, CenterY: 587.5, Width: 200, Height: 25}   // 100-300
	moving := Block{CenterX: 335, CenterY: 562.5, Width: 50, Height: 25} // 310-360

	placed, offcuts, ok := Trim(moving, top, 10)
	assert.False(t, ok)
	assert.Equal(t, Block{}, placed)
	assert.Nil(t, offcuts)
}

func TestTrimThreshold(t *testing.T) {
	top := Block{CenterX: 200, CenterY: 587.5, Width: 200, Height: 25} // 100-300

	// 290-390 overlaps by exactly 10
	_, _, ok := Trim(Block{CenterX: 340, Width: 100, Height: 25}, top, 10)
	assert.False(t, ok, "overlap equal to the minimum must be a miss")

	// 289-389 overlaps by 11
	placed, offcuts, ok := Trim(Block{CenterX: 339, Width: 100, Height: 25}, top, 10)
	require.True(t, ok)
	assert.Equal(t, 11.0, placed.Width)
	assert.Equal(t, 294.5, placed.CenterX)
	require.Len(t, offcuts, 1)
	assert.Equal(t, SideRight, offcuts[0].Side)
	assert.Equal(t, 89.0, offcuts[0].Width)
}

func TestTrimOffcuts(t *testing.T) {
	tests := []struct {
		name   string
		moving Block
		top    Block
		want   []Offcut
	}{
		{
			name:   "right remainder",
			moving: Block{CenterX: 250, Width: 100, Height: 25}, // 200-300
			top:    Block{CenterX: 180, Width: 160, Height: 25}, // 100-260
			want: []Offcut{
				{Block: Block{CenterX: 280, Width: 40, Height: 25}, Side: SideRight},
			},
		},
		{
			name:   "left remainder",
			moving: Block{CenterX: 130, Width: 100, Height: 25}, // 80-180
			top:    Block{CenterX: 200, Width: 200, Height: 25}, // 100-300
			want: []Offcut{
				{Block: Block{CenterX: 90, Width: 20, Height: 25}, Side: SideLeft},
			},
		},
		{
			name:   "both sides",
			moving: Block{CenterX: 200, Width: 300, Height: 25}, // 50-350
			top:    Block{CenterX: 200, Width: 200, Height: 25}, // 100-300
			want: []Offcut{
				{Block: Block{CenterX: 75, Width: 50, Height: 25}, Side: SideLeft},
				{Block: Block{CenterX: 325, Width: 50, Height: 25}, Side: SideRight},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed, offcuts, ok := Trim(tt.moving, tt.top, 10)
			require.True(t, ok)
			assert.Equal(t, tt.want, offcuts)

			// Placed block plus off-cuts cover the moving block exactly
			total := placed.Width
			for _, o := range offcuts {
				total += o.Width
			}
			assert.InDelta(t, tt.moving.Width, total, 1e-9)
		})
	}
}
