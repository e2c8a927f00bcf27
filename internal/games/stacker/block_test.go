package stacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockEdges(t *testing.T) {
	b := Block{CenterX: 200, CenterY: 100, Width: 100, Height: 25}

	assert.Equal(t, 150.0, b.Left())
	assert.Equal(t, 250.0, b.Right())
	assert.Equal(t, 87.5, b.Top())
	assert.Equal(t, 112.5, b.Bottom())
}

func TestOverlap(t *testing.T) {
	top := Block{CenterX: 200, CenterY: 0, Width: 200, Height: 25} // 100-300

	tests := []struct {
		name   string
		moving Block
		want   Span
	}{
		{"contained", Block{CenterX: 200, Width: 100, Height: 25}, Span{Left: 150, Right: 250, Width: 100}},
		{"exact", Block{CenterX: 200, Width: 200, Height: 25}, Span{Left: 100, Right: 300, Width: 200}},
		{"right overhang", Block{CenterX: 250, Width: 100, Height: 25}, Span{Left: 200, Right: 300, Width: 100}},
		{"left overhang", Block{CenterX: 130, Width: 100, Height: 25}, Span{Left: 100, Right: 180, Width: 80}},
		{"touching", Block{CenterX: 350, Width: 100, Height: 25}, Span{Left: 300, Right: 300, Width: 0}},
		{"disjoint", Block{CenterX: 335, Width: 50, Height: 25}, Span{Left: 310, Right: 300, Width: -10}},
		{"wider", Block{CenterX: 200, Width: 300, Height: 25}, Span{Left: 100, Right: 300, Width: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlap(tt.moving, top)
			assert.Equal(t, tt.want, got)
			// Same inputs, same answer, either order
			assert.Equal(t, got, Overlap(tt.moving, top))
			assert.Equal(t, got, Overlap(top, tt.moving))
		})
	}
}

func TestSpanHitIsStrict(t *testing.T) {
	assert.True(t, Span{Width: 10.5}.Hit(10))
	assert.False(t, Span{Width: 10}.Hit(10))
	assert.False(t, Span{Width: 0}.Hit(0))
	assert.False(t, Span{Width: -5}.Hit(10))
}

func TestSpanCenter(t *testing.T) {
	assert.Equal(t, 200.0, Span{Left: 150, Right: 250, Width: 100}.Center())
}
