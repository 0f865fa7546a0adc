// internal/overlay/geom/geom_test.go
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagemark/pagemark/internal/overlay/geom"
)

func TestRect_ContainsPoint(t *testing.T) {
	r := geom.Rect{Top: 10, Left: 20, Right: 120, Bottom: 60}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"interior", 50, 30, true},
		{"left edge inclusive", 20, 30, true},
		{"right edge inclusive", 120, 30, true},
		{"top edge inclusive", 50, 10, true},
		{"bottom edge inclusive", 50, 60, true},
		{"corner inclusive", 20, 10, true},
		{"left of rect", 19.9, 30, false},
		{"right of rect", 120.1, 30, false},
		{"above rect", 50, 9.9, false},
		{"below rect", 50, 60.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ContainsPoint(tc.x, tc.y))
		})
	}
}

func TestRectFromBox_RoundTrip(t *testing.T) {
	b := geom.Box{X: 5, Y: 7, W: 30, H: 40}
	r := geom.RectFromBox(b, 100, 200)

	assert.Equal(t, geom.Rect{Top: 207, Left: 105, Right: 135, Bottom: 247}, r)
	assert.Equal(t, geom.Box{X: 105, Y: 207, W: 30, H: 40}, r.Box())
}

func TestAggregateGroup(t *testing.T) {
	t.Run("empty yields zero box", func(t *testing.T) {
		assert.Equal(t, geom.Box{}, geom.AggregateGroup(nil))
	})

	t.Run("single member passes through", func(t *testing.T) {
		b := geom.Box{X: 3, Y: 4, W: 10, H: 12}
		assert.Equal(t, b, geom.AggregateGroup([]geom.Box{b}))
	})

	t.Run("three members with vertical gaps", func(t *testing.T) {
		// Heights 10,10,10 with 2-unit gaps between consecutive members:
		// aggregate height is 10+10+10+2+2 = 34.
		members := []geom.Box{
			{X: 5, Y: 0, W: 40, H: 10},
			{X: 7, Y: 12, W: 60, H: 10},
			{X: 6, Y: 24, W: 50, H: 10},
		}
		got := geom.AggregateGroup(members)

		assert.Equal(t, 5.0, got.X, "X is the minimum left edge")
		assert.Equal(t, 0.0, got.Y, "Y is the minimum top edge")
		assert.Equal(t, 60.0, got.W, "W is the widest member")
		assert.Equal(t, 34.0, got.H, "H sums heights plus gaps")
	})

	t.Run("overlapping members add no gap", func(t *testing.T) {
		members := []geom.Box{
			{Y: 0, W: 10, H: 20},
			{Y: 15, W: 10, H: 20},
		}
		assert.Equal(t, 40.0, geom.AggregateGroup(members).H)
	})

	t.Run("order independent", func(t *testing.T) {
		members := []geom.Box{
			{X: 7, Y: 12, W: 60, H: 10},
			{X: 6, Y: 24, W: 50, H: 10},
			{X: 5, Y: 0, W: 40, H: 10},
		}
		assert.Equal(t, 34.0, geom.AggregateGroup(members).H)
	})
}
