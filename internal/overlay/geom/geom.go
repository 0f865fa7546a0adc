// internal/overlay/geom/geom.go
package geom

import "sort"

// -- Core Structures --

// Box is an axis-aligned bounding box with an origin and extents.
// Whether its values are in normalized (100% page scale) or rendered
// (on-screen pixel) space is a property of the call site, never of the
// value itself; callers must track which space they hold.
type Box struct {
	X, Y, W, H float64
}

// Rect is the collision form of a rectangle, expressed by its edges.
// It is always in the same space as the point tested against it.
type Rect struct {
	Top, Left, Right, Bottom float64
}

// RectFromBox converts a box at a screen offset into its collision form.
func RectFromBox(b Box, offsetLeft, offsetTop float64) Rect {
	return Rect{
		Top:    offsetTop + b.Y,
		Left:   offsetLeft + b.X,
		Right:  offsetLeft + b.X + b.W,
		Bottom: offsetTop + b.Y + b.H,
	}
}

// Box returns the origin/extent form of the rectangle.
func (r Rect) Box() Box {
	return Box{X: r.Left, Y: r.Top, W: r.Right - r.Left, H: r.Bottom - r.Top}
}

// ContainsPoint reports whether (x, y) lies inside the rectangle.
// All four edges are inclusive, so a point exactly on an edge collides.
func (r Rect) ContainsPoint(x, y float64) bool {
	return y >= r.Top && y <= r.Bottom && x >= r.Left && x <= r.Right
}

// -- Group Aggregation --

// AggregateGroup merges the bounding boxes of the member shapes of one
// grouped annotation into a single outer bound:
//
//   - X is the minimum left edge and Y the minimum top edge.
//   - W is the widest member, not the true outer-bound width. Members
//     offset horizontally from each other can therefore extend past the
//     aggregate; callers relying on W accept that approximation.
//   - H is the sum of member heights plus the positive vertical gaps
//     between consecutive members in top-to-bottom order.
//
// An empty input yields the zero box.
func AggregateGroup(members []Box) Box {
	if len(members) == 0 {
		return Box{}
	}

	ordered := make([]Box, len(members))
	copy(ordered, members)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Y < ordered[j].Y
	})

	agg := Box{X: ordered[0].X, Y: ordered[0].Y}
	bottom := ordered[0].Y

	for i, m := range ordered {
		if m.X < agg.X {
			agg.X = m.X
		}
		if m.W > agg.W {
			agg.W = m.W
		}

		agg.H += m.H
		if i > 0 {
			if gap := m.Y - bottom; gap > 0 {
				agg.H += gap
			}
		}
		if b := m.Y + m.H; b > bottom {
			bottom = b
		}
	}

	return agg
}
