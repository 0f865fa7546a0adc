// internal/overlay/shape/shape.go

// Package shape measures annotation shape primitives. Every sizing
// function returns a bounding box in rendered (on-screen pixel) space;
// the normalized->rendered conversion uses the viewport of the surface
// found at the shape's current screen position.
package shape

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark/internal/overlay/geom"
	"github.com/pagemark/pagemark/internal/overlay/measure"
	"github.com/pagemark/pagemark/internal/overlay/surface"
)

// Attribute contract for annotation elements.
const (
	KindAttr = "data-annotation-kind"
	IDAttr   = "data-annotation-id"
)

// A perfectly horizontal line still needs a selectable height on
// screen. Zero-height lines get this fixed visual thickness, centered
// on the stroke.
const lineThickness = 16.0

// Kind is the closed set of annotation shape kinds. Dispatch over Kind
// must stay exhaustive; anything outside the set is rejected at parse
// time rather than silently measured as a zero box.
type Kind int

const (
	KindPath Kind = iota // freehand drawing
	KindLine
	KindText
	KindRect
	KindPoint // nested surface, pre-scaled by its own transform
	KindGroup // wrapper around sibling member shapes
)

var kindNames = map[string]Kind{
	"path":  KindPath,
	"line":  KindLine,
	"text":  KindText,
	"rect":  KindRect,
	"point": KindPoint,
	"group": KindGroup,
}

// String returns the attribute spelling of the kind.
func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrNotAnnotation = errors.New("shape: node carries no annotation kind")
	ErrUnknownKind   = errors.New("shape: unknown annotation kind")
	ErrNoSurface     = errors.New("shape: no surface found for shape")
	ErrEmptyGroup    = errors.New("shape: group has no member shapes")
)

// Of parses the node's kind attribute.
func Of(n *html.Node) (Kind, error) {
	if n == nil || n.Type != html.ElementNode {
		return 0, ErrNotAnnotation
	}
	name := htmlquery.SelectAttr(n, KindAttr)
	if name == "" {
		return 0, ErrNotAnnotation
	}
	k, ok := kindNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// ID returns the shared annotation identifier, empty when absent.
func ID(n *html.Node) string {
	return htmlquery.SelectAttr(n, IDAttr)
}

// IsAnnotation reports whether the node is kind-marked, regardless of
// whether the kind is known.
func IsAnnotation(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && htmlquery.SelectAttr(n, KindAttr) != ""
}

// Members returns the kind-marked member shapes of a group node, in
// document order. Only direct structure below the group is considered.
func Members(group *html.Node) []*html.Node {
	return htmlquery.Find(group, ".//*[@"+KindAttr+"]")
}

// Size computes the shape's bounding box in rendered space. Point
// shapes are returned as-is: they are nested surfaces already placed at
// final scale by their own transform and must not be scaled twice.
// Group nodes are sized by their first member shape only.
func Size(m measure.Measurer, doc, n *html.Node) (geom.Box, error) {
	kind, err := Of(n)
	if err != nil {
		return geom.Box{}, err
	}

	switch kind {
	case KindPath:
		box, err := DrawingBounds(htmlquery.SelectAttr(n, "d"))
		if err != nil {
			return geom.Box{}, err
		}
		return toRendered(m, doc, n, box)

	case KindLine:
		box, err := lineBox(n)
		if err != nil {
			return geom.Box{}, err
		}
		return toRendered(m, doc, n, box)

	case KindText:
		box, err := textBox(m, n)
		if err != nil {
			return geom.Box{}, err
		}
		return toRendered(m, doc, n, box)

	case KindRect:
		box, err := attrBox(n)
		if err != nil {
			return geom.Box{}, err
		}
		return toRendered(m, doc, n, box)

	case KindPoint:
		// Already in final scale.
		return attrBox(n)

	case KindGroup:
		members := Members(n)
		if len(members) == 0 {
			return geom.Box{}, ErrEmptyGroup
		}
		return Size(m, doc, members[0])
	}

	return geom.Box{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// lineBox measures a line from the signed delta of its endpoints, with
// the origin at the first endpoint. An exactly horizontal line gets the
// fixed thickness, shifting the top edge up by half of it.
func lineBox(n *html.Node) (geom.Box, error) {
	x1, err := floatAttr(n, "x1")
	if err != nil {
		return geom.Box{}, err
	}
	y1, err := floatAttr(n, "y1")
	if err != nil {
		return geom.Box{}, err
	}
	x2, err := floatAttr(n, "x2")
	if err != nil {
		return geom.Box{}, err
	}
	y2, err := floatAttr(n, "y2")
	if err != nil {
		return geom.Box{}, err
	}

	box := geom.Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
	if box.H == 0 {
		box.H = lineThickness
		box.Y -= lineThickness / 2
	}
	return box, nil
}

// textBox takes width and height from the live measurement and anchors
// the text baseline at the bottom of the box: the origin y is the
// anchor y minus the measured height.
func textBox(m measure.Measurer, n *html.Node) (geom.Box, error) {
	r, ok := m.BoundingRect(n)
	if !ok {
		return geom.Box{}, fmt.Errorf("shape: text node has no measurement")
	}

	x, err := floatAttr(n, "x")
	if err != nil {
		return geom.Box{}, err
	}
	y, err := floatAttr(n, "y")
	if err != nil {
		return geom.Box{}, err
	}

	h := r.Bottom - r.Top
	return geom.Box{X: x, Y: y - h, W: r.Right - r.Left, H: h}, nil
}

// attrBox reads explicit size/position attributes.
func attrBox(n *html.Node) (geom.Box, error) {
	x, err := floatAttr(n, "x")
	if err != nil {
		return geom.Box{}, err
	}
	y, err := floatAttr(n, "y")
	if err != nil {
		return geom.Box{}, err
	}
	w, err := floatAttr(n, "width")
	if err != nil {
		return geom.Box{}, err
	}
	h, err := floatAttr(n, "height")
	if err != nil {
		return geom.Box{}, err
	}
	return geom.Box{X: x, Y: y, W: w, H: h}, nil
}

// toRendered converts a normalized box to rendered space using the
// viewport of the surface under the shape's measured screen position.
// When the shape carries no measurement the ancestry walk decides.
func toRendered(m measure.Measurer, doc, n *html.Node, box geom.Box) (geom.Box, error) {
	s := surfaceFor(m, doc, n)
	if s == nil {
		return geom.Box{}, ErrNoSurface
	}

	md, err := surface.MetadataOf(s)
	if err != nil {
		return geom.Box{}, err
	}
	return md.Viewport.ScaleUp(box), nil
}

func surfaceFor(m measure.Measurer, doc, n *html.Node) *html.Node {
	if r, ok := m.BoundingRect(n); ok {
		if s := surface.AtPoint(doc, m, r.Left, r.Top); s != nil {
			return s
		}
	}
	return surface.FindContaining(n)
}

func floatAttr(n *html.Node, key string) (float64, error) {
	raw := htmlquery.SelectAttr(n, key)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("shape: bad %s attribute %q: %w", key, raw, err)
	}
	return v, nil
}
