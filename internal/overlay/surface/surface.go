// internal/overlay/surface/surface.go

// Package surface locates and describes rendered-page surfaces: the
// externally rendered containers that hold a single page's annotation
// shapes. The package is a read-only query layer; surfaces are created
// and destroyed by the host renderer.
package surface

import (
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark/internal/overlay/geom"
	"github.com/pagemark/pagemark/internal/overlay/measure"
)

// Attribute contract between the renderer and this module.
const (
	// MarkerAttr distinguishes a surface from every other node.
	MarkerAttr = "data-annotation-surface"

	DocumentIDAttr = "data-document-id"
	PageNumberAttr = "data-page-number"
	ViewportAttr   = "data-viewport"
)

// Is reports whether the node is marked as a rendered-page surface.
func Is(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == MarkerAttr {
			return true
		}
	}
	return false
}

// FindContaining walks the parent chain upward from el until it reaches
// a surface node. The walk stops at the document root boundary without
// inspecting the root itself; nil means el is not inside any surface.
func FindContaining(el *html.Node) *html.Node {
	for n := el; n != nil && n.Type != html.DocumentNode; n = n.Parent {
		if Is(n) {
			return n
		}
	}
	return nil
}

// All returns every surface in the tree, in document order.
func All(doc *html.Node) []*html.Node {
	return htmlquery.Find(doc, "//*[@"+MarkerAttr+"]")
}

// AtPoint returns the first surface in document order whose measured
// screen rectangle contains the point, or nil when no surface does.
// Edge containment is inclusive. When surfaces overlap, document order
// decides; callers needing deterministic results must keep surfaces
// disjoint.
func AtPoint(doc *html.Node, m measure.Measurer, x, y float64) *html.Node {
	for _, s := range All(doc) {
		r, ok := m.BoundingRect(s)
		if !ok {
			continue
		}
		if r.ContainsPoint(x, y) {
			return s
		}
	}
	return nil
}

// Offset walks upward from el until it hits a surface node or the root
// boundary and returns the screen left/top of whichever node the walk
// stopped at. Without a surface ancestor that is the terminus element
// just below the root.
func Offset(m measure.Measurer, el *html.Node) (left, top float64) {
	var terminus *html.Node
	for n := el; n != nil && n.Type != html.DocumentNode; n = n.Parent {
		terminus = n
		if Is(n) {
			break
		}
	}
	if terminus == nil {
		return 0, 0
	}

	r, ok := m.BoundingRect(terminus)
	if !ok {
		return 0, 0
	}
	return r.Left, r.Top
}

// ScrollOf sums the scroll offsets of el and every ancestor up to the
// root. Hosts use it to translate between viewport and page coordinates;
// nothing inside this module consumes it.
func ScrollOf(m measure.Measurer, el *html.Node) (x, y float64) {
	for n := el; n != nil && n.Type != html.DocumentNode; n = n.Parent {
		sx, sy := m.Scroll(n)
		x += sx
		y += sy
	}
	return x, y
}

// ScreenRect returns the measured screen rectangle of a surface.
func ScreenRect(m measure.Measurer, s *html.Node) (geom.Rect, bool) {
	return m.BoundingRect(s)
}
