// internal/overlay/measure/measure.go
package measure

import (
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark/internal/overlay/geom"
)

// Attribute names understood by the snapshot-backed measurer. A renderer
// exporting a snapshot writes each element's final screen rectangle and
// scroll offsets into these attributes.
const (
	ScreenRectAttr = "data-screen-rect" // "left top width height"
	ScrollAttr     = "data-scroll"      // "x y"
)

// Measurer supplies on-screen measurements for elements of a rendered
// tree. The library itself never computes layout; whatever rendered the
// tree owns the real numbers and exposes them through this interface.
type Measurer interface {
	// BoundingRect returns the element's screen rectangle in viewport
	// space. ok is false when no measurement exists for the node.
	BoundingRect(n *html.Node) (r geom.Rect, ok bool)

	// Scroll returns the element's own scroll offsets.
	Scroll(n *html.Node) (x, y float64)
}

// FromAttributes measures elements from snapshot attributes. It is the
// measurer used by the CLI and by tests; a live host embedding this
// library supplies its own Measurer instead.
type FromAttributes struct{}

var _ Measurer = FromAttributes{}

// BoundingRect parses the element's serialized screen rectangle.
func (FromAttributes) BoundingRect(n *html.Node) (geom.Rect, bool) {
	if n == nil || n.Type != html.ElementNode {
		return geom.Rect{}, false
	}

	fields := strings.Fields(htmlquery.SelectAttr(n, ScreenRectAttr))
	if len(fields) != 4 {
		return geom.Rect{}, false
	}

	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Rect{}, false
		}
		vals[i] = v
	}

	left, top, w, h := vals[0], vals[1], vals[2], vals[3]
	return geom.Rect{Top: top, Left: left, Right: left + w, Bottom: top + h}, true
}

// Scroll parses the element's serialized scroll offsets. Elements without
// the attribute report zero, which is the common case.
func (FromAttributes) Scroll(n *html.Node) (float64, float64) {
	if n == nil || n.Type != html.ElementNode {
		return 0, 0
	}

	fields := strings.Fields(htmlquery.SelectAttr(n, ScrollAttr))
	if len(fields) != 2 {
		return 0, 0
	}

	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	if errX != nil || errY != nil {
		return 0, 0
	}
	return x, y
}
