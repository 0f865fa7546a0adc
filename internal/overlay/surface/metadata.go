// internal/overlay/surface/metadata.go
package surface

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/antchfx/htmlquery"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark/internal/overlay/geom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Metadata parse failures. A surface missing its viewport is a renderer
// defect; propagating it as an undefined scale would only turn up later
// as NaN geometry, so it is surfaced here instead.
var (
	ErrNotSurface  = errors.New("surface: node is not marked as a surface")
	ErrNoViewport  = errors.New("surface: missing viewport attribute")
	ErrBadViewport = errors.New("surface: malformed viewport attribute")
)

// Viewport is the per-surface render descriptor. Scale relates the
// surface's normalized (100%) coordinate space to its rendered pixel
// space and applies uniformly to both axes.
type Viewport struct {
	Scale    float64 `json:"scale"`
	Rotation int     `json:"rotation,omitempty"`
}

// ScaleUp converts a box from normalized to rendered space by
// multiplying every field by the viewport scale. Positions and lengths
// scale identically, which holds because the scale is uniform.
func (v Viewport) ScaleUp(b geom.Box) geom.Box {
	return geom.Box{
		X: b.X * v.Scale,
		Y: b.Y * v.Scale,
		W: b.W * v.Scale,
		H: b.H * v.Scale,
	}
}

// ScaleDown converts a box from rendered back to normalized space. It
// is the exact inverse of ScaleUp for any nonzero scale.
func (v Viewport) ScaleDown(b geom.Box) geom.Box {
	return geom.Box{
		X: b.X / v.Scale,
		Y: b.Y / v.Scale,
		W: b.W / v.Scale,
		H: b.H / v.Scale,
	}
}

// Metadata is the identity and render state a surface carries in its
// attributes.
type Metadata struct {
	DocumentID string
	PageNumber int
	Viewport   Viewport
}

// MetadataOf reads the surface's document identifier, page number and
// viewport descriptor. A missing or unparseable viewport, a nonsensical
// scale, or a non-integer page number is an error.
func MetadataOf(s *html.Node) (Metadata, error) {
	if !Is(s) {
		return Metadata{}, ErrNotSurface
	}

	md := Metadata{DocumentID: htmlquery.SelectAttr(s, DocumentIDAttr)}

	pageStr := htmlquery.SelectAttr(s, PageNumberAttr)
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return Metadata{}, fmt.Errorf("surface: bad page number %q: %w", pageStr, err)
	}
	md.PageNumber = page

	raw := htmlquery.SelectAttr(s, ViewportAttr)
	if raw == "" {
		return Metadata{}, ErrNoViewport
	}
	if err := json.UnmarshalFromString(raw, &md.Viewport); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrBadViewport, err)
	}
	if md.Viewport.Scale == 0 || math.IsNaN(md.Viewport.Scale) || math.IsInf(md.Viewport.Scale, 0) {
		return Metadata{}, fmt.Errorf("%w: scale %v", ErrBadViewport, md.Viewport.Scale)
	}

	return md, nil
}
