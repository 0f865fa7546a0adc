// internal/overlay/annotation/locator.go

// Package annotation resolves annotation elements from viewport
// coordinates and computes aggregate bounds for grouped annotations.
package annotation

import (
	"fmt"

	"github.com/antchfx/htmlquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark/internal/overlay/geom"
	"github.com/pagemark/pagemark/internal/overlay/measure"
	"github.com/pagemark/pagemark/internal/overlay/shape"
	"github.com/pagemark/pagemark/internal/overlay/surface"
)

// Locator answers point and identity queries against a rendered tree.
// It holds no tree state of its own; every query walks the tree it is
// handed, so the host may mutate the tree freely between calls.
type Locator struct {
	meas   measure.Measurer
	logger *zap.Logger
}

// New creates a locator backed by the given measurer. A nil logger is
// replaced with a no-op.
func New(m measure.Measurer, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{meas: m, logger: logger}
}

// AtPoint returns the annotation element under the viewport point, or
// nil when the point hits no surface or no annotation. Candidates are
// tested in document order against their rendered hit rectangle (shape
// size plus the surface's screen offset), edges inclusive.
//
// Group nodes are sized by their first member shape only. That is a
// deliberate approximation inherited from the hit-test this replaces;
// callers needing the true outer bound of a group use Bounds.
//
// Candidates that fail to size (unknown kind, malformed geometry
// attributes, broken surface metadata) are skipped and logged rather
// than failing the whole lookup.
func (l *Locator) AtPoint(doc *html.Node, x, y float64) *html.Node {
	s := surface.AtPoint(doc, l.meas, x, y)
	if s == nil {
		return nil
	}

	offRect, ok := surface.ScreenRect(l.meas, s)
	if !ok {
		l.logger.Debug("surface has no screen measurement", zap.Float64("x", x), zap.Float64("y", y))
		return nil
	}

	for _, el := range htmlquery.Find(s, ".//*[@"+shape.KindAttr+"]") {
		size, err := shape.Size(l.meas, doc, el)
		if err != nil {
			l.logger.Debug("skipping unsizable annotation candidate",
				zap.String("id", shape.ID(el)), zap.Error(err))
			continue
		}

		if geom.RectFromBox(size, offRect.Left, offRect.Top).ContainsPoint(x, y) {
			return el
		}
	}
	return nil
}

// Bounds computes the aggregate rendered bounding box of every member
// shape sharing the annotation id, searched below root (a surface or a
// whole document). ok is false when the id matches nothing. Unlike
// AtPoint, a member that fails to size fails the query: the caller
// asked about this annotation specifically, and partial bounds would be
// silently wrong.
func (l *Locator) Bounds(doc, root *html.Node, id string) (geom.Box, bool, error) {
	query := fmt.Sprintf(".//*[@%s=%q][@%s]", shape.IDAttr, id, shape.KindAttr)

	var boxes []geom.Box
	for _, el := range htmlquery.Find(root, query) {
		kind, err := shape.Of(el)
		if err != nil {
			return geom.Box{}, false, err
		}
		if kind == shape.KindGroup {
			// The wrapper shares the id; its members are counted
			// individually.
			continue
		}

		size, err := shape.Size(l.meas, doc, el)
		if err != nil {
			return geom.Box{}, false, fmt.Errorf("annotation %s: %w", id, err)
		}
		boxes = append(boxes, size)
	}

	if len(boxes) == 0 {
		return geom.Box{}, false, nil
	}
	return geom.AggregateGroup(boxes), true, nil
}
