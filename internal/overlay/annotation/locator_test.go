// internal/overlay/annotation/locator_test.go
package annotation_test

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark/internal/overlay/annotation"
	"github.com/pagemark/pagemark/internal/overlay/geom"
	"github.com/pagemark/pagemark/internal/overlay/measure"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// One page at 100% whose screen rectangle spans (100,200)-(500,800).
// The unknown "blob" kind sits first in document order on purpose: the
// locator must skip it and still find later candidates.
const locatorSnapshot = `
<html><head></head><body>
  <div id="page" data-annotation-surface data-document-id="doc-1" data-page-number="1"
       data-viewport='{"scale":1}' data-screen-rect="100 200 400 600">
    <div id="bad" data-annotation-kind="blob"></div>
    <div id="r1" data-annotation-kind="rect" data-annotation-id="a-rect"
         x="5" y="5" width="20" height="30"></div>
    <div id="g1" data-annotation-kind="group" data-annotation-id="grp-1">
      <div data-annotation-kind="line" data-annotation-id="grp-1" x1="0" y1="100" x2="30" y2="100"></div>
      <div data-annotation-kind="line" data-annotation-id="grp-1" x1="0" y1="112" x2="40" y2="112"></div>
    </div>
    <div data-annotation-kind="rect" data-annotation-id="stack" x="5" y="200" width="40" height="10"></div>
    <div data-annotation-kind="rect" data-annotation-id="stack" x="7" y="212" width="60" height="10"></div>
    <div data-annotation-kind="rect" data-annotation-id="stack" x="6" y="224" width="50" height="10"></div>
    <div data-annotation-kind="rect" data-annotation-id="broken" x="oops" y="0" width="1" height="1"></div>
  </div>
</body></html>`

func parseLocatorSnapshot(t *testing.T) *html.Node {
	t.Helper()
	doc, err := htmlquery.Parse(strings.NewReader(locatorSnapshot))
	require.NoError(t, err)
	return doc
}

func newLocator() *annotation.Locator {
	return annotation.New(measure.FromAttributes{}, nil)
}

func TestAtPoint(t *testing.T) {
	doc := parseLocatorSnapshot(t)
	loc := newLocator()

	t.Run("hits a rectangle", func(t *testing.T) {
		// Rect {5,5,20,30} plus surface offset (100,200) spans
		// (105,205)-(125,235).
		el := loc.AtPoint(doc, 110, 220)
		require.NotNil(t, el)
		assert.Equal(t, "r1", htmlquery.SelectAttr(el, "id"))
	})

	t.Run("edge of the hit rectangle is inclusive", func(t *testing.T) {
		el := loc.AtPoint(doc, 105, 205)
		require.NotNil(t, el)
		assert.Equal(t, "r1", htmlquery.SelectAttr(el, "id"))
	})

	t.Run("group matches via its first member", func(t *testing.T) {
		// First member: horizontal line at y=100, thickness box
		// {0,92,30,16}, so (100,292)-(130,308) on screen.
		el := loc.AtPoint(doc, 115, 300)
		require.NotNil(t, el)
		assert.Equal(t, "g1", htmlquery.SelectAttr(el, "id"))
	})

	t.Run("point below every shape misses", func(t *testing.T) {
		// (115,500) is on the surface but below the group members and
		// the stacked rectangles, which end at y=434 on screen.
		assert.Nil(t, loc.AtPoint(doc, 115, 500))
	})

	t.Run("point on a surface but on no annotation", func(t *testing.T) {
		assert.Nil(t, loc.AtPoint(doc, 450, 750))
	})

	t.Run("point outside every surface", func(t *testing.T) {
		assert.Nil(t, loc.AtPoint(doc, 50, 50))
	})

	t.Run("unsizable candidates are skipped, not fatal", func(t *testing.T) {
		// #bad precedes #r1 in document order and cannot be sized.
		el := loc.AtPoint(doc, 110, 220)
		require.NotNil(t, el)
		assert.Equal(t, "r1", htmlquery.SelectAttr(el, "id"))
	})
}

func TestBounds(t *testing.T) {
	doc := parseLocatorSnapshot(t)
	loc := newLocator()

	t.Run("aggregates stacked members", func(t *testing.T) {
		// Heights 10,10,10 with 2-unit gaps: aggregate height 34.
		box, ok, err := loc.Bounds(doc, doc, "stack")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, geom.Box{X: 5, Y: 200, W: 60, H: 34}, box)
	})

	t.Run("group wrapper does not double count", func(t *testing.T) {
		// Two horizontal lines at y=100 and y=112, thickness boxes
		// {0,92,30,16} and {0,104,40,16}; they overlap so no gap.
		box, ok, err := loc.Bounds(doc, doc, "grp-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, geom.Box{X: 0, Y: 92, W: 40, H: 32}, box)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, ok, err := loc.Bounds(doc, doc, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unsizable member fails the query", func(t *testing.T) {
		_, _, err := loc.Bounds(doc, doc, "broken")
		assert.Error(t, err)
	})
}
