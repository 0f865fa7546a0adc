// internal/overlay/selection/selection.go

// Package selection owns the one style rule this module ever injects:
// a process-wide suppression of text selection on the document body,
// used by the host while annotation tools are active.
package selection

import (
	"sync"
	"sync/atomic"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// MarkerAttr tags the injected style element so the host (and tests)
// can tell it apart from author styles.
const MarkerAttr = "data-pagemark-style"

const suppressCSS = `body{-webkit-user-select:none;-moz-user-select:none;-ms-user-select:none;user-select:none}`

// Toggle owns a single <style> element suppressing text selection. The
// element is built once at construction and then attached and detached
// repeatedly; it is never rebuilt or destroyed. Toggle assumes the
// synchronous single-dispatch calling model of the host UI and does no
// locking of its own.
type Toggle struct {
	parent   *html.Node
	rule     *html.Node
	attached bool
}

// New builds the style rule for a document. The rule attaches under
// <head> when present, else under the root element.
func New(doc *html.Node) *Toggle {
	rule := &html.Node{
		Type: html.ElementNode,
		Data: "style",
		Attr: []html.Attribute{{Key: MarkerAttr, Val: "user-select"}},
	}
	rule.AppendChild(&html.Node{Type: html.TextNode, Data: suppressCSS})

	parent := htmlquery.FindOne(doc, "//head")
	if parent == nil {
		for n := doc.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode {
				parent = n
				break
			}
		}
	}
	if parent == nil {
		parent = doc
	}

	return &Toggle{parent: parent, rule: rule}
}

// Disable attaches the suppression rule. Calling it while already
// attached leaves exactly one rule in place.
func (t *Toggle) Disable() {
	if t.attached {
		return
	}
	t.parent.AppendChild(t.rule)
	t.attached = true
}

// Enable detaches the suppression rule. A no-op when never attached.
func (t *Toggle) Enable() {
	if !t.attached {
		return
	}
	t.parent.RemoveChild(t.rule)
	t.attached = false
}

// Attached reports the current attachment state.
func (t *Toggle) Attached() bool {
	return t.attached
}

// -- Process-Wide Default --

var (
	defaultToggle atomic.Pointer[Toggle]
	once          sync.Once
)

// Init binds the process-wide toggle to a document. The first call
// constructs the rule; later calls return the existing toggle
// unchanged.
func Init(doc *html.Node) *Toggle {
	once.Do(func() {
		defaultToggle.Store(New(doc))
	})
	return defaultToggle.Load()
}

// DisableUserSelect attaches the process-wide rule. Idempotent; a no-op
// before Init.
func DisableUserSelect() {
	if t := defaultToggle.Load(); t != nil {
		t.Disable()
	}
}

// EnableUserSelect detaches the process-wide rule. Idempotent; a no-op
// before Init or when never attached.
func EnableUserSelect() {
	if t := defaultToggle.Load(); t != nil {
		t.Enable()
	}
}

// ResetForTest clears the process-wide toggle. Tests only.
func ResetForTest() {
	defaultToggle.Store(nil)
	once = sync.Once{}
}
