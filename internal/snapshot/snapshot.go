// internal/snapshot/snapshot.go

// Package snapshot loads renderer-exported HTML snapshots: the rendered
// page trees the CLI runs its geometry queries against.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Load reads and parses a snapshot file.
func Load(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a snapshot from a reader.
func Parse(r io.Reader) (*html.Node, error) {
	return htmlquery.Parse(r)
}

// RootElement returns the document's root element (normally <html>),
// or nil for a document with no element children.
func RootElement(doc *html.Node) *html.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}
