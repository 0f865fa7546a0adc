// internal/overlay/shape/drawing.go
package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pagemark/pagemark/internal/overlay/geom"
)

var ErrEmptyDrawing = errors.New("shape: drawing has no subpaths")

// DrawingBounds computes the normalized bounding box of a freehand
// drawing from its path description. Each subpath is introduced by a
// move command and optionally closed; the draw tool emits a
// rectangle-defining quad as the four leading numeric tokens of every
// subpath, interpreted as [x0 y0 x1 y1]. The result folds the minimum
// of the x0/y0 tokens against the maximum of the x1/y1 tokens across
// all subpaths.
func DrawingBounds(d string) (geom.Box, error) {
	var minX, minY, maxX, maxY float64
	found := false

	for _, sub := range splitSubpaths(d) {
		quad, err := leadingQuad(sub)
		if err != nil {
			return geom.Box{}, err
		}

		if !found {
			minX, minY, maxX, maxY = quad[0], quad[1], quad[2], quad[3]
			found = true
			continue
		}
		if quad[0] < minX {
			minX = quad[0]
		}
		if quad[1] < minY {
			minY = quad[1]
		}
		if quad[2] > maxX {
			maxX = quad[2]
		}
		if quad[3] > maxY {
			maxY = quad[3]
		}
	}

	if !found {
		return geom.Box{}, ErrEmptyDrawing
	}
	return geom.Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, nil
}

// splitSubpaths cuts the path description at each move command and
// drops close commands; the returned segments hold only coordinate
// data.
func splitSubpaths(d string) []string {
	var subs []string
	for _, seg := range strings.FieldsFunc(d, func(r rune) bool {
		return r == 'M' || r == 'm'
	}) {
		seg = strings.Map(func(r rune) rune {
			if r == 'Z' || r == 'z' || r == ',' {
				return ' '
			}
			return r
		}, seg)
		if strings.TrimSpace(seg) == "" {
			continue
		}
		subs = append(subs, seg)
	}
	return subs
}

// leadingQuad parses the four leading numeric tokens of one subpath.
func leadingQuad(sub string) ([4]float64, error) {
	var quad [4]float64

	fields := strings.Fields(sub)
	if len(fields) < 4 {
		return quad, fmt.Errorf("shape: subpath %q has %d tokens, need 4", sub, len(fields))
	}
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return quad, fmt.Errorf("shape: bad subpath token %q: %w", fields[i], err)
		}
		quad[i] = v
	}
	return quad, nil
}
