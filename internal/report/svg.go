package report

import (
	"fmt"
	"io"
	"math"
	"strings"
)

var strokeColors = []string{"#00ff88", "#4da6ff", "#ffaa00", "#ff5c8a", "#c77dff", "#f1fa8c"}

// OrbitSVG draws one path per body from stored state rows of
// [x, y, vx, vy] per body. All paths share one set of bounds.
func OrbitSVG(w io.Writer, names []string, states [][]float64, width, height int) error {
	if len(states) < 2 {
		return fmt.Errorf("report: need at least 2 samples, got %d", len(states))
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("report: invalid size %dx%d", width, height)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, row := range states {
		for b := range names {
			if 4*b+1 >= len(row) {
				return fmt.Errorf("report: state row has %d values, want %d", len(row), 4*len(names))
			}
			x, y := row[4*b], row[4*b+1]
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	// 10% padding
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for b, name := range names {
		color := strokeColors[b%len(strokeColors)]
		fmt.Fprintf(&sb, `<path id=%q fill="none" stroke="%s" stroke-width="1.5" d="`, name, color)
		for i, row := range states {
			x := (row[4*b] - minX) / rangeX * float64(width)
			y := float64(height) - (row[4*b+1]-minY)/rangeY*float64(height)
			if i == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
