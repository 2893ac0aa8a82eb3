package document

import (
	"math"
	"sort"
	"strings"
)

// Fragment is a positioned piece of text emitted by a PDF text layer.
// Coordinates follow PDF conventions: origin bottom-left, Y grows upward.
type Fragment struct {
	Text string
	X    float64
	Y    float64
}

// ReconstructLines turns positioned fragments into lines of text in reading
// order. Fragments are grouped by the integer floor of their Y coordinate so
// that sub-pixel jitter between pieces of the same visual row is tolerated,
// sorted left-to-right within a row, and rows are emitted top-to-bottom
// (highest Y first). An empty fragment stream yields no lines.
func ReconstructLines(fragments []Fragment) []string {
	rows := make(map[int][]Fragment)
	for _, f := range fragments {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		y := int(math.Floor(f.Y))
		rows[y] = append(rows[y], f)
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	var lines []string
	for _, y := range ys {
		items := rows[y]
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].X < items[b].X
		})

		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, item.Text)
		}
		line := strings.TrimSpace(strings.Join(parts, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ReconstructPages reconstructs each page independently and joins them in
// page order separated by a blank line, so later stages can treat a blank
// line as a page boundary.
func ReconstructPages(pages [][]Fragment) string {
	texts := make([]string, 0, len(pages))
	for _, frags := range pages {
		texts = append(texts, strings.Join(ReconstructLines(frags), "\n"))
	}
	return strings.Join(texts, "\n\n")
}
