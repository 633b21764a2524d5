package pdfconv

import (
	"sort"
	"strings"

	"github.com/tsawler/docspan/model"
)

// mark is one positioned text run from a page's content stream, in PDF
// bottom-left-origin coordinates.
type mark struct {
	text string
	x    float64 // left edge
	y    float64 // baseline
	w    float64 // advance width
	size float64 // font size
}

// groupLines clusters marks into visual lines: marks whose baselines sit
// within tol of the line's first baseline belong to the same line. Lines
// come out top-to-bottom, marks within a line left-to-right.
func groupLines(marks []mark, tol float64) [][]mark {
	if len(marks) == 0 {
		return nil
	}
	sorted := append([]mark(nil), marks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].y != sorted[j].y {
			return sorted[i].y > sorted[j].y // higher y is higher on the page
		}
		return sorted[i].x < sorted[j].x
	})

	var lines [][]mark
	var cur []mark
	baseline := sorted[0].y
	for _, m := range sorted {
		if len(cur) > 0 && baseline-m.y > tol {
			lines = append(lines, cur)
			cur = nil
		}
		if len(cur) == 0 {
			baseline = m.y
		}
		cur = append(cur, m)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].x < line[j].x })
	}
	return lines
}

// lineText joins a line's runs into text, inserting a space where the
// horizontal gap between runs suggests a word break the content stream
// did not encode as a space character.
func lineText(line []mark) string {
	var sb strings.Builder
	for i, m := range line {
		if i > 0 {
			prev := line[i-1]
			gap := m.x - (prev.x + prev.w)
			if gap > prev.size*0.2 && !strings.HasSuffix(prev.text, " ") && !strings.HasPrefix(m.text, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(m.text)
	}
	return strings.TrimSpace(sb.String())
}

// lineBBox returns the union of a line's run boxes in bottom-left origin.
// A run's vertical extent is approximated from its baseline and font size.
func lineBBox(line []mark) model.BBox {
	box := markBBox(line[0])
	for _, m := range line[1:] {
		box = box.Union(markBBox(m))
	}
	return box
}

func markBBox(m mark) model.BBox {
	return model.BBox{
		Left:   m.x,
		Right:  m.x + m.w,
		Bottom: m.y,
		Top:    m.y + m.size,
		Origin: model.BottomLeft,
	}
}

// lineSize returns the dominant (largest) font size in a line.
func lineSize(line []mark) float64 {
	var max float64
	for _, m := range line {
		if m.size > max {
			max = m.size
		}
	}
	return max
}

// medianSize returns the median font size across all marks, 0 when empty.
func medianSize(marks []mark) float64 {
	if len(marks) == 0 {
		return 0
	}
	sizes := make([]float64, len(marks))
	for i, m := range marks {
		sizes[i] = m.size
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2]
}
