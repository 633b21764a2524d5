package model

import "math"

// CoordOrigin identifies the corner of the page that a bounding box's
// vertical coordinates are measured from. PDF parsers typically report
// boxes from the bottom-left corner; word processors from the top-left.
type CoordOrigin int

const (
	// TopLeft means Top and Bottom grow downward from the top edge.
	TopLeft CoordOrigin = iota
	// BottomLeft means Top and Bottom grow upward from the bottom edge.
	BottomLeft
)

// String returns a human-readable representation of the origin.
func (o CoordOrigin) String() string {
	switch o {
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// BBox is a bounding box as reported by an upstream document parser:
// a horizontal extent (Left < Right) and a vertical extent (Top, Bottom)
// measured from the edge named by Origin.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Origin CoordOrigin
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box regardless of origin.
func (b BBox) Height() float64 {
	return math.Abs(b.Top - b.Bottom)
}

// Union returns the smallest box covering both b and other.
// Both boxes must share the same coordinate origin.
func (b BBox) Union(other BBox) BBox {
	out := BBox{
		Left:   math.Min(b.Left, other.Left),
		Right:  math.Max(b.Right, other.Right),
		Origin: b.Origin,
	}
	if b.Origin == BottomLeft {
		out.Top = math.Max(b.Top, other.Top)
		out.Bottom = math.Min(b.Bottom, other.Bottom)
	} else {
		out.Top = math.Min(b.Top, other.Top)
		out.Bottom = math.Max(b.Bottom, other.Bottom)
	}
	return out
}

// Rect is a normalized rectangle in top-left-origin page coordinates:
// X grows rightward, Y grows downward from the top edge.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Normalize converts the box into a top-left-origin Rect on a page of the
// given height. Two boxes describing the same region in different origins
// normalize to identical rectangles. The caller guarantees pageHeight is a
// known positive value; geometry is never computed for pages of unknown size.
func (b BBox) Normalize(pageHeight float64) Rect {
	r := Rect{
		X:     b.Left,
		Width: b.Right - b.Left,
	}
	if b.Origin == BottomLeft {
		r.Y = pageHeight - b.Top
		r.Height = b.Top - b.Bottom
	} else {
		r.Y = b.Top
		r.Height = b.Bottom - b.Top
	}
	return r
}
