package model

// Page is one physical page of a source document. Width and Height are in
// the parser's units (points for PDF) and are 0 when unknown.
type Page struct {
	Number int
	Width  float64
	Height float64
}

// HasSize reports whether the page dimensions are known.
func (p Page) HasSize() bool {
	return p.Width > 0 && p.Height > 0
}

// Layout returns the page as a PageLayout value.
func (p Page) Layout() PageLayout {
	return PageLayout{PageNo: p.Number, Width: p.Width, Height: p.Height}
}
