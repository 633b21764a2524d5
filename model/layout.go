package model

// PageLayout describes one physical page. Width and Height are 0 when the
// upstream parser could not determine the page size.
type PageLayout struct {
	PageNo int     `json:"page_no"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HasSize reports whether the page dimensions are known.
func (p PageLayout) HasSize() bool {
	return p.Width > 0 && p.Height > 0
}

// SpanLayout is the geometry of one source item in top-left-origin page
// coordinates. A span whose item carries no provenance, or whose page has
// unknown size, has no SpanLayout at all.
type SpanLayout struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	PageNo int     `json:"page_no"`
}

// DocLayout aggregates all pages of a document in ascending page number order.
type DocLayout struct {
	Pages []PageLayout `json:"pages"`
}

// Page returns the layout for the given page number, if present.
func (d DocLayout) Page(pageNo int) (PageLayout, bool) {
	for _, p := range d.Pages {
		if p.PageNo == pageNo {
			return p, true
		}
	}
	return PageLayout{}, false
}
