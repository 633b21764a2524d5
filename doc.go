package docspan

import (
	"github.com/tsawler/docspan/model"
	"github.com/tsawler/docspan/tokenize"
)

// Doc is an aligned document: a flat token stream, named groups of layout
// spans over it, the document's page layout, and a markdown rendering of
// the source structure. A Doc is built once during conversion and
// read-only afterward.
type Doc struct {
	Tokens   []tokenize.Token
	Spans    map[string][]*Span
	Layout   model.DocLayout
	Markdown string
	Warnings []Warning

	attrs    Attrs
	headings map[model.Label]bool
}

// Span is a contiguous token range [Start, End) owned by one source item.
// Layout is nil when the item's position is unknown; Data is set only for
// table-family spans. Spans within a group never overlap and appear in
// reading order.
type Span struct {
	Start  int
	End    int
	Label  model.Label
	Layout *model.SpanLayout
	Data   *model.Frame

	id  int // stable index within the span group
	doc *Doc
}

// ID returns the span's stable index within its group.
func (s *Span) ID() int {
	return s.id
}

// Text renders the span's tokens.
func (s *Span) Text() string {
	return tokenize.Render(s.doc.Tokens[s.Start:s.End])
}

// Text renders the full token stream, separator tokens included.
func (d *Doc) Text() string {
	return tokenize.Render(d.Tokens)
}

// Group returns the layout span group, in reading order.
func (d *Doc) Group() []*Span {
	return d.Spans[d.attrs.SpanGroup]
}

// PageSpans pairs one page's layout with the spans positioned on it.
type PageSpans struct {
	Page  model.PageLayout
	Spans []*Span
}

// Pages groups the span collection by page, ascending by page number,
// preserving span order within each page. Spans without layout appear on
// no page.
func (d *Doc) Pages() []PageSpans {
	byPage := make(map[int][]*Span)
	for _, span := range d.Group() {
		if span.Layout == nil {
			continue
		}
		byPage[span.Layout.PageNo] = append(byPage[span.Layout.PageNo], span)
	}
	out := make([]PageSpans, 0, len(d.Layout.Pages))
	for _, page := range d.Layout.Pages {
		out = append(out, PageSpans{Page: page, Spans: byPage[page.PageNo]})
	}
	return out
}

// Tables returns the table-family spans in reading order.
func (d *Doc) Tables() []*Span {
	var out []*Span
	for _, span := range d.Group() {
		if span.Label.IsTable() {
			out = append(out, span)
		}
	}
	return out
}

// Heading returns the nearest span preceding s in group order whose label
// is in the configured heading set, or nil if none precedes it. A span
// whose own label is a heading has no heading: the lookup never
// self-references.
func (d *Doc) Heading(s *Span) *Span {
	if d.headings[s.Label] {
		return nil
	}
	group := d.Group()
	for i := s.id - 1; i >= 0; i-- {
		if d.headings[group[i].Label] {
			return group[i]
		}
	}
	return nil
}
