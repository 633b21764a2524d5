package docspan

import (
	"github.com/tsawler/docspan/model"
	"github.com/tsawler/docspan/tokenize"
)

// align is the core of the conversion: it tokenizes each selected item
// independently (the upstream parser's item boundaries need not fall on
// token boundaries), concatenates the token runs into one stream, and
// records the exact token range owned by each item.
//
// When a separator is configured, one synthetic token is appended after
// every item's run. The separator is excluded from the item's span, its
// own whitespace flag is false, and the preceding real token's whitespace
// flag is forced false so no space is rendered before the separator.
func (l *Layout) align(inputs []input, d *model.Document) *Doc {
	sep := l.cfg.Separator

	var tokens []tokenize.Token
	type record struct {
		node       *model.Node
		start, end int
	}
	records := make([]record, 0, len(inputs))

	cursor := 0
	for _, in := range inputs {
		itemTokens := l.tok.Tokenize(in.text)
		tokens = append(tokens, itemTokens...)
		if sep != "" {
			if len(tokens) > 0 {
				tokens[len(tokens)-1].Whitespace = false
			}
			tokens = append(tokens, tokenize.Token{Text: sep})
		}
		end := cursor + len(itemTokens)
		records = append(records, record{node: in.node, start: cursor, end: end})
		cursor = end
		if sep != "" {
			cursor++
		}
	}

	layout := d.Layout()
	pages := make(map[int]model.PageLayout, len(layout.Pages))
	for _, p := range layout.Pages {
		pages[p.PageNo] = p
	}

	doc := &Doc{
		Tokens:   tokens,
		Spans:    make(map[string][]*Span, 1),
		Layout:   layout,
		Markdown: d.ExportMarkdown(),
		attrs:    l.cfg.Attrs,
		headings: l.headings,
	}
	spans := make([]*Span, 0, len(records))
	for i, rec := range records {
		span := &Span{
			Start:  rec.start,
			End:    rec.end,
			Label:  rec.node.Label,
			Layout: spanLayout(rec.node, pages),
			id:     i,
			doc:    doc,
		}
		if rec.node.Label.IsTable() && rec.node.Table != nil {
			span.Data = rec.node.Table.ExportFrame()
		}
		spans = append(spans, span)
	}
	doc.Spans[l.cfg.Attrs.SpanGroup] = spans
	return doc
}

// spanLayout computes an item's normalized geometry. Items without
// provenance, or on pages of unknown size, have none.
func spanLayout(n *model.Node, pages map[int]model.PageLayout) *model.SpanLayout {
	prov, ok := n.FirstProv()
	if !ok {
		return nil
	}
	page, ok := pages[prov.PageNo]
	if !ok || !page.HasSize() {
		return nil
	}
	r := prov.BBox.Normalize(page.Height)
	return &model.SpanLayout{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		PageNo: prov.PageNo,
	}
}
