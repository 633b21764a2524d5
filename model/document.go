package model

import (
	"sort"
	"strings"
)

// Prov records where an item appeared in the source document: its bounding
// box and the 1-indexed page number it was found on.
type Prov struct {
	BBox   BBox
	PageNo int
}

// Node is one structural unit of a parsed document: a paragraph, heading,
// list item, table and so on. Nodes form a tree whose pre-order traversal
// is the document's reading order.
//
// A node with a non-nil Table is a table item; a node with non-empty Text
// is a text item. Nodes with neither (e.g. pictures, grouping containers)
// carry no alignable content themselves.
type Node struct {
	Label    Label
	Text     string
	Prov     []Prov // zero or more regions; only the first is authoritative
	Table    *Table
	Children []*Node
}

// FirstProv returns the item's first provenance entry, if any. Items that
// span multiple regions report only the first.
func (n *Node) FirstProv() (Prov, bool) {
	if len(n.Prov) == 0 {
		return Prov{}, false
	}
	return n.Prov[0], true
}

// Document is a parsed source document: its pages and a structural tree of
// items in reading order. It is the input to span alignment, produced
// either by a converter or constructed directly by the caller.
type Document struct {
	Name  string
	Pages []Page
	Body  []*Node
}

// NewDocument creates an empty document.
func NewDocument(name string) *Document {
	return &Document{Name: name}
}

// AddPage appends a page. Pages are kept in ascending page number order.
func (d *Document) AddPage(p Page) {
	d.Pages = append(d.Pages, p)
	sort.Slice(d.Pages, func(i, j int) bool { return d.Pages[i].Number < d.Pages[j].Number })
}

// Page returns the page with the given number, if present.
func (d *Document) Page(number int) (Page, bool) {
	for _, p := range d.Pages {
		if p.Number == number {
			return p, true
		}
	}
	return Page{}, false
}

// AddNode appends a top-level node to the document body.
func (d *Document) AddNode(n *Node) {
	d.Body = append(d.Body, n)
}

// Walk visits every node in reading order (pre-order). Returning false
// from visit stops the traversal.
func (d *Document) Walk(visit func(*Node) bool) {
	var walk func(nodes []*Node) bool
	walk = func(nodes []*Node) bool {
		for _, n := range nodes {
			if !visit(n) {
				return false
			}
			if !walk(n.Children) {
				return false
			}
		}
		return true
	}
	walk(d.Body)
}

// Layout returns the document's pages as a DocLayout in ascending page
// number order.
func (d *Document) Layout() DocLayout {
	pages := make([]PageLayout, 0, len(d.Pages))
	for _, p := range d.Pages {
		pages = append(pages, p.Layout())
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNo < pages[j].PageNo })
	return DocLayout{Pages: pages}
}

// ExportMarkdown renders the document's structure as markdown, in reading
// order. Page headers and footers are running furniture and are skipped.
func (d *Document) ExportMarkdown() string {
	var sb strings.Builder
	d.Walk(func(n *Node) bool {
		switch {
		case n.Table != nil && n.Label.IsTable():
			sb.WriteString(n.Table.ToMarkdown())
			sb.WriteString("\n")
		case n.Label == LabelTitle && n.Text != "":
			sb.WriteString("# " + n.Text + "\n\n")
		case n.Label == LabelSectionHeader && n.Text != "":
			sb.WriteString("## " + n.Text + "\n\n")
		case n.Label == LabelListItem && n.Text != "":
			sb.WriteString("- " + n.Text + "\n")
		case n.Label == LabelPageHeader || n.Label == LabelPageFooter:
		case n.Text != "":
			sb.WriteString(n.Text + "\n\n")
		}
		return true
	})
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
