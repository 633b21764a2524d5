// Package htmlconv converts HTML documents into the docspan structural IR.
//
// HTML carries no page geometry, so converted items have no provenance and
// the resulting document has no pages; aligned spans from HTML sources
// carry no layout.
package htmlconv

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docspan/converter"
	"github.com/tsawler/docspan/model"
)

// Converter converts HTML sources.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert parses one HTML source into a structural document.
func (c *Converter) Convert(src converter.Source) (*model.Document, []converter.Warning, error) {
	ra, size, closer, err := src.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", src.DisplayName(), err)
	}
	if closer != nil {
		defer closer.Close()
	}

	buf := make([]byte, size)
	if _, err := ra.ReadAt(buf, 0); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("reading %s: %w", src.DisplayName(), err)
	}
	root, err := html.Parse(bytes.NewReader(buf))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", src.DisplayName(), err)
	}

	doc := model.NewDocument(src.DisplayName())
	body := findElement(root, "body")
	if body == nil {
		body = root
	}
	extract(body, doc)
	return doc, nil, nil
}

// extract walks the element tree in document order, emitting one node per
// content-bearing element.
func extract(n *html.Node, doc *model.Document) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1":
			addText(doc, model.LabelTitle, n)
			return
		case "h2", "h3", "h4", "h5", "h6":
			addText(doc, model.LabelSectionHeader, n)
			return
		case "p", "blockquote":
			addText(doc, model.LabelText, n)
			return
		case "li":
			addText(doc, model.LabelListItem, n)
			return
		case "pre":
			addText(doc, model.LabelCode, n)
			return
		case "table":
			if t := extractTable(n); t != nil {
				doc.AddNode(&model.Node{Label: model.LabelTable, Table: t})
			}
			return
		case "script", "style", "head":
			return
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		extract(child, doc)
	}
}

func addText(doc *model.Document, label model.Label, n *html.Node) {
	text := textContent(n)
	if text == "" {
		return
	}
	doc.AddNode(&model.Node{Label: label, Text: text})
}

// extractTable builds a Table from tr/th/td cells. Returns nil for tables
// with no rows.
func extractTable(n *html.Node) *model.Table {
	var rows [][]model.Cell
	var walkRows func(*html.Node)
	walkRows = func(el *html.Node) {
		if el.Type == html.ElementNode && el.Data == "tr" {
			var row []model.Cell
			for c := el.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, model.Cell{
						Text:     textContent(c),
						IsHeader: c.Data == "th",
					})
				}
			}
			if len(row) > 0 {
				rows = append(rows, row)
			}
			return
		}
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(n)
	if len(rows) == 0 {
		return nil
	}
	return &model.Table{Rows: rows}
}

// textContent returns the whitespace-collapsed text of a node's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(el *html.Node) {
		if el.Type == html.TextNode {
			sb.WriteString(el.Data)
		}
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
