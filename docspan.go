// Package docspan aligns a parsed document's layout structure with an
// independently tokenized text stream.
//
// A document converter produces structural items (paragraphs, headings,
// tables) with optional page geometry; a tokenizer freely re-splits text
// without regard for item boundaries. docspan reconciles the two: it
// tokenizes each item on its own, concatenates the token runs into one
// flat stream, and records for every item the exact token range it owns,
// so downstream consumers can reason jointly about text content and 2D
// position.
//
// Basic usage:
//
//	layout := docspan.New(docspan.DefaultConfig())
//	doc, err := layout.ConvertFile("report.pdf")
//	if err != nil {
//	    // handle error
//	}
//	for _, span := range doc.Group() {
//	    fmt.Println(span.Label, span.Text())
//	}
//
// Pages, tables and nearest-heading lookups are derived views over the
// aligned spans:
//
//	for _, ps := range doc.Pages() {
//	    fmt.Printf("page %d: %d spans\n", ps.Page.PageNo, len(ps.Spans))
//	}
package docspan

import "github.com/tsawler/docspan/converter"

// Warning is a non-fatal issue reported by a converter during conversion.
type Warning = converter.Warning

// FormatWarnings renders warnings as a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	return converter.FormatWarnings(warnings)
}
