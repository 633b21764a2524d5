package docspan

import (
	"fmt"

	"github.com/tsawler/docspan/codec"
	"github.com/tsawler/docspan/converter"
	"github.com/tsawler/docspan/converter/htmlconv"
	"github.com/tsawler/docspan/converter/pdfconv"
	"github.com/tsawler/docspan/format"
	"github.com/tsawler/docspan/model"
	"github.com/tsawler/docspan/tokenize"
)

// TablePlaceholder is the default display text tokenized in place of a
// table item's cell contents.
const TablePlaceholder = "TABLE"

// Attrs names the keys under which layout data is exposed in serialized
// output, and the name of the span group on the aligned document.
type Attrs struct {
	DocLayout   string
	DocPages    string
	DocTables   string
	DocMarkdown string
	SpanLayout  string
	SpanHeading string
	SpanData    string
	SpanGroup   string
}

// DefaultAttrs returns the default attribute names.
func DefaultAttrs() Attrs {
	return Attrs{
		DocLayout:   "layout",
		DocPages:    "pages",
		DocTables:   "tables",
		DocMarkdown: "markdown",
		SpanLayout:  "layout",
		SpanHeading: "heading",
		SpanData:    "data",
		SpanGroup:   "layout",
	}
}

// fill replaces empty fields with defaults.
func (a Attrs) fill() Attrs {
	def := DefaultAttrs()
	if a.DocLayout == "" {
		a.DocLayout = def.DocLayout
	}
	if a.DocPages == "" {
		a.DocPages = def.DocPages
	}
	if a.DocTables == "" {
		a.DocTables = def.DocTables
	}
	if a.DocMarkdown == "" {
		a.DocMarkdown = def.DocMarkdown
	}
	if a.SpanLayout == "" {
		a.SpanLayout = def.SpanLayout
	}
	if a.SpanHeading == "" {
		a.SpanHeading = def.SpanHeading
	}
	if a.SpanData == "" {
		a.SpanData = def.SpanData
	}
	if a.SpanGroup == "" {
		a.SpanGroup = def.SpanGroup
	}
	return a
}

// Config holds the conversion configuration. All fields are fixed at
// construction time; a Layout never mutates its config.
type Config struct {
	// Separator is the synthetic token inserted between consecutive
	// items' token runs. Empty disables insertion.
	Separator string

	// Attrs renames the exposed attribute keys.
	Attrs Attrs

	// Headings is the set of labels treated as headings for
	// nearest-heading lookup. Nil means model.DefaultHeadings.
	Headings []model.Label

	// TablePlaceholder is the fixed display text for table items, used
	// when DisplayTable is nil.
	TablePlaceholder string

	// DisplayTable computes the display text for a table item from its
	// tabular export. An error aborts the conversion.
	DisplayTable func(*model.Frame) (string, error)

	// Tokenizer splits item text into word tokens. Nil means the default
	// Unicode segmenter.
	Tokenizer tokenize.Tokenizer

	// Converters routes file and byte inputs to parsing engines. Nil
	// means DefaultConverters.
	Converters *converter.Registry
}

// DefaultConfig returns the default configuration: "\n\n" separator,
// default attribute names, default heading labels and the TABLE
// placeholder.
func DefaultConfig() Config {
	return Config{
		Separator:        "\n\n",
		Attrs:            DefaultAttrs(),
		Headings:         model.DefaultHeadings(),
		TablePlaceholder: TablePlaceholder,
	}
}

// DefaultConverters returns a registry with the built-in PDF and HTML
// converters.
func DefaultConverters() *converter.Registry {
	r := converter.NewRegistry()
	r.Register(format.PDF, pdfconv.New(pdfconv.DefaultOptions()))
	r.Register(format.HTML, htmlconv.New())
	return r
}

// Layout converts source documents into aligned token/span documents. It
// is safe for concurrent use once constructed: all configuration is
// read-only.
type Layout struct {
	cfg      Config
	tok      tokenize.Tokenizer
	conv     *converter.Registry
	headings map[model.Label]bool
	codec    *codec.Codec
}

// New creates a Layout from the given configuration. Zero-valued fields
// fall back to the defaults described on Config.
func New(cfg Config) *Layout {
	cfg.Attrs = cfg.Attrs.fill()
	if cfg.Headings == nil {
		cfg.Headings = model.DefaultHeadings()
	}
	if cfg.TablePlaceholder == "" && cfg.DisplayTable == nil {
		cfg.TablePlaceholder = TablePlaceholder
	}
	tok := cfg.Tokenizer
	if tok == nil {
		tok = tokenize.NewSegmenter()
	}
	conv := cfg.Converters
	if conv == nil {
		conv = DefaultConverters()
	}
	headings := make(map[model.Label]bool, len(cfg.Headings))
	for _, h := range cfg.Headings {
		headings[h] = true
	}
	return &Layout{
		cfg:      cfg,
		tok:      tok,
		conv:     conv,
		headings: headings,
		codec:    codec.New(),
	}
}

// ConvertFile converts the document at the given path.
func (l *Layout) ConvertFile(path string) (*Doc, error) {
	return l.Convert(Source{Path: path})
}

// ConvertBytes converts an in-memory document. The name is used for
// format detection and error messages.
func (l *Layout) ConvertBytes(name string, data []byte) (*Doc, error) {
	return l.Convert(Source{Name: name, Data: data})
}

// ConvertDocument converts an already-parsed structural document,
// bypassing the converter registry.
func (l *Layout) ConvertDocument(d *model.Document) (*Doc, error) {
	return l.buildDoc(d, nil)
}

// Convert converts one source: a path, a named byte buffer, or an
// already-parsed document.
func (l *Layout) Convert(src Source) (*Doc, error) {
	if src.Document != nil {
		return l.ConvertDocument(src.Document)
	}
	parsed, warnings, err := l.conv.Convert(converter.Source{
		Path: src.Path,
		Name: src.Name,
		Data: src.Data,
	})
	if err != nil {
		return nil, err
	}
	return l.buildDoc(parsed, warnings)
}

// buildDoc runs selection and alignment over a parsed document.
func (l *Layout) buildDoc(d *model.Document, warnings []Warning) (*Doc, error) {
	inputs, err := l.selectInputs(d)
	if err != nil {
		return nil, fmt.Errorf("selecting items from %s: %w", d.Name, err)
	}
	doc := l.align(inputs, d)
	doc.Warnings = warnings
	return doc, nil
}
