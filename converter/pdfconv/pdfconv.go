// Package pdfconv converts PDF files into the docspan structural IR.
//
// Parsing is delegated to ledongthuc/pdf for page geometry and positioned
// text, with pdfcpu validating the input up front. Text runs are grouped
// into line items with bottom-left-origin provenance; no further layout
// analysis is attempted beyond a font-size heading heuristic.
package pdfconv

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/docspan/converter"
	"github.com/tsawler/docspan/model"
)

// Options configures PDF conversion.
type Options struct {
	// LineTolerance is the maximum baseline distance, in points, between
	// text runs on the same visual line.
	LineTolerance float64

	// HeadingScale marks a line as a section header when its font size is
	// at least this multiple of the document's median font size.
	HeadingScale float64
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		LineTolerance: 2.0,
		HeadingScale:  1.2,
	}
}

// Converter converts PDF sources.
type Converter struct {
	opts Options
}

// New creates a Converter. Zero option fields fall back to defaults.
func New(opts Options) *Converter {
	def := DefaultOptions()
	if opts.LineTolerance <= 0 {
		opts.LineTolerance = def.LineTolerance
	}
	if opts.HeadingScale <= 0 {
		opts.HeadingScale = def.HeadingScale
	}
	return &Converter{opts: opts}
}

// Convert parses one PDF source into a structural document.
func (c *Converter) Convert(src converter.Source) (*model.Document, []converter.Warning, error) {
	ra, size, closer, err := src.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", src.DisplayName(), err)
	}
	if closer != nil {
		defer closer.Close()
	}

	pageCount, err := api.PageCount(io.NewSectionReader(ra, 0, size), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("validating %s: %w", src.DisplayName(), err)
	}

	rdr, err := lpdf.NewReader(ra, size)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", src.DisplayName(), err)
	}

	var warnings []converter.Warning
	if rdr.NumPage() != pageCount {
		warnings = append(warnings, converter.Warning{
			Code:    "page-count-mismatch",
			Message: fmt.Sprintf("pdfcpu reports %d pages, reader sees %d", pageCount, rdr.NumPage()),
		})
	}

	doc := model.NewDocument(src.DisplayName())
	pageMarks := make(map[int][]mark)
	var allMarks []mark

	for pageNo := 1; pageNo <= rdr.NumPage(); pageNo++ {
		p := rdr.Page(pageNo)
		if p.V.IsNull() {
			warnings = append(warnings, converter.Warning{
				Code:    "page-unreadable",
				Message: "page dictionary missing",
				Page:    pageNo,
			})
			doc.AddPage(model.Page{Number: pageNo})
			continue
		}

		width, height, ok := mediaBox(p)
		if !ok {
			warnings = append(warnings, converter.Warning{
				Code:    "page-size-unknown",
				Message: "no MediaBox; span geometry unavailable on this page",
				Page:    pageNo,
			})
		}
		doc.AddPage(model.Page{Number: pageNo, Width: width, Height: height})

		marks := contentMarks(p)
		pageMarks[pageNo] = marks
		allMarks = append(allMarks, marks...)
	}

	median := medianSize(allMarks)
	for pageNo := 1; pageNo <= rdr.NumPage(); pageNo++ {
		for _, line := range groupLines(pageMarks[pageNo], c.opts.LineTolerance) {
			text := lineText(line)
			if text == "" {
				continue
			}
			label := model.LabelText
			if median > 0 && lineSize(line) >= median*c.opts.HeadingScale {
				label = model.LabelSectionHeader
			}
			doc.AddNode(&model.Node{
				Label: label,
				Text:  text,
				Prov: []model.Prov{{
					BBox:   lineBBox(line),
					PageNo: pageNo,
				}},
			})
		}
	}

	return doc, warnings, nil
}

// mediaBox reads a page's MediaBox dimensions. Reports ok=false when the
// box is absent or malformed.
func mediaBox(p lpdf.Page) (width, height float64, ok bool) {
	box := p.V.Key("MediaBox")
	if box.Kind() != lpdf.Array || box.Len() != 4 {
		return 0, 0, false
	}
	x0 := box.Index(0).Float64()
	y0 := box.Index(1).Float64()
	x1 := box.Index(2).Float64()
	y1 := box.Index(3).Float64()
	return x1 - x0, y1 - y0, true
}

// contentMarks extracts positioned text runs from a page.
func contentMarks(p lpdf.Page) []mark {
	content := p.Content()
	marks := make([]mark, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		marks = append(marks, mark{
			text: t.S,
			x:    t.X,
			y:    t.Y,
			w:    t.W,
			size: t.FontSize,
		})
	}
	return marks
}
