package docspan

import (
	"strings"
	"testing"

	"github.com/tsawler/docspan/model"
)

func textDoc(texts ...string) *model.Document {
	d := model.NewDocument("test")
	for _, t := range texts {
		d.AddNode(&model.Node{Label: model.LabelText, Text: t})
	}
	return d
}

// ============================================================================
// Separator Invariants
// ============================================================================

func TestAlignSeparatorExcludedFromSpans(t *testing.T) {
	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(textDoc("first item", "second item"))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	sep := DefaultConfig().Separator
	for _, span := range doc.Group() {
		for i := span.Start; i < span.End; i++ {
			if doc.Tokens[i].Text == sep {
				t.Errorf("span [%d:%d) contains separator token at %d", span.Start, span.End, i)
			}
		}
	}
}

func TestAlignSeparatorAfterEveryItem(t *testing.T) {
	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(textDoc("one", "two"))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	sep := DefaultConfig().Separator
	spans := doc.Group()
	for i, span := range spans {
		if span.End >= len(doc.Tokens) {
			t.Fatalf("span %d ends at stream end with no separator", i)
		}
		sepTok := doc.Tokens[span.End]
		if sepTok.Text != sep {
			t.Errorf("token after span %d = %q, want separator", i, sepTok.Text)
		}
		if sepTok.Whitespace {
			t.Errorf("separator after span %d has whitespace flag set", i)
		}
	}
	// Separator follows the final item too.
	if doc.Tokens[len(doc.Tokens)-1].Text != sep {
		t.Error("stream does not end with a separator token")
	}
}

func TestAlignNoWhitespaceBeforeSeparator(t *testing.T) {
	layout := New(DefaultConfig())
	// Trailing space would normally flag the last token.
	doc, err := layout.ConvertDocument(textDoc("ends with space ", "next"))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	for _, span := range doc.Group() {
		if span.End == span.Start {
			continue
		}
		last := doc.Tokens[span.End-1]
		if last.Whitespace {
			t.Errorf("token %q before separator keeps its whitespace flag", last.Text)
		}
	}
}

func TestAlignTextContainsSeparators(t *testing.T) {
	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(textDoc("alpha", "beta"))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}
	want := "alpha\n\nbeta\n\n"
	if got := doc.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestAlignNoSeparator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Separator = ""
	layout := New(cfg)
	doc, err := layout.ConvertDocument(textDoc("alpha", "beta"))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	if len(doc.Tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(doc.Tokens))
	}
	spans := doc.Group()
	if spans[0].End != spans[1].Start {
		t.Errorf("spans not adjacent without separator: %d vs %d", spans[0].End, spans[1].Start)
	}
	// Whitespace flags are untouched when no separator is injected.
	if got := doc.Text(); got != "alphabeta" {
		t.Errorf("Text() = %q, want alphabeta", got)
	}
}

// ============================================================================
// Span Bounds
// ============================================================================

func TestAlignSpanBounds(t *testing.T) {
	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(textDoc("The quick brown fox.", "Jumped over.", "The lazy dog."))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	prevEnd := -1
	for i, span := range doc.Group() {
		if span.Start < 0 || span.End > len(doc.Tokens) {
			t.Errorf("span %d [%d:%d) out of bounds (%d tokens)", i, span.Start, span.End, len(doc.Tokens))
		}
		if span.Start > span.End {
			t.Errorf("span %d has inverted range [%d:%d)", i, span.Start, span.End)
		}
		if span.Start <= prevEnd {
			t.Errorf("span %d overlaps previous (start %d, prev end %d)", i, span.Start, prevEnd)
		}
		prevEnd = span.End
	}
}

func TestAlignSpanTextMatchesItem(t *testing.T) {
	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(textDoc("The quick brown fox.", "Jumped over the dog."))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	spans := doc.Group()
	if got := spans[0].Text(); got != "The quick brown fox." {
		t.Errorf("span 0 text = %q", got)
	}
	if got := spans[1].Text(); got != "Jumped over the dog." {
		t.Errorf("span 1 text = %q", got)
	}
}

func TestAlignEmptyTextSpan(t *testing.T) {
	// Whitespace-only item text produces zero tokens but still a span.
	d := model.NewDocument("test")
	d.AddNode(&model.Node{Label: model.LabelText, Text: "   "})
	d.AddNode(&model.Node{Label: model.LabelText, Text: "real"})

	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(d)
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	spans := doc.Group()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Start != spans[0].End {
		t.Errorf("whitespace-only item should own an empty range, got [%d:%d)", spans[0].Start, spans[0].End)
	}
	if spans[0].Text() != "" {
		t.Errorf("empty span text = %q", spans[0].Text())
	}
	if spans[1].Text() != "real" {
		t.Errorf("second span text = %q", spans[1].Text())
	}
}

func TestAlignEmptyDocument(t *testing.T) {
	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(model.NewDocument("empty"))
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}
	if len(doc.Tokens) != 0 {
		t.Errorf("got %d tokens, want 0", len(doc.Tokens))
	}
	if len(doc.Group()) != 0 {
		t.Errorf("got %d spans, want 0", len(doc.Group()))
	}
	if doc.Text() != "" {
		t.Errorf("Text() = %q, want empty", doc.Text())
	}
}

// ============================================================================
// Idempotence
// ============================================================================

func TestAlignIdempotent(t *testing.T) {
	d := textDoc("A title", "Body text here.", "More body text.")
	layout := New(DefaultConfig())

	first, err := layout.ConvertDocument(d)
	if err != nil {
		t.Fatalf("first ConvertDocument: %v", err)
	}
	second, err := layout.ConvertDocument(d)
	if err != nil {
		t.Fatalf("second ConvertDocument: %v", err)
	}

	if first.Text() != second.Text() {
		t.Error("text differs between conversions")
	}
	a, b := first.Group(), second.Group()
	if len(a) != len(b) {
		t.Fatalf("span counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Start != b[i].Start || a[i].End != b[i].End || a[i].Label != b[i].Label {
			t.Errorf("span %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// ============================================================================
// Item Selection
// ============================================================================

func TestSelectSkipsEmptyAndNonContent(t *testing.T) {
	d := model.NewDocument("test")
	d.AddNode(&model.Node{Label: model.LabelPicture})            // no content
	d.AddNode(&model.Node{Label: model.LabelText, Text: ""})     // empty text
	d.AddNode(&model.Node{Label: model.LabelText, Text: "kept"}) // real item

	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(d)
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}
	spans := doc.Group()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Text() != "kept" {
		t.Errorf("span text = %q, want kept", spans[0].Text())
	}
}

func TestSelectReadingOrder(t *testing.T) {
	d := model.NewDocument("test")
	d.AddNode(&model.Node{
		Label: model.LabelSectionHeader,
		Text:  "Header",
		Children: []*model.Node{
			{Label: model.LabelText, Text: "nested"},
		},
	})
	d.AddNode(&model.Node{Label: model.LabelText, Text: "after"})

	layout := New(DefaultConfig())
	doc, err := layout.ConvertDocument(d)
	if err != nil {
		t.Fatalf("ConvertDocument: %v", err)
	}

	var texts []string
	for _, span := range doc.Group() {
		texts = append(texts, span.Text())
	}
	want := "Header|nested|after"
	if got := strings.Join(texts, "|"); got != want {
		t.Errorf("span order = %q, want %q", got, want)
	}
}
