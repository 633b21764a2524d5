package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/docspan/format"
	"github.com/tsawler/docspan/model"
)

type fakeConverter struct {
	doc      *model.Document
	warnings []Warning
	err      error
	calls    int
}

func (f *fakeConverter) Convert(src Source) (*model.Document, []Warning, error) {
	f.calls++
	return f.doc, f.warnings, f.err
}

func TestRegistryDispatch(t *testing.T) {
	fake := &fakeConverter{doc: model.NewDocument("fake")}
	r := NewRegistry()
	r.Register(format.HTML, fake)

	doc, _, err := r.Convert(Source{Name: "page.html", Data: []byte("<html><body></body></html>")})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("converter called %d times, want 1", fake.calls)
	}
	if doc.Name != "fake" {
		t.Errorf("got document %q, want fake", doc.Name)
	}
}

func TestRegistryDetectsByExtension(t *testing.T) {
	// Content gives no hint, so the filename extension decides.
	fake := &fakeConverter{doc: model.NewDocument("fake")}
	r := NewRegistry()
	r.Register(format.PDF, fake)

	_, _, err := r.Convert(Source{Name: "scan.pdf", Data: []byte("not really pdf bytes")})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("converter called %d times, want 1", fake.calls)
	}
}

func TestRegistryUnsupportedFormat(t *testing.T) {
	r := NewRegistry()
	_, _, err := r.Convert(Source{Name: "data.bin", Data: []byte{0x00}})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestRegistryReplacesBinding(t *testing.T) {
	first := &fakeConverter{doc: model.NewDocument("first")}
	second := &fakeConverter{doc: model.NewDocument("second")}
	r := NewRegistry()
	r.Register(format.HTML, first)
	r.Register(format.HTML, second)

	doc, _, err := r.Convert(Source{Name: "page.html", Data: []byte("<html></html>")})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if doc.Name != "second" {
		t.Errorf("got document %q, want second", doc.Name)
	}
	if first.calls != 0 {
		t.Error("replaced converter was still called")
	}
}

func TestSourceDisplayName(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want string
	}{
		{"path wins", Source{Path: "/tmp/a.pdf", Name: "other"}, "/tmp/a.pdf"},
		{"name fallback", Source{Name: "buffer.html"}, "buffer.html"},
		{"anonymous", Source{}, "source"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.src.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Code: "page-size-unknown", Message: "no media box", Page: 2},
		{Code: "page-count-mismatch", Message: "expected 3 pages, read 2"},
	}
	got := FormatWarnings(warnings)
	if !strings.Contains(got, "page-size-unknown (page 2): no media box") {
		t.Errorf("missing paged warning: %s", got)
	}
	if !strings.Contains(got, "page-count-mismatch: expected 3 pages, read 2") {
		t.Errorf("missing unpaged warning: %s", got)
	}
}
