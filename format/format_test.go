package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     Format
	}{
		{"pdf magic", "anything.bin", []byte("%PDF-1.7\n"), PDF},
		{"pdf extension", "report.pdf", nil, PDF},
		{"pdf extension uppercase", "REPORT.PDF", nil, PDF},
		{"html doctype", "page.txt", []byte("<!DOCTYPE html><html></html>"), HTML},
		{"html tag", "page.txt", []byte("<html><body></body></html>"), HTML},
		{"html leading whitespace", "page.txt", []byte("\n  <!doctype html>"), HTML},
		{"html extension", "page.html", nil, HTML},
		{"htm extension", "page.htm", nil, HTML},
		{"docx extension", "letter.docx", nil, DOCX},
		{"odt extension", "letter.odt", nil, ODT},
		{"xlsx extension", "sheet.xlsx", nil, XLSX},
		{"pptx extension", "deck.pptx", nil, PPTX},
		{"magic beats extension", "page.html", []byte("%PDF-1.4"), PDF},
		{"unknown", "data.bin", []byte{0x00, 0x01}, Unknown},
		{"no hints", "", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.filename, tt.data); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectReaderZIP(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  Format
	}{
		{"docx", map[string]string{"[Content_Types].xml": "", "word/document.xml": "<w:document/>"}, DOCX},
		{"xlsx", map[string]string{"[Content_Types].xml": "", "xl/workbook.xml": "<workbook/>"}, XLSX},
		{"pptx", map[string]string{"[Content_Types].xml": "", "ppt/presentation.xml": "<p:presentation/>"}, PPTX},
		{"odt", map[string]string{"mimetype": "application/vnd.oasis.opendocument.text", "content.xml": "<office/>"}, ODT},
		{"plain zip", map[string]string{"readme.txt": "hello"}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZIP(t, tt.files)
			got, err := DetectReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				t.Fatalf("DetectReader: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectReaderNonZIP(t *testing.T) {
	data := []byte("%PDF-1.4\n%fake content")
	got, err := DetectReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectReader: %v", err)
	}
	if got != PDF {
		t.Errorf("DetectReader() = %v, want PDF", got)
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{HTML, "HTML"},
		{DOCX, "DOCX"},
		{ODT, "ODT"},
		{XLSX, "XLSX"},
		{PPTX, "PPTX"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func buildZIP(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	// mimetype first when present, matching real ODT archives
	if mt, ok := files["mimetype"]; ok {
		f, err := w.Create("mimetype")
		if err != nil {
			t.Fatalf("creating mimetype: %v", err)
		}
		f.Write([]byte(mt))
	}
	for name, content := range files {
		if name == "mimetype" {
			continue
		}
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		f.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}
