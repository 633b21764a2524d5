// Package converter defines the boundary between docspan and the document
// parsing engines that produce structural item trees. Converters for
// concrete formats live in subpackages; anything implementing [Converter]
// can be registered, so the parsing engine itself stays pluggable.
package converter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/docspan/format"
	"github.com/tsawler/docspan/model"
)

// Source is one conversion input: a filesystem path, or a named in-memory
// byte buffer. Exactly one of Path or Data should be set.
type Source struct {
	Path string
	Name string // display name for in-memory sources
	Data []byte
}

// DisplayName returns the best available name for error messages.
func (s Source) DisplayName() string {
	if s.Path != "" {
		return s.Path
	}
	if s.Name != "" {
		return s.Name
	}
	return "source"
}

// Open returns the source's content as a ReaderAt with its size. The
// returned closer is non-nil only when a file was opened.
func (s Source) Open() (io.ReaderAt, int64, io.Closer, error) {
	if s.Path != "" {
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, 0, nil, err
		}
		st, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, 0, nil, err
		}
		return f, st.Size(), f, nil
	}
	r := bytes.NewReader(s.Data)
	return r, int64(len(s.Data)), nil, nil
}

// Warning is a non-fatal issue encountered during conversion.
type Warning struct {
	Code    string
	Message string
	Page    int // 1-indexed page the warning concerns, 0 if none
}

// FormatWarnings renders warnings as a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		if w.Page > 0 {
			parts = append(parts, fmt.Sprintf("%s (page %d): %s", w.Code, w.Page, w.Message))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", w.Code, w.Message))
		}
	}
	return strings.Join(parts, "; ")
}

// Converter parses one source document into the structural IR.
type Converter interface {
	Convert(src Source) (*model.Document, []Warning, error)
}

// ErrUnsupportedFormat is returned when no converter is registered for an
// input's detected format.
var ErrUnsupportedFormat = fmt.Errorf("no converter registered for format")

// Registry routes sources to converters by detected format. Registries are
// populated at construction and read-only afterward.
type Registry struct {
	converters map[format.Format]Converter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[format.Format]Converter)}
}

// Register binds a converter to a format, replacing any previous binding.
func (r *Registry) Register(f format.Format, c Converter) {
	r.converters[f] = c
}

// Lookup returns the converter registered for a format.
func (r *Registry) Lookup(f format.Format) (Converter, bool) {
	c, ok := r.converters[f]
	return c, ok
}

// Convert detects the source's format and dispatches to the registered
// converter. Detection prefers content sniffing, falling back to the
// filename extension.
func (r *Registry) Convert(src Source) (*model.Document, []Warning, error) {
	f, err := r.detect(src)
	if err != nil {
		return nil, nil, fmt.Errorf("detecting format of %s: %w", src.DisplayName(), err)
	}
	c, ok := r.converters[f]
	if !ok {
		return nil, nil, fmt.Errorf("converting %s: %w %s", src.DisplayName(), ErrUnsupportedFormat, f)
	}
	return c.Convert(src)
}

func (r *Registry) detect(src Source) (format.Format, error) {
	ra, size, closer, err := src.Open()
	if err != nil {
		return format.Unknown, err
	}
	if closer != nil {
		defer closer.Close()
	}
	f, err := format.DetectReader(ra, size)
	if err != nil || f == format.Unknown {
		name := src.Path
		if name == "" {
			name = src.Name
		}
		if byName := format.Detect(name, nil); byName != format.Unknown {
			return byName, nil
		}
	}
	return f, err
}
