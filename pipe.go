package docspan

import "github.com/tsawler/docspan/model"

// Source describes one conversion input: a file path, a named in-memory
// buffer, or an already-parsed structural document. Context is arbitrary
// caller data carried through the pipeline unchanged.
type Source struct {
	Path     string
	Name     string
	Data     []byte
	Document *model.Document
	Context  any
}

// Result is one pipeline output: the converted document paired with the
// source's context, or the conversion error.
type Result struct {
	Doc     *Doc
	Context any
	Err     error
}

// Pipe converts sources one at a time, lazily, in input order. A nil
// slice yields an empty pipe.
func (l *Layout) Pipe(sources []Source) *Pipe {
	return &Pipe{layout: l, sources: sources}
}

// Pipe iterates conversion results. Use like a scanner:
//
//	pipe := layout.Pipe(sources)
//	for pipe.Next() {
//	    res := pipe.Result()
//	    if res.Err != nil { ... }
//	}
//
// Errors are per-source: they appear in the Result and never stop
// iteration.
type Pipe struct {
	layout  *Layout
	sources []Source
	pos     int
	current Result
}

// Next advances to the next source, converting it. It returns false when
// the sources are exhausted.
func (p *Pipe) Next() bool {
	if p.pos >= len(p.sources) {
		return false
	}
	src := p.sources[p.pos]
	p.pos++
	doc, err := p.layout.Convert(src)
	p.current = Result{Doc: doc, Context: src.Context, Err: err}
	return true
}

// Result returns the result produced by the last call to Next.
func (p *Pipe) Result() Result {
	return p.current
}
