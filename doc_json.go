package docspan

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/docspan/codec"
	"github.com/tsawler/docspan/model"
)

// MarshalDoc serializes an aligned document to JSON. Layout values and
// tabular data use the codec wire format, so column order on table data
// survives the round trip. Attribute keys follow the Layout's configured
// Attrs.
func (l *Layout) MarshalDoc(doc *Doc) ([]byte, error) {
	attrs := l.cfg.Attrs
	wire := codec.OrderedMap{
		{Key: "tokens", Value: doc.Tokens},
		{Key: attrs.DocLayout, Value: l.codec.EncodeValue(doc.Layout)},
		{Key: attrs.DocMarkdown, Value: doc.Markdown},
	}
	groups := make(codec.OrderedMap, 0, len(doc.Spans))
	for name, spans := range doc.Spans {
		wireSpans := make([]any, 0, len(spans))
		for _, s := range spans {
			wireSpans = append(wireSpans, l.marshalSpan(s, attrs))
		}
		groups = append(groups, codec.Field{Key: name, Value: wireSpans})
	}
	wire = append(wire, codec.Field{Key: "spans", Value: groups})
	if len(doc.Warnings) > 0 {
		wire = append(wire, codec.Field{Key: "warnings", Value: doc.Warnings})
	}
	return json.Marshal(wire)
}

func (l *Layout) marshalSpan(s *Span, attrs Attrs) codec.OrderedMap {
	wire := codec.OrderedMap{
		{Key: "start", Value: s.Start},
		{Key: "end", Value: s.End},
		{Key: "label", Value: string(s.Label)},
	}
	if s.Layout != nil {
		wire = append(wire, codec.Field{Key: attrs.SpanLayout, Value: l.codec.EncodeValue(*s.Layout)})
	}
	if s.Data != nil {
		wire = append(wire, codec.Field{Key: attrs.SpanData, Value: l.codec.EncodeFrame(s.Data)})
	}
	return wire
}

// UnmarshalDoc reconstructs an aligned document from MarshalDoc output.
// The Layout must be configured with the same Attrs used to marshal.
func (l *Layout) UnmarshalDoc(data []byte) (*Doc, error) {
	attrs := l.cfg.Attrs
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	doc := &Doc{
		Spans:    make(map[string][]*Span),
		attrs:    attrs,
		headings: l.headings,
	}
	if msg, ok := raw["tokens"]; ok {
		if err := json.Unmarshal(msg, &doc.Tokens); err != nil {
			return nil, fmt.Errorf("decoding tokens: %w", err)
		}
	}
	if msg, ok := raw[attrs.DocLayout]; ok {
		var wire codec.OrderedMap
		if err := json.Unmarshal(msg, &wire); err != nil {
			return nil, fmt.Errorf("decoding document layout: %w", err)
		}
		if dl, ok := l.codec.DecodeValue(wire).(model.DocLayout); ok {
			doc.Layout = dl
		}
	}
	if msg, ok := raw[attrs.DocMarkdown]; ok {
		if err := json.Unmarshal(msg, &doc.Markdown); err != nil {
			return nil, fmt.Errorf("decoding markdown: %w", err)
		}
	}
	if msg, ok := raw["warnings"]; ok {
		if err := json.Unmarshal(msg, &doc.Warnings); err != nil {
			return nil, fmt.Errorf("decoding warnings: %w", err)
		}
	}

	var groups map[string][]json.RawMessage
	if msg, ok := raw["spans"]; ok {
		if err := json.Unmarshal(msg, &groups); err != nil {
			return nil, fmt.Errorf("decoding spans: %w", err)
		}
	}
	for name, wireSpans := range groups {
		spans := make([]*Span, 0, len(wireSpans))
		for i, msg := range wireSpans {
			span, err := l.unmarshalSpan(msg, attrs)
			if err != nil {
				return nil, fmt.Errorf("decoding span %d in group %q: %w", i, name, err)
			}
			span.id = i
			span.doc = doc
			spans = append(spans, span)
		}
		doc.Spans[name] = spans
	}
	return doc, nil
}

func (l *Layout) unmarshalSpan(msg json.RawMessage, attrs Attrs) (*Span, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil {
		return nil, err
	}
	span := &Span{}
	if m, ok := fields["start"]; ok {
		if err := json.Unmarshal(m, &span.Start); err != nil {
			return nil, err
		}
	}
	if m, ok := fields["end"]; ok {
		if err := json.Unmarshal(m, &span.End); err != nil {
			return nil, err
		}
	}
	if m, ok := fields["label"]; ok {
		var label string
		if err := json.Unmarshal(m, &label); err != nil {
			return nil, err
		}
		span.Label = model.Label(label)
	}
	if m, ok := fields[attrs.SpanLayout]; ok {
		var wire codec.OrderedMap
		if err := json.Unmarshal(m, &wire); err != nil {
			return nil, err
		}
		if sl, ok := l.codec.DecodeValue(wire).(model.SpanLayout); ok {
			span.Layout = &sl
		}
	}
	if m, ok := fields[attrs.SpanData]; ok {
		frame, err := l.codec.DecodeFrameJSON(m)
		if err != nil {
			return nil, err
		}
		span.Data = frame
	}
	return span, nil
}
