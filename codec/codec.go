// Package codec serializes layout value types and tabular frames to a
// portable, dictionary-based wire format.
//
// Each known value encodes as a flat field map carrying a "__type__"
// discriminator; frames encode as {"data": <column-oriented mapping>,
// "__type__": "DataFrame"}. Values the codec does not own pass through
// unchanged, or to a caller-supplied chained hook, so a Codec composes
// with whatever generic serialization mechanism hosts it.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/docspan/model"
)

// TypeAttr is the wire key naming the concrete type of an encoded value.
const TypeAttr = "__type__"

// Hook is the next encoder or decoder in a chain. A hook receives values
// the codec does not recognize.
type Hook func(v any) any

// Codec encodes and decodes layout values and frames. The zero value is
// ready to use; NextEncode/NextDecode optionally chain to another codec's
// hooks.
type Codec struct {
	NextEncode Hook
	NextDecode Hook
}

// New creates a Codec with no chained hooks.
func New() *Codec {
	return &Codec{}
}

// EncodeValue converts a layout value into its tagged field map. Values of
// other types are passed to the chained hook, or returned unchanged.
func (c *Codec) EncodeValue(v any) any {
	switch t := v.(type) {
	case model.PageLayout:
		return OrderedMap{
			{Key: "page_no", Value: t.PageNo},
			{Key: "width", Value: t.Width},
			{Key: "height", Value: t.Height},
			{Key: TypeAttr, Value: "PageLayout"},
		}
	case *model.PageLayout:
		return c.EncodeValue(*t)
	case model.SpanLayout:
		return OrderedMap{
			{Key: "x", Value: t.X},
			{Key: "y", Value: t.Y},
			{Key: "width", Value: t.Width},
			{Key: "height", Value: t.Height},
			{Key: "page_no", Value: t.PageNo},
			{Key: TypeAttr, Value: "SpanLayout"},
		}
	case *model.SpanLayout:
		return c.EncodeValue(*t)
	case model.DocLayout:
		pages := make([]any, 0, len(t.Pages))
		for _, p := range t.Pages {
			pages = append(pages, c.EncodeValue(p))
		}
		return OrderedMap{
			{Key: "pages", Value: pages},
			{Key: TypeAttr, Value: "DocLayout"},
		}
	case *model.DocLayout:
		return c.EncodeValue(*t)
	}
	if c.NextEncode != nil {
		return c.NextEncode(v)
	}
	return v
}

// DecodeValue reconstructs a layout value from its tagged field map.
// Mappings without a known discriminator, and non-mapping values, are
// passed to the chained hook or returned unchanged.
func (c *Codec) DecodeValue(v any) any {
	fields, typeName := taggedFields(v)
	switch typeName {
	case "PageLayout":
		return model.PageLayout{
			PageNo: toInt(fields["page_no"]),
			Width:  toFloat(fields["width"]),
			Height: toFloat(fields["height"]),
		}
	case "SpanLayout":
		return model.SpanLayout{
			X:      toFloat(fields["x"]),
			Y:      toFloat(fields["y"]),
			Width:  toFloat(fields["width"]),
			Height: toFloat(fields["height"]),
			PageNo: toInt(fields["page_no"]),
		}
	case "DocLayout":
		out := model.DocLayout{}
		if pages, ok := fields["pages"].([]any); ok {
			for _, p := range pages {
				if pl, ok := c.DecodeValue(p).(model.PageLayout); ok {
					out.Pages = append(out.Pages, pl)
				}
			}
		}
		return out
	}
	if c.NextDecode != nil {
		return c.NextDecode(v)
	}
	return v
}

// EncodeFrame converts a frame into its tagged column-oriented wire form,
// deduplicating repeated column names in place first. Other values pass
// through like EncodeValue's unknowns.
func (c *Codec) EncodeFrame(v any) any {
	f, ok := v.(*model.Frame)
	if !ok {
		if c.NextEncode != nil {
			return c.NextEncode(v)
		}
		return v
	}
	f.DedupColumns()
	data := make(OrderedMap, 0, len(f.Columns))
	for i, col := range f.Columns {
		data = append(data, Field{Key: col, Value: f.Series[i]})
	}
	return OrderedMap{
		{Key: "data", Value: data},
		{Key: TypeAttr, Value: "DataFrame"},
	}
}

// DecodeFrame reconstructs a frame from its tagged wire form. Column order
// is preserved when the mapping is an OrderedMap; plain Go maps cannot
// carry order and should only appear on paths that never created one.
func (c *Codec) DecodeFrame(v any) any {
	fields, typeName := taggedFields(v)
	if typeName != "DataFrame" {
		if c.NextDecode != nil {
			return c.NextDecode(v)
		}
		return v
	}
	f := model.NewFrame()
	switch data := fields["data"].(type) {
	case OrderedMap:
		for _, col := range data {
			f.Columns = append(f.Columns, col.Key)
			f.Series = append(f.Series, toStrings(col.Value))
		}
	case map[string]any:
		for col, vals := range data {
			f.Columns = append(f.Columns, col)
			f.Series = append(f.Series, toStrings(vals))
		}
	case map[string][]string:
		for col, vals := range data {
			f.Columns = append(f.Columns, col)
			f.Series = append(f.Series, vals)
		}
	}
	return f
}

// EncodeFrameJSON marshals a frame's wire form to JSON with column order
// intact.
func (c *Codec) EncodeFrameJSON(f *model.Frame) ([]byte, error) {
	return json.Marshal(c.EncodeFrame(f))
}

// DecodeFrameJSON unmarshals a frame from its JSON wire form, restoring
// column order from the input.
func (c *Codec) DecodeFrameJSON(data []byte) (*model.Frame, error) {
	var wire OrderedMap
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}
	f, ok := c.DecodeFrame(wire).(*model.Frame)
	if !ok {
		return nil, fmt.Errorf("decoding frame: missing %q discriminator", TypeAttr)
	}
	return f, nil
}

// taggedFields extracts the field map and discriminator from a wire value.
func taggedFields(v any) (map[string]any, string) {
	switch m := v.(type) {
	case map[string]any:
		name, _ := m[TypeAttr].(string)
		return m, name
	case OrderedMap:
		fields := make(map[string]any, len(m))
		for _, f := range m {
			fields[f.Key] = f.Value
		}
		name, _ := fields[TypeAttr].(string)
		return fields, name
	}
	return nil, ""
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}

func toStrings(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, s := range vals {
			out = append(out, fmt.Sprint(s))
		}
		return out
	}
	return nil
}
