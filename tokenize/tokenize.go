// Package tokenize splits text into word tokens with trailing-whitespace
// flags. The default implementation segments on Unicode word boundaries
// (UAX #29); callers with their own tokenization plug in via [Tokenizer].
package tokenize

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// Token is one word of a token stream. Whitespace reports whether the
// token is followed by whitespace in the original text.
type Token struct {
	Text       string `json:"text"`
	Whitespace bool   `json:"whitespace"`
}

// Tokenizer splits a string into word tokens. Implementations must be
// stateless across calls: each input is tokenized as its own unit, with no
// context carried from previous inputs.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// Segmenter is the default Tokenizer. It segments text on Unicode word
// boundaries, emitting punctuation as its own tokens and folding
// whitespace runs into the preceding token's whitespace flag.
type Segmenter struct {
	// NFC normalizes input to Unicode NFC before segmentation.
	NFC bool
}

// NewSegmenter creates a Segmenter with default settings.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Tokenize splits text into word tokens. Whitespace-only input produces no
// tokens. Leading whitespace is dropped; there is no preceding token to
// flag.
func (s *Segmenter) Tokenize(text string) []Token {
	if s.NFC {
		text = norm.NFC.String(text)
	}
	var out []Token
	segs := words.FromString(text)
	for segs.Next() {
		v := segs.Value()
		if strings.TrimSpace(v) == "" {
			if len(out) > 0 {
				out[len(out)-1].Whitespace = true
			}
			continue
		}
		out = append(out, Token{Text: v})
	}
	return out
}

// Render reconstructs text from tokens: each token followed by a single
// space when its whitespace flag is set. The final token's flag does not
// produce trailing whitespace.
func Render(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		sb.WriteString(t.Text)
		if t.Whitespace && i < len(tokens)-1 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
