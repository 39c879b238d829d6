// Package highlight splits server-annotated disease labels into plain and
// matched spans.
//
// The search service marks matched substrings by wrapping them in a marker
// character (`|` by default): "|diabe|tes type 2". No matching happens
// here; the parser only understands the delimiter convention.
package highlight

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Kind tags a span as plain or matched text.
type Kind int

const (
	Plain Kind = iota
	Matched
)

func (k Kind) String() string {
	if k == Matched {
		return "matched"
	}
	return "plain"
}

// Span is a run of label text with a single kind.
type Span struct {
	Text string
	Kind Kind
}

// DefaultMarker wraps matched segments.
const DefaultMarker = '|'

// Parser reads the delimiter convention of a label.
// Separator, when non-zero, is a segment boundary that is dropped from the
// output (the legacy service joined segments with commas).
type Parser struct {
	Marker    rune
	Separator rune
}

// Default is the marker-only convention.
var Default = Parser{Marker: DefaultMarker}

// Legacy is the comma-separated convention: "|당뇨|,병".
var Legacy = Parser{Marker: DefaultMarker, Separator: ','}

func (p Parser) marker() rune {
	if p.Marker == 0 {
		return DefaultMarker
	}
	return p.Marker
}

// Spans returns the spans of label in order. The sequence is lazy and can
// be ranged over any number of times.
//
// An unterminated marker does not fail: the marker is dropped and the rest
// of the label is plain text.
func (p Parser) Spans(label string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		marker := p.marker()
		if !p.hasPair(label) {
			p.plainSpans(label, yield)
			return
		}

		var b strings.Builder
		kind := Plain
		flush := func() bool {
			if b.Len() == 0 {
				return true
			}
			s := Span{Text: b.String(), Kind: kind}
			b.Reset()
			return yield(s)
		}

		for i, r := range label {
			switch {
			case r == marker:
				next := i + utf8.RuneLen(r)
				if kind == Plain && !strings.ContainsRune(label[next:], marker) {
					// Unterminated: everything after is plain.
					if !flush() {
						return
					}
					p.plainSpans(label[next:], yield)
					return
				}
				if !flush() {
					return
				}
				if kind == Plain {
					kind = Matched
				} else {
					kind = Plain
				}
			case p.Separator != 0 && r == p.Separator:
				if !flush() {
					return
				}
			default:
				b.WriteRune(r)
			}
		}
		flush()
	}
}

// hasPair reports whether label contains at least two markers.
func (p Parser) hasPair(label string) bool {
	return strings.Count(label, string(p.marker())) >= 2
}

// plainSpans emits label as plain text, splitting on the separator and
// dropping stray markers.
func (p Parser) plainSpans(label string, yield func(Span) bool) {
	marker := p.marker()
	var b strings.Builder
	for _, r := range label {
		switch {
		case r == marker:
		case p.Separator != 0 && r == p.Separator:
			if b.Len() > 0 {
				if !yield(Span{Text: b.String(), Kind: Plain}) {
					return
				}
				b.Reset()
			}
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		yield(Span{Text: b.String(), Kind: Plain})
	}
}

// Strip returns the label text with all delimiters removed.
func (p Parser) Strip(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for s := range p.Spans(label) {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Spans parses label with the default convention.
func Spans(label string) iter.Seq[Span] {
	return Default.Spans(label)
}

// Strip removes markers using the default convention.
func Strip(label string) string {
	return Default.Strip(label)
}

// ParserFor builds a parser from config strings. Empty or multi-rune values
// fall back to the defaults.
func ParserFor(marker, separator string) Parser {
	p := Default
	if r := []rune(marker); len(r) == 1 {
		p.Marker = r[0]
	}
	if r := []rune(separator); len(r) == 1 {
		p.Separator = r[0]
	}
	return p
}
