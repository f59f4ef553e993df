package richtext

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

// Tag attaches a key/value annotation to the rune range [Start, End).
type Tag struct {
	Start int
	End   int
	Key   string
	Value string
}

// Covers reports whether the rune offset falls inside the tag range.
func (t Tag) Covers(offset int) bool {
	return t.Start <= offset && offset < t.End
}

// SpanStyle holds the visual hints applied to a range of text.
// Zero values mean "inherit from the host theme".
type SpanStyle struct {
	Color     color.Color
	FontSize  float32
	Bold      bool
	Underline bool
}

// Span applies a SpanStyle to the rune range [Start, End).
type Span struct {
	Start int
	End   int
	Style SpanStyle
}

// Run is an immutable character sequence with tagged and styled ranges.
// Offsets are rune indexes, not byte indexes.
type Run struct {
	Text  string
	Tags  []Tag
	Spans []Span
}

// Len returns the number of runes in the run.
func (r *Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}

// TagsAt returns every tag with the given key whose range contains offset,
// in the order the tags were pushed.
func (r *Run) TagsAt(key string, offset int) []Tag {
	var out []Tag
	for _, t := range r.Tags {
		if t.Key == key && t.Covers(offset) {
			out = append(out, t)
		}
	}
	return out
}

// StyleAt merges every span covering offset. Later spans win per field.
func (r *Run) StyleAt(offset int) SpanStyle {
	var s SpanStyle
	for _, sp := range r.Spans {
		if sp.Start > offset || offset >= sp.End {
			continue
		}
		if sp.Style.Color != nil {
			s.Color = sp.Style.Color
		}
		if sp.Style.FontSize > 0 {
			s.FontSize = sp.Style.FontSize
		}
		s.Bold = s.Bold || sp.Style.Bold
		s.Underline = s.Underline || sp.Style.Underline
	}
	return s
}

// mark is an open tag or span waiting for Pop. slot indexes the reserved
// entry in tags or spans so ranges keep push order.
type mark struct {
	start int
	slot  int
	isTag bool
}

// Builder assembles a Run incrementally. Ranges opened with PushTag or
// PushStyle extend over everything appended until the matching Pop.
type Builder struct {
	buf   strings.Builder
	n     int
	open  []mark
	tags  []Tag
	spans []Span
}

// Append adds text at the current position.
func (b *Builder) Append(s string) {
	b.buf.WriteString(s)
	b.n += utf8.RuneCountInString(s)
}

// PushTag opens an annotation range and returns its nesting depth.
func (b *Builder) PushTag(key, value string) int {
	b.tags = append(b.tags, Tag{Key: key, Value: value})
	b.open = append(b.open, mark{start: b.n, slot: len(b.tags) - 1, isTag: true})
	return len(b.open) - 1
}

// PushStyle opens a styled range and returns its nesting depth.
func (b *Builder) PushStyle(s SpanStyle) int {
	b.spans = append(b.spans, Span{Style: s})
	b.open = append(b.open, mark{start: b.n, slot: len(b.spans) - 1})
	return len(b.open) - 1
}

// Pop closes the most recently opened range. Pop on an empty stack is a no-op.
func (b *Builder) Pop() {
	if len(b.open) == 0 {
		return
	}
	m := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]

	if m.isTag {
		b.tags[m.slot].Start, b.tags[m.slot].End = m.start, b.n
		return
	}
	b.spans[m.slot].Start, b.spans[m.slot].End = m.start, b.n
}

// Build closes any open ranges at the end of the text and returns the Run.
// The builder should not be reused afterwards.
func (b *Builder) Build() *Run {
	for len(b.open) > 0 {
		b.Pop()
	}
	return &Run{
		Text:  b.buf.String(),
		Tags:  append([]Tag(nil), b.tags...),
		Spans: append([]Span(nil), b.spans...),
	}
}

// Link builds a run whose full range is tagged URL -> target and styled
// with the given hints.
func Link(label, target string, style SpanStyle) *Run {
	var b Builder
	b.PushTag(TagURL, target)
	b.PushStyle(style)
	b.Append(label)
	b.Pop()
	b.Pop()
	return b.Build()
}
