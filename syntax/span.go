package syntax

import "fmt"

// Span is a pair of byte offsets into the source, half-open: [Start, End).
// The zero value is the empty span at offset 0; Detached returns the span
// that does not point into any source.
//
// A third component is reserved for a future line/column packing and is
// otherwise unused; it exists purely so the schema doesn't need to change if
// that packing is added later.
type Span struct {
	Start, End int
	reserved   uint32
}

// NewSpan builds a span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Detached returns a span that does not point into any source. SpanOf never
// returns one: for an empty block it returns ErrEmptyBlockSpan instead.
func Detached() Span {
	return Span{Start: -1, End: -1}
}

// IsDetached reports whether s is the detached span.
func (s Span) IsDetached() bool {
	return s.Start < 0 || s.End < 0
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if s.IsDetached() {
		return 0
	}
	return s.End - s.Start
}

// Merge combines two spans into the smallest span covering both, taking the
// earlier Start and the later End. This is how composite node spans are
// derived from their first and last constituent tokens (spec.md §4.4).
func (a Span) Merge(b Span) Span {
	if a.IsDetached() {
		return b
	}
	if b.IsDetached() {
		return a
	}
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{Start: start, End: end}
}

// String implements fmt.Stringer.
func (s Span) String() string {
	if s.IsDetached() {
		return "Span(detached)"
	}
	return fmt.Sprintf("Span(%d..%d)", s.Start, s.End)
}
