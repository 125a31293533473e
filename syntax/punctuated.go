package syntax

// PunctuatedItem pairs one element of a repetition with its trailing
// separator token. Sep is nil only for the final element, which may omit
// its separator (spec.md §3 — this is what preserves trailing commas and
// semicolons losslessly).
type PunctuatedItem[T any] struct {
	Node T
	Sep  *Token
}

// Punctuated is an ordered, comma/semicolon-separated repetition, stored as
// a single contiguous slice of (node, separator?) pairs rather than two
// parallel slices — the shape spec.md §9 recommends, since it keeps the
// trailing-separator signal local to the element it follows.
type Punctuated[T any] []PunctuatedItem[T]

// Items returns just the nodes, discarding separators.
func (p Punctuated[T]) Items() []T {
	items := make([]T, len(p))
	for i, it := range p {
		items[i] = it.Node
	}
	return items
}
