package syntax

// Node is the marker interface implemented by every CST node. It carries no
// behavior of its own; NodeKind and the Visitor dispatch table are what let
// callers do something generic with an arbitrary Node.
type Node interface {
	isNode()
}

// Delimiter pairs materialize the open/close tokens of a bracketed
// construct, per spec.md §3 ("every delimited construct carries its
// delimiters as tokens").
type Parens struct{ Open, Close Token }
type Brackets struct{ Open, Close Token }
type Braces struct{ Open, Close Token }
type Angles struct{ Open, Close Token }
