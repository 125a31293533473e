package syntax

import "strings"

// Print re-emits cst as source text. It is built from Walk with only
// VisitToken registered, writing each token's trivia texts in order
// followed by its own text; this is what establishes the round-trip
// invariant `Print(Parse(s)) == s` (spec.md §4.5).
func Print(cst *Cst) string {
	var b strings.Builder
	v := &Visitor{
		VisitToken: func(ctx any, t Token) {
			writeToken(ctx.(*strings.Builder), t)
		},
	}
	Walk(v, &b, cst)
	return b.String()
}

func writeToken(b *strings.Builder, t Token) {
	for _, tr := range t.Trivia {
		b.WriteString(tr.Text)
	}
	if t.Kind == TkEOF {
		return
	}
	b.WriteString(t.Literal())
}
