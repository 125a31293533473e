package syntax

import (
	"testing"

	"github.com/go-test/deep"
)

// TestWalkVisitsRegisteredKinds is P4's first half: a visitor recording
// kinds produces one entry per node of that kind actually present.
func TestWalkVisitsRegisteredKinds(t *testing.T) {
	cst, err := Parse([]byte("local x = 1\nlocal y = 2\nreturn x + y"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	var locals, numbers, binaries int
	v := Base()
	v.Nodes[KindLocalVariableStat] = func(ctx any, node Node) { locals++ }
	v.Nodes[KindNumberExpr] = func(ctx any, node Node) { numbers++ }
	v.Nodes[KindBinaryExpr] = func(ctx any, node Node) { binaries++ }
	Walk(v, nil, cst)

	if locals != 2 {
		t.Fatalf("local-variable-stat visits = %d, want 2", locals)
	}
	if numbers != 2 {
		t.Fatalf("number-expr visits = %d, want 2", numbers)
	}
	if binaries != 1 {
		t.Fatalf("binary-expr visits = %d, want 1", binaries)
	}
}

// TestWalkPrintingReproducesSource is P4's restatement of P1 via the
// visitor path: a visitor with only VisitToken set reproduces the source
// exactly, same as Print.
func TestWalkPrintingReproducesSource(t *testing.T) {
	src := "local t = {1, 2, [3] = 4, name = 5}\nreturn t"
	cst, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	var b []byte
	v := &Visitor{
		VisitToken: func(ctx any, tok Token) {
			for _, tr := range tok.Trivia {
				b = append(b, tr.Text...)
			}
			if tok.Kind != TkEOF {
				b = append(b, tok.Literal()...)
			}
		},
	}
	Walk(v, nil, cst)
	if string(b) != src {
		t.Fatalf("visitor reconstruction = %q, want %q", string(b), src)
	}
}

// TestBaseVisitorIsNoOp confirms Base() produces a Visitor whose Walk
// performs no callbacks (every slot absent).
func TestBaseVisitorIsNoOp(t *testing.T) {
	cst, err := Parse([]byte("local x = 1"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	// Should not panic despite no Nodes callbacks and no VisitToken.
	Walk(Base(), nil, cst)
}

func TestDeterminism(t *testing.T) {
	// P6: parsing is a pure function.
	src := "local function f(a: number, ...: string): (boolean, string) return true, \"x\" end"
	cst1, err1 := Parse([]byte(src))
	cst2, err2 := Parse([]byte(src))
	if err1 != nil || err2 != nil {
		t.Fatalf("Parse returned errors: %v, %v", err1, err2)
	}
	if Print(cst1) != Print(cst2) {
		t.Fatalf("two parses of the same source printed differently")
	}
	span1, _ := SpanOf(cst1.Block)
	span2, _ := SpanOf(cst2.Block)
	if span1 != span2 {
		t.Fatalf("two parses of the same source produced different spans: %v vs %v", span1, span2)
	}
	if diff := deep.Equal(cst1, cst2); diff != nil {
		t.Fatalf("two parses of the same source produced different trees: %v", diff)
	}
}
