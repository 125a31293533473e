package syntax

import "testing"

func TestSpanOfEmptyBlockErrors(t *testing.T) {
	cst, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	_, spanErr := SpanOf(cst.Block)
	if spanErr != ErrEmptyBlockSpan {
		t.Fatalf("SpanOf(empty block) = %v, want ErrEmptyBlockSpan", spanErr)
	}
}

func TestSpanMonotonicity(t *testing.T) {
	// P3: every descendant token's span falls within its ancestor's span.
	sources := []string{
		"local x: {a: number, [string]: boolean} = t",
		"for i = 1, 10, 2 do print(i) end",
		"local function f(a: number, b: string): boolean return a end",
		"if a then b() elseif c then d() else e() end",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			cst, err := Parse([]byte(src))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			rootSpan := NewSpan(0, len(src))
			checkMonotone(t, src, rootSpan, cst.Block)
		})
	}
}

// checkMonotone walks node's tokens via Walk and asserts each falls inside
// bound.
func checkMonotone(t *testing.T, src string, bound Span, node Node) {
	t.Helper()
	v := &Visitor{
		VisitToken: func(ctx any, tok Token) {
			if tok.Kind == TkEOF {
				return
			}
			if tok.Span.Start < bound.Start || tok.Span.End > bound.End {
				t.Fatalf("token %v span %v escapes bound %v in %q", tok.Kind, tok.Span, bound, src)
			}
		},
	}
	Walk(v, nil, node)
}

func TestSpanOfReferenceType(t *testing.T) {
	cst, err := Parse([]byte("local x: Foo.Bar<T> = y"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	local := cst.Block.Stats[0].(*LocalVariableStat)
	typ := local.Names[0].Node.Type.(*ReferenceType)
	span, err := SpanOf(typ)
	if err != nil {
		t.Fatalf("SpanOf returned error: %v", err)
	}
	want := NewSpan(len("local x: "), len("local x: Foo.Bar<T>"))
	if span != want {
		t.Fatalf("SpanOf(ReferenceType) = %v, want %v", span, want)
	}
}
