package syntax

import "testing"

// TestParseReturnNumber covers concrete scenario 1 from spec.md §8: a block
// with no statements and a return last-stat holding the number 1.
func TestParseReturnNumber(t *testing.T) {
	cst, err := Parse([]byte("return 1"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cst.Block.Stats) != 0 {
		t.Fatalf("Block.Stats = %d items, want 0", len(cst.Block.Stats))
	}
	ret, ok := cst.Block.Last.(*ReturnStat)
	if !ok {
		t.Fatalf("Block.Last = %T, want *ReturnStat", cst.Block.Last)
	}
	if len(ret.Values) != 1 {
		t.Fatalf("ReturnStat.Values = %d items, want 1", len(ret.Values))
	}
	num, ok := ret.Values[0].Node.(*NumberExpr)
	if !ok {
		t.Fatalf("return value = %T, want *NumberExpr", ret.Values[0].Node)
	}
	if num.Value.Text != "1" {
		t.Fatalf("NumberExpr.Value.Text = %q, want %q", num.Value.Text, "1")
	}
}

// TestParseTableTypeFields covers concrete scenario 2: a table type with a
// nameprop and an indexer field.
func TestParseTableTypeFields(t *testing.T) {
	cst, err := Parse([]byte("local x: {a: number, [string]: boolean} = t"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	local, ok := cst.Block.Stats[0].(*LocalVariableStat)
	if !ok {
		t.Fatalf("Stats[0] = %T, want *LocalVariableStat", cst.Block.Stats[0])
	}
	binding := local.Names[0].Node
	table, ok := binding.Type.(*TableType)
	if !ok {
		t.Fatalf("binding.Type = %T, want *TableType", binding.Type)
	}
	if len(table.Fields) != 2 {
		t.Fatalf("TableType.Fields = %d items, want 2", len(table.Fields))
	}
	if _, ok := table.Fields[0].Node.(*NamePropField); !ok {
		t.Fatalf("Fields[0] = %T, want *NamePropField", table.Fields[0].Node)
	}
	if _, ok := table.Fields[1].Node.(*IndexerField); !ok {
		t.Fatalf("Fields[1] = %T, want *IndexerField", table.Fields[1].Node)
	}
}

// TestParseInterpString covers concrete scenario 3: an interpolated string
// with one middle expression, a name var.
func TestParseInterpString(t *testing.T) {
	cst, err := Parse([]byte("local s = `hi {name}!`"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	local := cst.Block.Stats[0].(*LocalVariableStat)
	istr, ok := local.Values[0].Node.(*InterpStringExpr)
	if !ok {
		t.Fatalf("value = %T, want *InterpStringExpr", local.Values[0].Node)
	}
	if len(istr.Exprs) != 1 {
		t.Fatalf("InterpStringExpr.Exprs = %d items, want 1", len(istr.Exprs))
	}
	varExpr, ok := istr.Exprs[0].(*VarExpr)
	if !ok {
		t.Fatalf("Exprs[0] = %T, want *VarExpr", istr.Exprs[0])
	}
	root, ok := varExpr.Var.Root.(*NameVarRoot)
	if !ok || root.Name.Text != "name" {
		t.Fatalf("var root = %#v, want name `name`", varExpr.Var.Root)
	}
}

// TestParseNumericFor covers concrete scenario 4.
func TestParseNumericFor(t *testing.T) {
	cst, err := Parse([]byte("for i = 1, 10, 2 do end"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	forStat, ok := cst.Block.Stats[0].(*NumericForStat)
	if !ok {
		t.Fatalf("Stats[0] = %T, want *NumericForStat", cst.Block.Stats[0])
	}
	if forStat.Start.(*NumberExpr).Value.Text != "1" {
		t.Fatalf("Start = %v, want 1", forStat.Start)
	}
	if forStat.Stop.(*NumberExpr).Value.Text != "10" {
		t.Fatalf("Stop = %v, want 10", forStat.Stop)
	}
	if forStat.Step == nil || forStat.Step.(*NumberExpr).Value.Text != "2" {
		t.Fatalf("Step = %v, want 2", forStat.Step)
	}
	span, err := SpanOf(forStat)
	if err != nil {
		t.Fatalf("SpanOf returned error: %v", err)
	}
	if span.Start != 0 || span.End != len("for i = 1, 10, 2 do end") {
		t.Fatalf("span = %v, want full-statement span", span)
	}
}

// TestParseChainedCall covers concrete scenario 5: a var with a name-index
// suffix and two chained call suffixes, the last being a call.
func TestParseChainedCall(t *testing.T) {
	cst, err := Parse([]byte("a.b:c(1)(2)"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	callStat, ok := cst.Block.Stats[0].(*CallStat)
	if !ok {
		t.Fatalf("Stats[0] = %T, want *CallStat", cst.Block.Stats[0])
	}
	v := callStat.Call
	root, ok := v.Root.(*NameVarRoot)
	if !ok || root.Name.Text != "a" {
		t.Fatalf("root = %#v, want name `a`", v.Root)
	}
	if len(v.Suffixes) != 3 {
		t.Fatalf("suffixes = %d, want 3", len(v.Suffixes))
	}
	if _, ok := v.Suffixes[0].(*NameIndexSuffix); !ok {
		t.Fatalf("suffix[0] = %T, want *NameIndexSuffix", v.Suffixes[0])
	}
	call1, ok := v.Suffixes[1].(*CallSuffix)
	if !ok || call1.Method == nil || call1.Method.Name.Text != "c" {
		t.Fatalf("suffix[1] = %#v, want a method call `:c`", v.Suffixes[1])
	}
	if _, ok := v.Suffixes[2].(*CallSuffix); !ok {
		t.Fatalf("suffix[2] = %T, want *CallSuffix", v.Suffixes[2])
	}
	if !v.IsCall() {
		t.Fatalf("IsCall() = false, want true")
	}
}

// TestParseCompoundAssign covers concrete scenario 6.
func TestParseCompoundAssign(t *testing.T) {
	cst, err := Parse([]byte("x += y"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	stat, ok := cst.Block.Stats[0].(*CompoundAssignStat)
	if !ok {
		t.Fatalf("Stats[0] = %T, want *CompoundAssignStat", cst.Block.Stats[0])
	}
	if stat.Op != BinOpAdd {
		t.Fatalf("Op = %v, want BinOpAdd", stat.Op)
	}
	root := stat.Target.Root.(*NameVarRoot)
	if root.Name.Text != "x" {
		t.Fatalf("Target = %q, want x", root.Name.Text)
	}
	if stat.Value.(*VarExpr).Var.Root.(*NameVarRoot).Name.Text != "y" {
		t.Fatalf("Value = %#v, want var y", stat.Value)
	}
}

// TestParseMissingBindingError covers concrete scenario 7: a malformed
// `local = 1` produces an error anchored at the `=` token.
func TestParseMissingBindingError(t *testing.T) {
	_, err := Parse([]byte("local = 1"))
	if err == nil {
		t.Fatal("expected a ParseError for `local = 1`")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	want := NewSpan(len("local "), len("local ")+1)
	if pe.Span != want {
		t.Fatalf("error span = %v, want %v (the `=` token)", pe.Span, want)
	}
}

func TestParseUnionIntersectionPrecedence(t *testing.T) {
	// Open Question decision: `&` binds tighter than `|`, so `A | B & C`
	// groups as `A | (B & C)`.
	cst, err := Parse([]byte("type T = A | B & C"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	typeStat := cst.Block.Stats[0].(*TypeStat)
	union, ok := typeStat.Value.(*UnionType)
	if !ok {
		t.Fatalf("Value = %T, want *UnionType", typeStat.Value)
	}
	if len(union.Types) != 2 {
		t.Fatalf("UnionType.Types = %d items, want 2", len(union.Types))
	}
	if _, ok := union.Types[0].(*ReferenceType); !ok {
		t.Fatalf("union.Types[0] = %T, want *ReferenceType (A)", union.Types[0])
	}
	intersection, ok := union.Types[1].(*IntersectionType)
	if !ok {
		t.Fatalf("union.Types[1] = %T, want *IntersectionType (B & C)", union.Types[1])
	}
	if len(intersection.Types) != 2 {
		t.Fatalf("IntersectionType.Types = %d items, want 2", len(intersection.Types))
	}
}

func TestParseUnaryExponentPrecedence(t *testing.T) {
	// -x^2 parses as -(x^2): exponentiation binds tighter than unary
	// negation (spec.md §4.2; UnaryPrecedence sits below BinOpExp).
	cst, err := Parse([]byte("return -x^2"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	ret := cst.Block.Last.(*ReturnStat)
	unary, ok := ret.Values[0].Node.(*UnaryExpr)
	if !ok || unary.Op != UnOpNeg {
		t.Fatalf("return value = %#v, want a unary negation", ret.Values[0].Node)
	}
	bin, ok := unary.Operand.(*BinaryExpr)
	if !ok || bin.Op != BinOpExp {
		t.Fatalf("unary operand = %#v, want x^2", unary.Operand)
	}
}

func TestParseCallStatementRequiresCallSuffix(t *testing.T) {
	// P5: call statements end in a call suffix. A bare var with no call
	// suffix is neither an assignment nor a call, and must error.
	_, err := Parse([]byte("a.b"))
	if err == nil {
		t.Fatal("expected a ParseError for a non-call, non-assignment statement")
	}
}

func TestParseUnaryPlus(t *testing.T) {
	cst, err := Parse([]byte("local x = +1"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	local := cst.Block.Stats[0].(*LocalVariableStat)
	unary, ok := local.Values[0].Node.(*UnaryExpr)
	if !ok || unary.Op != UnOpPlus {
		t.Fatalf("value = %#v, want a unary plus", local.Values[0].Node)
	}
}

func TestParseGenericPackMustFollowNames(t *testing.T) {
	// P5: generic names precede generic packs.
	_, err := Parse([]byte("type T<R..., U> = {}"))
	if err == nil {
		t.Fatal("expected a ParseError for a pack preceding a name")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if pe.Message != "generic packs must follow names" {
		t.Fatalf("Message = %q, want %q", pe.Message, "generic packs must follow names")
	}
}

func TestParseGenericDefaultOrdering(t *testing.T) {
	// P5: once a generic parameter has a default, every subsequent
	// parameter must also have one.
	_, err := Parse([]byte("type T<A = number, B> = {}"))
	if err == nil {
		t.Fatal("expected a ParseError for a non-default parameter following a default")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if pe.Message != "duplicate-default-ordering in generics" {
		t.Fatalf("Message = %q, want %q", pe.Message, "duplicate-default-ordering in generics")
	}
}
