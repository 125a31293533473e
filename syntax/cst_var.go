package syntax

// VarRoot is the closed set of roots a Var can start from: a bare name, or
// a parenthesized expression (spec.md §4.1 — `(expr).field` etc.).
type VarRoot interface {
	Node
	Kind() NodeKind
	isVarRoot()
}

// NameVarRoot is a bare identifier root.
type NameVarRoot struct{ Name Token }

// ParenVarRoot is a parenthesized-expression root, e.g. the `(f())` in
// `(f()).x`.
type ParenVarRoot struct {
	Parens Parens
	Inner  Expr
}

func (*NameVarRoot) isNode()  {}
func (*ParenVarRoot) isNode() {}

func (*NameVarRoot) isVarRoot()  {}
func (*ParenVarRoot) isVarRoot() {}

func (*NameVarRoot) Kind() NodeKind  { return KindNameVarRoot }
func (*ParenVarRoot) Kind() NodeKind { return KindParenVarRoot }

// VarSuffix is the closed set of suffixes chainable after a VarRoot: dotted
// or bracketed indexing, and a call (itself chainable, with an optional
// `:method` name).
type VarSuffix interface {
	Node
	Kind() NodeKind
	isVarSuffix()
}

// NameIndexSuffix is `.name`.
type NameIndexSuffix struct {
	Dot  Token
	Name Token
}

// ExprIndexSuffix is `[expr]`.
type ExprIndexSuffix struct {
	Brackets Brackets
	Index    Expr
}

// CallSuffix is a call: either a direct call `(...)`/`{...}`/`"..."`, or a
// method call `:name(...)`.
type CallSuffix struct {
	Method *CallSuffixMethod // nil for a direct call
	Args   FunctionArg
}

// CallSuffixMethod is the `:name` portion of a method call suffix.
type CallSuffixMethod struct {
	Colon Token
	Name  Token
}

func (*NameIndexSuffix) isNode() {}
func (*ExprIndexSuffix) isNode() {}
func (*CallSuffix) isNode()      {}

func (*NameIndexSuffix) isVarSuffix() {}
func (*ExprIndexSuffix) isVarSuffix() {}
func (*CallSuffix) isVarSuffix()      {}

func (*NameIndexSuffix) Kind() NodeKind { return KindNameIndexSuffix }
func (*ExprIndexSuffix) Kind() NodeKind { return KindExprIndexSuffix }
func (*CallSuffix) Kind() NodeKind      { return KindCallSuffix }

// Var is a VarRoot followed by zero or more VarSuffixes — the general
// "prefixexp" production shared by assignment targets, call statements,
// and variable-reference expressions (spec.md §4.1).
type Var struct {
	Root     VarRoot
	Suffixes []VarSuffix
}

func (*Var) isNode()        {}
func (*Var) Kind() NodeKind { return KindVar }

// IsCall reports whether the var's last suffix is a call, which is what
// distinguishes a call statement / call expression from a plain reference.
func (v *Var) IsCall() bool {
	if len(v.Suffixes) == 0 {
		return false
	}
	_, ok := v.Suffixes[len(v.Suffixes)-1].(*CallSuffix)
	return ok
}

// FunctionName is the dotted/colon path after `function`, e.g.
// `Foo.Bar.baz` or `Foo.Bar:baz` in `function Foo.Bar:baz() ... end`.
type FunctionName struct {
	Name   Token
	Dotted []NameIndexSuffix
	Method *MethodName // set when declared with `:name`
}

// MethodName is the trailing `:name` of a FunctionName.
type MethodName struct {
	Colon Token
	Name  Token
}

func (*FunctionName) isNode() {}
func (*MethodName) isNode()   {}

func (*FunctionName) Kind() NodeKind { return KindFunctionName }
func (*MethodName) Kind() NodeKind   { return KindMethodName }
