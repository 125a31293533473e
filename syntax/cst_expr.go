package syntax

// Expr is the closed set of expression node variants (spec.md §6.3).
type Expr interface {
	Node
	Kind() NodeKind
	isExpr()
}

// NilExpr is the `nil` literal.
type NilExpr struct{ Keyword Token }

// BooleanExpr is the `true`/`false` literal.
type BooleanExpr struct{ Value Token }

// NumberExpr is a numeric literal.
type NumberExpr struct{ Value Token }

// StringExpr is a short or long string literal.
type StringExpr struct{ Value Token }

// VarargExpr is the `...` vararg expression.
type VarargExpr struct{ Dots Token }

// InterpStringExpr is a backtick-delimited interpolated string: an
// alternating sequence of string segments and interpolated expressions,
// always beginning and ending with a segment (spec.md §4.1).
type InterpStringExpr struct {
	Segments []Token // TkInterpString{Plain,Begin,Mid,End}
	Exprs    []Expr  // len(Segments)-1
}

// TableExpr wraps a TableConstructor so it satisfies Expr.
type TableExpr struct{ Table *TableConstructor }

// FunctionExpr is an anonymous `function(...) ... end` expression.
type FunctionExpr struct {
	Keyword Token
	Body    *FunctionBody
}

// IfElseExpr is the `if c then a else b` ternary expression form, including
// its `elseif` chain.
type IfElseExpr struct {
	If       Token
	Cond     Expr
	Then     Token
	Consequent Expr
	ElseIfs  []IfElseExprClause
	Else     Token
	Alternate Expr
}

// IfElseExprClause is one `elseif c then v` clause of an IfElseExpr.
type IfElseExprClause struct {
	Elseif Token
	Cond   Expr
	Then   Token
	Value  Expr
}

// VarExpr wraps a Var (a name possibly followed by index/call suffixes) so
// it satisfies Expr.
type VarExpr struct{ Var *Var }

// AssertionExpr is `expr :: Type`.
type AssertionExpr struct {
	Expr      Expr
	ColonColon Token
	Type      Type
}

// UnaryExpr is a prefix-operator expression.
type UnaryExpr struct {
	Op      UnOp
	OpToken Token
	Operand Expr
}

// BinaryExpr is an infix-operator expression.
type BinaryExpr struct {
	Left    Expr
	Op      BinOp
	OpToken Token
	Right   Expr
}

func (*NilExpr) isNode()           {}
func (*BooleanExpr) isNode()       {}
func (*NumberExpr) isNode()        {}
func (*StringExpr) isNode()        {}
func (*VarargExpr) isNode()        {}
func (*InterpStringExpr) isNode()  {}
func (*TableExpr) isNode()         {}
func (*FunctionExpr) isNode()      {}
func (*IfElseExpr) isNode()        {}
func (*VarExpr) isNode()           {}
func (*AssertionExpr) isNode()     {}
func (*UnaryExpr) isNode()         {}
func (*BinaryExpr) isNode()        {}

func (*NilExpr) isExpr()           {}
func (*BooleanExpr) isExpr()       {}
func (*NumberExpr) isExpr()        {}
func (*StringExpr) isExpr()        {}
func (*VarargExpr) isExpr()        {}
func (*InterpStringExpr) isExpr()  {}
func (*TableExpr) isExpr()         {}
func (*FunctionExpr) isExpr()      {}
func (*IfElseExpr) isExpr()        {}
func (*VarExpr) isExpr()           {}
func (*AssertionExpr) isExpr()     {}
func (*UnaryExpr) isExpr()         {}
func (*BinaryExpr) isExpr()        {}

func (*NilExpr) Kind() NodeKind          { return KindNilExpr }
func (*BooleanExpr) Kind() NodeKind      { return KindBooleanExpr }
func (*NumberExpr) Kind() NodeKind       { return KindNumberExpr }
func (*StringExpr) Kind() NodeKind       { return KindStringExpr }
func (*VarargExpr) Kind() NodeKind       { return KindVarargExpr }
func (*InterpStringExpr) Kind() NodeKind { return KindInterpStringExpr }
func (*TableExpr) Kind() NodeKind        { return KindTableExpr }
func (*FunctionExpr) Kind() NodeKind     { return KindFunctionExpr }
func (*IfElseExpr) Kind() NodeKind       { return KindIfElseExpr }
func (*VarExpr) Kind() NodeKind          { return KindVarExpr }
func (*AssertionExpr) Kind() NodeKind    { return KindAssertionExpr }
func (*UnaryExpr) Kind() NodeKind        { return KindUnaryExpr }
func (*BinaryExpr) Kind() NodeKind       { return KindBinaryExpr }

// TableConstructor is `{ field, field, ... }` (spec.md §4.1). Its fields
// are comma- or semicolon-separated, recorded losslessly via Punctuated.
type TableConstructor struct {
	Braces Braces
	Fields Punctuated[TableField]
}

func (*TableConstructor) isNode()        {}
func (*TableConstructor) Kind() NodeKind { return KindTableConstructor }

// TableField is the closed set of table-constructor field variants.
type TableField interface {
	Node
	Kind() NodeKind
	isTableField()
}

// NameKeyField is `name = value`.
type NameKeyField struct {
	Name  Token
	Eq    Token
	Value Expr
}

// ExprKeyField is `[key] = value`.
type ExprKeyField struct {
	Brackets Brackets
	Key      Expr
	Eq       Token
	Value    Expr
}

// NoKeyField is a bare positional array-style entry.
type NoKeyField struct{ Value Expr }

func (*NameKeyField) isNode() {}
func (*ExprKeyField) isNode() {}
func (*NoKeyField) isNode()   {}

func (*NameKeyField) isTableField() {}
func (*ExprKeyField) isTableField() {}
func (*NoKeyField) isTableField()   {}

func (*NameKeyField) Kind() NodeKind { return KindNameKeyField }
func (*ExprKeyField) Kind() NodeKind { return KindExprKeyField }
func (*NoKeyField) Kind() NodeKind   { return KindNoKeyField }

// FunctionArg is the closed set of call-argument shapes: a parenthesized
// expression list, a bare table constructor, or a bare string literal
// (spec.md §4.1's "three call-argument forms").
type FunctionArg interface {
	Node
	Kind() NodeKind
	isFunctionArg()
}

// ArgsPack is `(expr, expr, ...)`.
type ArgsPack struct {
	Parens Parens
	Args   Punctuated[Expr]
}

// ArgsTable is a bare table constructor used as the sole call argument.
type ArgsTable struct{ Table *TableConstructor }

// ArgsString is a bare string literal used as the sole call argument.
type ArgsString struct{ Value Token }

func (*ArgsPack) isNode()  {}
func (*ArgsTable) isNode() {}
func (*ArgsString) isNode() {}

func (*ArgsPack) isFunctionArg()   {}
func (*ArgsTable) isFunctionArg()  {}
func (*ArgsString) isFunctionArg() {}

func (*ArgsPack) Kind() NodeKind   { return KindArgsPack }
func (*ArgsTable) Kind() NodeKind  { return KindArgsTable }
func (*ArgsString) Kind() NodeKind { return KindArgsString }

// Attribute is a `@name` function attribute (spec.md's function-attribute
// extension, e.g. `@native`, `@checked`).
type Attribute struct {
	At   Token
	Name Token
}

func (*Attribute) isNode()        {}
func (*Attribute) Kind() NodeKind { return KindAttribute }

// Binding is one function parameter: a name (or `...`) with an optional
// type annotation. A varargs parameter's annotation is always a plain
// Type (`...: number`), never a pack — Luau has no syntax for binding a
// type pack to a single parameter name.
type Binding struct {
	Name  Token // TkIdent or TkEllipsis
	Colon *Token
	Type  Type
}

func (*Binding) isNode()        {}
func (*Binding) Kind() NodeKind { return KindBinding }

// FunctionBody is the shared `[<generics>](params) [: ret] block end` tail
// of every function-valued construct (expression, statement, method).
type FunctionBody struct {
	Attributes []Attribute
	Generics   *GenericDecl
	Parens     Parens
	Params     Punctuated[*Binding]
	Colon      *Token
	Ret        *ReturnAnnotation
	Block      *Block
	End        Token
}

func (*FunctionBody) isNode()        {}
func (*FunctionBody) Kind() NodeKind { return KindFunctionBody }
