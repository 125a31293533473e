package syntax

// Stat is the closed set of statement variants (spec.md §6.3).
type Stat interface {
	Node
	Kind() NodeKind
	isStat()
}

// AssignStat is `var, var, ... = expr, expr, ...`.
type AssignStat struct {
	Targets Punctuated[*Var]
	Eq      Token
	Values  Punctuated[Expr]
}

// CompoundAssignStat is `var op= expr` (`+=`, `-=`, `*=`, `/=`, `//=`,
// `%=`, `^=`, `..=`) — Luau's compound-assignment extension over Lua 5.1.
type CompoundAssignStat struct {
	Target  *Var
	Op      BinOp
	OpToken Token
	Value   Expr
}

// CallStat is a bare call used as a statement.
type CallStat struct{ Call *Var }

// DoStat is `do block end`.
type DoStat struct {
	Do    Token
	Block *Block
	End   Token
}

// WhileStat is `while cond do block end`.
type WhileStat struct {
	While Token
	Cond  Expr
	Do    Token
	Block *Block
	End   Token
}

// RepeatStat is `repeat block until cond`. Unlike While, Cond is in scope
// of Block's locals (spec.md carries this semantic note for the benefit of
// any future lowering, even though this parser does not enforce scoping).
type RepeatStat struct {
	Repeat Token
	Block  *Block
	Until  Token
	Cond   Expr
}

// IfStat is `if cond then block [elseif cond then block]* [else block] end`.
type IfStat struct {
	If      Token
	Cond    Expr
	Then    Token
	Block   *Block
	ElseIfs []*ElseIfClause
	Else    *Token
	ElseBlock *Block
	End     Token
}

// ElseIfClause is one `elseif cond then block` clause of an IfStat.
type ElseIfClause struct {
	Elseif Token
	Cond   Expr
	Then   Token
	Block  *Block
}

// NumericForStat is `for name = start, stop[, step] do block end`.
type NumericForStat struct {
	For   Token
	Name  Token
	Colon *Token
	Type  Type
	Eq    Token
	Start Expr
	Comma1 Token
	Stop  Expr
	Comma2 *Token
	Step  Expr
	Do    Token
	Block *Block
	End   Token
}

// ForInStat is `for name, name, ... in expr, expr, ... do block end`.
type ForInStat struct {
	For    Token
	Names  Punctuated[*Binding]
	In     Token
	Exprs  Punctuated[Expr]
	Do     Token
	Block  *Block
	End    Token
}

// FunctionStat is `function Name.path[:method](...) ... end`.
type FunctionStat struct {
	Function Token
	Name     *FunctionName
	Body     *FunctionBody
}

// LocalFunctionStat is `local function name(...) ... end`.
type LocalFunctionStat struct {
	Local    Token
	Function Token
	Name     Token
	Body     *FunctionBody
}

// LocalVariableStat is `local name[: Type], ... [= expr, ...]`.
type LocalVariableStat struct {
	Local  Token
	Names  Punctuated[*Binding]
	Eq     *Token
	Values Punctuated[Expr]
}

// TypeStat is `[export] type name[<generics>] = Type` (spec.md's
// type-alias-declaration extension over Lua 5.1).
type TypeStat struct {
	Export   *Token
	Type     Token
	Name     Token
	Generics *GenericDecl
	Eq       Token
	Value    Type
}

func (*AssignStat) isNode()         {}
func (*CompoundAssignStat) isNode() {}
func (*CallStat) isNode()           {}
func (*DoStat) isNode()             {}
func (*WhileStat) isNode()          {}
func (*RepeatStat) isNode()         {}
func (*IfStat) isNode()             {}
func (*NumericForStat) isNode()     {}
func (*ForInStat) isNode()          {}
func (*FunctionStat) isNode()       {}
func (*LocalFunctionStat) isNode()  {}
func (*LocalVariableStat) isNode()  {}
func (*TypeStat) isNode()           {}

func (*AssignStat) isStat()         {}
func (*CompoundAssignStat) isStat() {}
func (*CallStat) isStat()           {}
func (*DoStat) isStat()             {}
func (*WhileStat) isStat()          {}
func (*RepeatStat) isStat()         {}
func (*IfStat) isStat()             {}
func (*NumericForStat) isStat()     {}
func (*ForInStat) isStat()          {}
func (*FunctionStat) isStat()       {}
func (*LocalFunctionStat) isStat()  {}
func (*LocalVariableStat) isStat()  {}
func (*TypeStat) isStat()           {}

func (*AssignStat) Kind() NodeKind         { return KindAssignStat }
func (*CompoundAssignStat) Kind() NodeKind { return KindCompoundAssignStat }
func (*CallStat) Kind() NodeKind           { return KindCallStat }
func (*DoStat) Kind() NodeKind             { return KindDoStat }
func (*WhileStat) Kind() NodeKind          { return KindWhileStat }
func (*RepeatStat) Kind() NodeKind         { return KindRepeatStat }
func (*IfStat) Kind() NodeKind             { return KindIfStat }
func (*NumericForStat) Kind() NodeKind     { return KindNumericForStat }
func (*ForInStat) Kind() NodeKind          { return KindForInStat }
func (*FunctionStat) Kind() NodeKind       { return KindFunctionStat }
func (*LocalFunctionStat) Kind() NodeKind  { return KindLocalFunctionStat }
func (*LocalVariableStat) Kind() NodeKind  { return KindLocalVariableStat }
func (*TypeStat) Kind() NodeKind           { return KindTypeStat }

func (*ElseIfClause) isNode()        {}
func (*ElseIfClause) Kind() NodeKind { return KindElseIfClause }

// LastStat is the closed set of block-terminating statements: `return`,
// `break`, and `continue` (spec.md's `continue` extension over Lua 5.1).
// At most one may appear, and only as a block's final statement.
type LastStat interface {
	Node
	Kind() NodeKind
	isLastStat()
}

// ReturnStat is `return [expr, expr, ...]`.
type ReturnStat struct {
	Return Token
	Values Punctuated[Expr]
}

// BreakStat is `break`.
type BreakStat struct{ Keyword Token }

// ContinueStat is `continue`.
type ContinueStat struct{ Keyword Token }

func (*ReturnStat) isNode()   {}
func (*BreakStat) isNode()    {}
func (*ContinueStat) isNode() {}

func (*ReturnStat) isLastStat()   {}
func (*BreakStat) isLastStat()    {}
func (*ContinueStat) isLastStat() {}

func (*ReturnStat) Kind() NodeKind   { return KindReturnStat }
func (*BreakStat) Kind() NodeKind    { return KindBreakStat }
func (*ContinueStat) Kind() NodeKind { return KindContinueStat }

// Block is a sequence of statements optionally terminated by a LastStat.
// Each statement/last-statement may be followed by an optional `;`,
// preserved losslessly.
type Block struct {
	Stats    []Stat
	StatSemi []*Token // len(Stats), nil entry where no `;` followed
	Last     LastStat // nil if the block has no terminating statement
	LastSemi *Token
}

func (*Block) isNode()        {}
func (*Block) Kind() NodeKind { return KindBlock }

// Cst is the root of a parsed source file: its top-level Block followed by
// the synthetic EOF token, which owns any trailing trivia.
type Cst struct {
	Block *Block
	Eof   Token
}

func (*Cst) isNode()        {}
func (*Cst) Kind() NodeKind { return KindCst }
