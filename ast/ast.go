// Package ast defines the lossy abstract syntax tree contract exposed
// alongside the lossless CST (spec.md §6.3). It is a closed set of tagged
// variants: a normalized view of the same grammar that discards trivia,
// delimiters, and separators but keeps every semantic distinction the CST
// makes. Producing one of these trees from a syntax.Cst (lowering) is out
// of scope; these types describe only the target shape.
package ast

// UnOp and BinOp mirror the operator categories of the CST (spec.md
// §6.3's closing operator table), named independently here since the AST
// does not otherwise depend on the syntax package.
type UnOp int

const (
	UnOpNeg UnOp = iota
	UnOpNot
	UnOpLen
	UnOpPlus
)

type BinOp int

const (
	BinOpOr BinOp = iota
	BinOpAnd
	BinOpLt
	BinOpLeq
	BinOpGt
	BinOpGeq
	BinOpNeq
	BinOpEq
	BinOpConcat
	BinOpAdd
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpFloorDiv
	BinOpMod
	BinOpExp
)

// Type is the closed set of type-annotation variants.
type Type interface{ isType() }

type NilType struct{}
type BooleanType struct{ Value bool }
type StringType struct{ Value string }
type ReferenceType struct {
	Prefix   string // "" if absent
	Name     string
	Generics []GenericTypeArg
}
type TypeofType struct{ Expr Expr }
type ArrayType struct{ Element Type }
type TableType struct{ Fields []TableTypeField }
type FunctionType struct {
	Generics []GenericParam
	Params   []FunctionTypeParam
	Varargs  *VariadicTypePack
	Ret      ReturnType
}
type ParenType struct{ Inner Type }
type OptionalType struct{ Inner Type }
type UnionType struct{ Types []Type }
type IntersectionType struct{ Types []Type }

func (NilType) isType()          {}
func (BooleanType) isType()      {}
func (StringType) isType()       {}
func (ReferenceType) isType()    {}
func (TypeofType) isType()       {}
func (ArrayType) isType()        {}
func (TableType) isType()        {}
func (FunctionType) isType()     {}
func (ParenType) isType()        {}
func (OptionalType) isType()     {}
func (UnionType) isType()        {}
func (IntersectionType) isType() {}

// GenericTypeArg is one argument of a ReferenceType's generic instantiation:
// exactly one of Type or Pack is set.
type GenericTypeArg struct {
	Type Type
	Pack TypePack
}

// FunctionTypeParam is one (optionally named) parameter of a FunctionType.
type FunctionTypeParam struct {
	Name string // "" if unnamed
	Type Type
}

// ReturnType is the return side of a FunctionType: exactly one of Type or
// Pack is set.
type ReturnType struct {
	Type Type
	Pack TypePack
}

// TypePack is the closed set of type-pack variants.
type TypePack interface{ isTypePack() }

type VariadicTypePack struct{ Type Type }
type GenericTypePack struct{ Name string }
type ListTypePack struct {
	Types []Type
	Tail  *VariadicTypePack
}

func (VariadicTypePack) isTypePack() {}
func (GenericTypePack) isTypePack()  {}
func (ListTypePack) isTypePack()     {}

// GenericParam is one parameter of a generic declaration (on a function
// or type alias): a plain type parameter or a pack parameter, each with
// an optional default.
type GenericParam struct {
	Name        string
	IsPack      bool
	DefaultType Type
	DefaultPack TypePack
}

// TableTypeField is the closed set of table-type field variants.
type TableTypeField interface{ isTableTypeField() }

type NamePropField struct {
	Access string // "" if absent
	Name   string
	Type   Type
}
type StringPropField struct {
	Access string
	Key    string
	Type   Type
}
type IndexerField struct {
	Access string
	Key    Type
	Type   Type
}

func (NamePropField) isTableTypeField()   {}
func (StringPropField) isTableTypeField() {}
func (IndexerField) isTableTypeField()    {}

// Expr is the closed set of expression variants.
type Expr interface{ isExpr() }

type NilExpr struct{}
type BooleanExpr struct{ Value bool }
type NumberExpr struct{ Value string } // preserved as written text; numeric interpretation is a consumer concern
type StringExpr struct{ Value string }
type VarargsExpr struct{}
type InterpStringExpr struct {
	Strings []string // len(Exprs)+1
	Exprs   []Expr
}
type TableExpr struct{ Table TableConstructor }
type FunctionExpr struct {
	Attributes []string
	Body       FunctionBody
}
type IfElseExpr struct {
	Branches []IfElseBranch
	ElseBody Expr
}
type IfElseBranch struct {
	Cond  Expr
	Value Expr
}
type VarExprNode struct{ Var Var }
type AssertionExpr struct {
	Expr Expr
	Type Type
}
type UnaryExpr struct {
	Operator UnOp
	Expr     Expr
}
type BinaryExpr struct {
	Left     Expr
	Operator BinOp
	Right    Expr
}

func (NilExpr) isExpr()          {}
func (BooleanExpr) isExpr()      {}
func (NumberExpr) isExpr()       {}
func (StringExpr) isExpr()       {}
func (VarargsExpr) isExpr()      {}
func (InterpStringExpr) isExpr() {}
func (TableExpr) isExpr()        {}
func (FunctionExpr) isExpr()     {}
func (IfElseExpr) isExpr()       {}
func (VarExprNode) isExpr()      {}
func (AssertionExpr) isExpr()    {}
func (UnaryExpr) isExpr()        {}
func (BinaryExpr) isExpr()       {}

// FunctionArg is the closed set of call-argument shapes.
type FunctionArg interface{ isFunctionArg() }

type PackArg struct{ Exprs []Expr }
type TableArg struct{ Table TableConstructor }
type StringArg struct{ Value string }

func (PackArg) isFunctionArg()   {}
func (TableArg) isFunctionArg()  {}
func (StringArg) isFunctionArg() {}

// VarRoot is the closed set of roots a Var can start from.
type VarRoot interface{ isVarRoot() }

type NameVarRoot struct{ Name string }
type ParenVarRoot struct{ Expr Expr }

func (NameVarRoot) isVarRoot()  {}
func (ParenVarRoot) isVarRoot() {}

// VarSuffix is the closed set of suffixes chainable after a VarRoot.
type VarSuffix interface{ isVarSuffix() }

type NameIndexSuffix struct{ Name string }
type ExprIndexSuffix struct{ Expr Expr }
type CallSuffix struct {
	Method string // "" if a direct call
	Arg    FunctionArg
}

func (NameIndexSuffix) isVarSuffix() {}
func (ExprIndexSuffix) isVarSuffix() {}
func (CallSuffix) isVarSuffix()      {}

// Var is a VarRoot followed by zero or more VarSuffixes.
type Var struct {
	Root     VarRoot
	Suffixes []VarSuffix
}

// TableConstructor is an ordered list of table fields.
type TableConstructor struct{ Fields []TableField }

// TableField is the closed set of table-constructor field variants.
type TableField interface{ isTableField() }

type NameKeyField struct {
	Name  string
	Value Expr
}
type ExprKeyField struct {
	Key   Expr
	Value Expr
}
type NoKeyField struct{ Value Expr }

func (NameKeyField) isTableField() {}
func (ExprKeyField) isTableField() {}
func (NoKeyField) isTableField()   {}

// Binding is one function parameter: a name with an optional type.
type Binding struct {
	Name string
	Type Type
}

// FunctionBody is the shared generics/params/return/block tail of every
// function-valued construct.
type FunctionBody struct {
	Generics []GenericParam
	Params   []Binding
	Varargs  *Binding
	Ret      *ReturnType
	Block    Block
}

// FunctionName is the dotted/colon path after `function`.
type FunctionName struct {
	Path   []string // e.g. ["Foo", "Bar"] for `Foo.Bar:baz`
	Method string    // "" if no method name
}

// Stat is the closed set of statement variants.
type Stat interface{ isStat() }

type AssignStat struct {
	Targets []Var
	Values  []Expr
}
type CompoundAssignStat struct {
	Target   Var
	Operator BinOp
	Value    Expr
}
type CallStat struct{ Call Var }
type DoStat struct{ Block Block }
type WhileStat struct {
	Cond  Expr
	Block Block
}
type RepeatStat struct {
	Block Block
	Cond  Expr
}
type IfStat struct {
	Branches []IfBranch
	ElseBody *Block
}
type IfBranch struct {
	Cond  Expr
	Block Block
}
type NumericForStat struct {
	Name  string
	Type  Type
	Start Expr
	Stop  Expr
	Step  Expr // nil if absent
	Block Block
}
type ForInStat struct {
	Names []Binding
	Exprs []Expr
	Block Block
}
type FunctionStat struct {
	Name FunctionName
	Body FunctionBody
}
type LocalFunctionStat struct {
	Name string
	Body FunctionBody
}
type LocalVariableStat struct {
	Names  []Binding
	Values []Expr
}
type TypeStat struct {
	Export   bool
	Name     string
	Generics []GenericParam
	Value    Type
}

func (AssignStat) isStat()         {}
func (CompoundAssignStat) isStat() {}
func (CallStat) isStat()           {}
func (DoStat) isStat()             {}
func (WhileStat) isStat()          {}
func (RepeatStat) isStat()         {}
func (IfStat) isStat()             {}
func (NumericForStat) isStat()     {}
func (ForInStat) isStat()          {}
func (FunctionStat) isStat()       {}
func (LocalFunctionStat) isStat()  {}
func (LocalVariableStat) isStat()  {}
func (TypeStat) isStat()           {}

// LastStat is the closed set of block-terminating statements.
type LastStat interface{ isLastStat() }

type ReturnStat struct{ Exprs []Expr }
type BreakStat struct{}
type ContinueStat struct{}

func (ReturnStat) isLastStat()   {}
func (BreakStat) isLastStat()    {}
func (ContinueStat) isLastStat() {}

// Block is a sequence of statements optionally terminated by a LastStat.
type Block struct {
	Stats []Stat
	Last  LastStat // nil if absent
}
