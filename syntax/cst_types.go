package syntax

// Type is the closed set of type-annotation node variants (spec.md §6.3).
type Type interface {
	Node
	Kind() NodeKind
	isType()
}

// NilType is the `nil` type literal.
type NilType struct{ Keyword Token }

// BooleanType is the `true`/`false` type literal.
type BooleanType struct{ Value Token }

// StringType is a string literal used as a singleton type.
type StringType struct{ Value Token }

// ReferencePrefix is the optional `Name.` module prefix of a type reference.
type ReferencePrefix struct {
	Name Token
	Dot  Token
}

// GenericTypeArgs is the `<T, U...>` generic argument list applied to a
// type reference.
type GenericTypeArgs struct {
	Angles Angles
	Args   Punctuated[typeOrPackArg]
}

// typeOrPackArg is one generic type argument, which may itself be a type or
// (when trailing) a type pack, mirroring GenericDeclParam's names-then-packs
// shape at the use site.
type typeOrPackArg struct {
	Type Type     // set when this argument is a plain type
	Pack TypePack // set when this argument is a pack (e.g. `...number`)
}

// ReferenceType is `[prefix.]name[<generics>]`.
type ReferenceType struct {
	Prefix   *ReferencePrefix
	Name     Token
	Generics *GenericTypeArgs
}

// TypeofType is `typeof(expr)`, recognized only in type position.
type TypeofType struct {
	Keyword Token
	Parens  Parens
	Expr    Expr
}

// ArrayType is the `{T}` table-type shorthand for a homogeneous array.
type ArrayType struct {
	Braces  Braces
	Element Type
}

// TableType is `{ field, field, ... }`.
type TableType struct {
	Braces Braces
	Fields Punctuated[TableTypeField]
}

// FunctionType is `[<generics>](params[, ...varargs]) -> ret`.
type FunctionType struct {
	Generics     *GenericDecl
	Parens       Parens
	Params       Punctuated[*FunctionTypeParam]
	VarargsComma *Token // set when Params is non-empty and Varargs follows
	Varargs      *VariadicTypePack
	Arrow        Token
	Ret          ReturnAnnotation
}

// FunctionTypeParam is one parameter in a function type's parameter list:
// an optional `name:` label followed by its type.
type FunctionTypeParam struct {
	Name  *Token
	Colon *Token
	Type  Type
}

// ParenType is `(T)`, a parenthesized type.
type ParenType struct {
	Parens Parens
	Inner  Type
}

// OptionalType is `T?`.
type OptionalType struct {
	Inner    Type
	Question Token
}

// UnionType is a flat `[|] T | U | V` list (spec.md §4.2, §9 — `&` binds
// tighter than `|`, see DESIGN.md's Open Question decision).
type UnionType struct {
	Leading *Token
	Types   []Type
	Pipes   []Token // len(Types)-1
}

// IntersectionType is a flat `[&] T & U & V` list.
type IntersectionType struct {
	Leading *Token
	Types   []Type
	Amps    []Token // len(Types)-1
}

func (*GenericTypeArgs) isNode()        {}
func (*GenericTypeArgs) Kind() NodeKind { return KindGenericTypeArgs }

func (*NilType) isNode()          {}
func (*BooleanType) isNode()      {}
func (*StringType) isNode()       {}
func (*ReferenceType) isNode()    {}
func (*TypeofType) isNode()       {}
func (*ArrayType) isNode()        {}
func (*TableType) isNode()        {}
func (*FunctionType) isNode()     {}
func (*ParenType) isNode()        {}
func (*OptionalType) isNode()     {}
func (*UnionType) isNode()        {}
func (*IntersectionType) isNode() {}

func (*NilType) isType()          {}
func (*BooleanType) isType()      {}
func (*StringType) isType()       {}
func (*ReferenceType) isType()    {}
func (*TypeofType) isType()       {}
func (*ArrayType) isType()        {}
func (*TableType) isType()        {}
func (*FunctionType) isType()     {}
func (*ParenType) isType()        {}
func (*OptionalType) isType()     {}
func (*UnionType) isType()        {}
func (*IntersectionType) isType() {}

func (*NilType) Kind() NodeKind          { return KindNilType }
func (*BooleanType) Kind() NodeKind      { return KindBooleanType }
func (*StringType) Kind() NodeKind       { return KindStringType }
func (*ReferenceType) Kind() NodeKind    { return KindReferenceType }
func (*TypeofType) Kind() NodeKind       { return KindTypeofType }
func (*ArrayType) Kind() NodeKind        { return KindArrayType }
func (*TableType) Kind() NodeKind        { return KindTableType }
func (*FunctionType) Kind() NodeKind     { return KindFunctionType }
func (*ParenType) Kind() NodeKind        { return KindParenType }
func (*OptionalType) Kind() NodeKind     { return KindOptionalType }
func (*UnionType) Kind() NodeKind        { return KindUnionType }
func (*IntersectionType) Kind() NodeKind { return KindIntersectionType }

// TableTypeField is the closed set of field variants inside a TableType.
type TableTypeField interface {
	Node
	Kind() NodeKind
	isTableTypeField()
}

// NamePropField is `name: T`, optionally `read`/`write` access-qualified;
// Access holds that modifier token when present.
type NamePropField struct {
	Access *Token
	Name   Token
	Colon  Token
	Type   Type
}

// StringPropField is `["literal"]: T`.
type StringPropField struct {
	Access   *Token
	Brackets Brackets
	Key      Token
	Colon    Token
	Type     Type
}

// IndexerField is `[KeyType]: T`.
type IndexerField struct {
	Access   *Token
	Brackets Brackets
	Key      Type
	Colon    Token
	Type     Type
}

func (*NamePropField) isNode()   {}
func (*StringPropField) isNode() {}
func (*IndexerField) isNode()    {}

func (*NamePropField) isTableTypeField()   {}
func (*StringPropField) isTableTypeField() {}
func (*IndexerField) isTableTypeField()    {}

func (*NamePropField) Kind() NodeKind   { return KindNamePropField }
func (*StringPropField) Kind() NodeKind { return KindStringPropField }
func (*IndexerField) Kind() NodeKind    { return KindIndexerField }
