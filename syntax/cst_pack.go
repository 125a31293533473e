package syntax

// TypePack is the closed set of type-pack variants — the `...T, U` shapes
// that appear in a function type's parameter list or return annotation
// (spec.md §6.3).
type TypePack interface {
	Node
	Kind() NodeKind
	isTypePack()
}

// VariadicTypePack is `...T`.
type VariadicTypePack struct {
	Dots Token
	Type Type
}

// GenericTypePack is a bare generic pack name used where a type pack is
// expected, e.g. `R...` referring to a pack-kinded generic parameter.
type GenericTypePack struct {
	Name Token
	Dots Token
}

// ListTypePack is `(T, U, ...V)` — zero or more plain types optionally
// followed by a variadic tail, when more than one return type or parameter
// type pack is written out explicitly.
type ListTypePack struct {
	Types    []Type
	Commas   []Token
	Variadic *VariadicTypePack
}

func (*VariadicTypePack) isNode() {}
func (*GenericTypePack) isNode()  {}
func (*ListTypePack) isNode()     {}

func (*VariadicTypePack) isTypePack() {}
func (*GenericTypePack) isTypePack()  {}
func (*ListTypePack) isTypePack()     {}

func (*VariadicTypePack) Kind() NodeKind { return KindVariadicTypePack }
func (*GenericTypePack) Kind() NodeKind  { return KindGenericTypePack }
func (*ListTypePack) Kind() NodeKind     { return KindListTypePack }

// ReturnAnnotation is the return side of a FunctionType or FunctionBody:
// either a single Type, a single TypePack, or a parenthesized list of them.
// Exactly one of Type/Pack is set; Parens is set in addition when the
// annotation is parenthesized.
type ReturnAnnotation struct {
	Type   Type
	Pack   TypePack
	Parens *Parens // set when the return annotation is `(...)`-wrapped
}

// GenericDecl is the `<T, U, R...>` declaration list on a function name or
// type alias, distinct from GenericTypeArgs which is its use-site twin.
type GenericDecl struct {
	Angles Angles
	Params Punctuated[*GenericDeclParam]
}

func (*GenericDecl) isNode()        {}
func (*GenericDecl) Kind() NodeKind { return KindGenericDecl }

// GenericDeclParam is one parameter of a GenericDecl: a plain type
// parameter `T[ = Default]` or a pack parameter `T...[ = Default...]`.
type GenericDeclParam struct {
	Name        Token
	Dots        *Token // set when this is a pack parameter
	Eq          *Token
	DefaultType Type     // set when Dots == nil and a default is present
	DefaultPack TypePack // set when Dots != nil and a default is present
}

func (*GenericDeclParam) isNode()        {}
func (*GenericDeclParam) Kind() NodeKind { return KindGenericDeclParam }

// IsPack reports whether this parameter declares a generic pack rather
// than a plain type.
func (p *GenericDeclParam) IsPack() bool { return p.Dots != nil }
