package syntax

// parseType parses a full type annotation: a union of intersections,
// optionally led by a bare `|` (spec.md §4.2's "combine with `|` and `&`").
// DESIGN.md records the decision that `&` binds tighter than `|`, so the
// grammar is layered as two flat list kinds rather than interleaved.
func (p *Parser) parseType() (Type, *ParseError) {
	var leading *Token
	if tok, ok := p.eatIf(TkPipe); ok {
		leading = &tok
	}

	first, err := p.parseIntersectionType()
	if err != nil {
		return nil, err
	}

	types := []Type{first}
	var pipes []Token
	for p.at(TkPipe) {
		pipes = append(pipes, p.eat())
		next, err := p.parseIntersectionType()
		if err != nil {
			return nil, err
		}
		types = append(types, next)
	}

	if leading == nil && len(types) == 1 {
		return types[0], nil
	}
	return &UnionType{Leading: leading, Types: types, Pipes: pipes}, nil
}

func (p *Parser) parseIntersectionType() (Type, *ParseError) {
	var leading *Token
	if tok, ok := p.eatIf(TkAmp); ok {
		leading = &tok
	}

	first, err := p.parsePostfixType()
	if err != nil {
		return nil, err
	}

	types := []Type{first}
	var amps []Token
	for p.at(TkAmp) {
		amps = append(amps, p.eat())
		next, err := p.parsePostfixType()
		if err != nil {
			return nil, err
		}
		types = append(types, next)
	}

	if leading == nil && len(types) == 1 {
		return types[0], nil
	}
	return &IntersectionType{Leading: leading, Types: types, Amps: amps}, nil
}

// parsePostfixType parses a primary type followed by any number of `?`
// optional-type markers.
func (p *Parser) parsePostfixType() (Type, *ParseError) {
	t, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	for {
		q, ok := p.eatIf(TkQuestion)
		if !ok {
			break
		}
		t = &OptionalType{Inner: t, Question: q}
	}
	return t, nil
}

func (p *Parser) parsePrimaryType() (Type, *ParseError) {
	switch p.currentKind() {
	case TkNil:
		return &NilType{Keyword: p.eat()}, nil
	case TkTrue, TkFalse:
		return &BooleanType{Value: p.eat()}, nil
	case TkString:
		return &StringType{Value: p.eat()}, nil
	case TkTypeof:
		return p.parseTypeofType()
	case TkLBrace:
		return p.parseBraceType()
	case TkLParen:
		return p.parseParenOrFunctionType(nil)
	case TkLt:
		generics, err := p.parseGenericDecl()
		if err != nil {
			return nil, err
		}
		return p.parseParenOrFunctionType(generics)
	case TkIdent:
		return p.parseReferenceType()
	default:
		return nil, p.expected("a type")
	}
}

func (p *Parser) parseTypeofType() (Type, *ParseError) {
	kw := p.eat()
	open, err := p.expect(TkLParen)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	close, err := p.expect(TkRParen)
	if err != nil {
		return nil, err
	}
	return &TypeofType{Keyword: kw, Parens: Parens{Open: open, Close: close}, Expr: expr}, nil
}

// parseBraceType disambiguates the array-shorthand `{T}` from a full table
// type `{ field, field, ... }` by a two-token lookahead: `{ ident :` or
// `{ [` begin a field list, everything else is a single element type.
func (p *Parser) parseBraceType() (Type, *ParseError) {
	open := p.eat()
	if p.at(TkRBrace) {
		close := p.eat()
		return &TableType{Braces: Braces{Open: open, Close: close}}, nil
	}
	if p.at(TkLBracket) || p.startsNamePropField() {
		fields, close, err := p.parseTableTypeFields(open)
		if err != nil {
			return nil, err
		}
		return &TableType{Braces: Braces{Open: open, Close: close}, Fields: fields}, nil
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	close, err := p.expect(TkRBrace)
	if err != nil {
		return nil, err
	}
	return &ArrayType{Braces: Braces{Open: open, Close: close}, Element: elem}, nil
}

func (p *Parser) startsNamePropField() bool {
	if !p.at(TkIdent) {
		return false
	}
	if p.peek(1).Kind == TkColon {
		return true
	}
	// `read name: T` / `write name: T` access-qualified field.
	if (p.current().Text == "read" || p.current().Text == "write") &&
		(p.peek(1).Kind == TkIdent || p.peek(1).Kind == TkLBracket) {
		return true
	}
	return false
}

func (p *Parser) parseTableTypeFields(open Token) (Punctuated[TableTypeField], Token, *ParseError) {
	var fields Punctuated[TableTypeField]
	for !p.at(TkRBrace) {
		field, err := p.parseTableTypeField()
		if err != nil {
			return nil, Token{}, err
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		} else if tok, ok := p.eatIf(TkSemicolon); ok {
			sep = &tok
		}
		fields = append(fields, PunctuatedItem[TableTypeField]{Node: field, Sep: sep})
		if sep == nil {
			break
		}
	}
	close, err := p.expect(TkRBrace)
	if err != nil {
		return nil, Token{}, err
	}
	return fields, close, nil
}

func (p *Parser) parseTableTypeField() (TableTypeField, *ParseError) {
	var access *Token
	if p.at(TkIdent) && (p.current().Text == "read" || p.current().Text == "write") &&
		(p.peek(1).Kind == TkIdent || p.peek(1).Kind == TkLBracket) {
		tok := p.eat()
		access = &tok
	}

	if p.at(TkLBracket) {
		brOpen := p.eat()
		if p.at(TkString) {
			key := p.eat()
			brClose, err := p.expect(TkRBracket)
			if err != nil {
				return nil, err
			}
			colon, err := p.expect(TkColon)
			if err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &StringPropField{Access: access, Brackets: Brackets{Open: brOpen, Close: brClose}, Key: key, Colon: colon, Type: typ}, nil
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		brClose, err := p.expect(TkRBracket)
		if err != nil {
			return nil, err
		}
		colon, err := p.expect(TkColon)
		if err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &IndexerField{Access: access, Brackets: Brackets{Open: brOpen, Close: brClose}, Key: key, Colon: colon, Type: typ}, nil
	}

	name, err := p.expect(TkIdent)
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(TkColon)
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &NamePropField{Access: access, Name: name, Colon: colon, Type: typ}, nil
}

// parseParenOrFunctionType parses either a parenthesized type `(T)` or a
// function type `(params) -> ret`; generics (if any) forces function-type
// interpretation since only function types take a generic declaration.
func (p *Parser) parseParenOrFunctionType(generics *GenericDecl) (Type, *ParseError) {
	open, err := p.expect(TkLParen)
	if err != nil {
		return nil, err
	}

	if generics == nil && p.at(TkRParen) {
		// `()` with no generics could still be a zero-arg function type;
		// that's only confirmed by a following `->`.
		close := p.eat()
		if p.at(TkArrow) {
			arrow := p.eat()
			ret, err := p.parseReturnAnnotation()
			if err != nil {
				return nil, err
			}
			return &FunctionType{Parens: Parens{Open: open, Close: close}, Arrow: arrow, Ret: *ret}, nil
		}
		return nil, p.expected("a type before `)`")
	}

	if generics == nil && p.isSingleParenType() {
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		close, err := p.expect(TkRParen)
		if err != nil {
			return nil, err
		}
		if !p.at(TkArrow) {
			return &ParenType{Parens: Parens{Open: open, Close: close}, Inner: inner}, nil
		}
		// A single parenthesized type turns out to be a one-parameter
		// function type, e.g. `(number) -> string`.
		arrow := p.eat()
		ret, err := p.parseReturnAnnotation()
		if err != nil {
			return nil, err
		}
		param := &FunctionTypeParam{Type: inner}
		return &FunctionType{
			Parens: Parens{Open: open, Close: close},
			Params: Punctuated[*FunctionTypeParam]{{Node: param}},
			Arrow:  arrow,
			Ret:    *ret,
		}, nil
	}

	params, varargsComma, varargs, close, err := p.parseFunctionTypeParams()
	if err != nil {
		return nil, err
	}
	arrow, err := p.expect(TkArrow)
	if err != nil {
		return nil, err
	}
	ret, err := p.parseReturnAnnotation()
	if err != nil {
		return nil, err
	}
	return &FunctionType{
		Generics: generics, Parens: Parens{Open: open, Close: close},
		Params: params, VarargsComma: varargsComma, Varargs: varargs,
		Arrow: arrow, Ret: *ret,
	}, nil
}

// isSingleParenType reports whether the parser, sitting just past a `(`
// that is not immediately `)`, is looking at a lone type rather than a
// function-type parameter list: true unless the first token is a named
// parameter (`ident :`) or an ellipsis, or there is a top-level comma
// before the matching `)`.
func (p *Parser) isSingleParenType() bool {
	if p.at(TkEllipsis) {
		return false
	}
	if p.at(TkIdent) && p.peek(1).Kind == TkColon {
		return false
	}
	depth := 0
	for i := 0; ; i++ {
		t := p.peek(i)
		switch t.Kind {
		case TkEOF:
			return true
		case TkLParen, TkLBrace, TkLBracket, TkLt:
			depth++
		case TkRParen:
			if depth == 0 {
				return true
			}
			depth--
		case TkRBrace, TkRBracket, TkGt:
			if depth > 0 {
				depth--
			}
		case TkComma:
			if depth == 0 {
				return false
			}
		}
	}
}

func (p *Parser) parseFunctionTypeParams() (Punctuated[*FunctionTypeParam], *Token, *VariadicTypePack, Token, *ParseError) {
	var params Punctuated[*FunctionTypeParam]
	var varargsComma *Token
	var varargs *VariadicTypePack

	for !p.at(TkRParen) && !p.at(TkEllipsis) {
		param, err := p.parseFunctionTypeParam()
		if err != nil {
			return nil, nil, nil, Token{}, err
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		params = append(params, PunctuatedItem[*FunctionTypeParam]{Node: param, Sep: sep})
		if sep == nil {
			break
		}
	}
	if p.at(TkEllipsis) {
		if len(params) > 0 && params[len(params)-1].Sep != nil {
			// Lift the trailing comma out of the params list so Walk
			// doesn't visit it twice (once there, once as VarargsComma).
			varargsComma = params[len(params)-1].Sep
			params[len(params)-1].Sep = nil
		}
		dots := p.eat()
		typ, err := p.parseType()
		if err != nil {
			return nil, nil, nil, Token{}, err
		}
		varargs = &VariadicTypePack{Dots: dots, Type: typ}
	}
	close, err := p.expect(TkRParen)
	if err != nil {
		return nil, nil, nil, Token{}, err
	}
	return params, varargsComma, varargs, close, nil
}

func (p *Parser) parseFunctionTypeParam() (*FunctionTypeParam, *ParseError) {
	if p.at(TkIdent) && p.peek(1).Kind == TkColon {
		name := p.eat()
		colon := p.eat()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &FunctionTypeParam{Name: &name, Colon: &colon, Type: typ}, nil
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &FunctionTypeParam{Type: typ}, nil
}

// parseReturnAnnotation parses the return side of a function type or
// function body: a bare type, a bare type pack, or a parenthesized list.
func (p *Parser) parseReturnAnnotation() (*ReturnAnnotation, *ParseError) {
	if p.at(TkEllipsis) {
		dots := p.eat()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ReturnAnnotation{Pack: &VariadicTypePack{Dots: dots, Type: typ}}, nil
	}
	if p.at(TkLParen) {
		return p.parseParenReturnAnnotation()
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ReturnAnnotation{Type: typ}, nil
}

func (p *Parser) parseParenReturnAnnotation() (*ReturnAnnotation, *ParseError) {
	open := p.eat()
	if p.at(TkRParen) {
		close := p.eat()
		return &ReturnAnnotation{
			Parens: &Parens{Open: open, Close: close},
			Pack:   &ListTypePack{},
		}, nil
	}

	var types []Type
	var commas []Token
	var variadic *VariadicTypePack
	for {
		if p.at(TkEllipsis) {
			dots := p.eat()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			variadic = &VariadicTypePack{Dots: dots, Type: typ}
			break
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		comma, ok := p.eatIf(TkComma)
		if !ok {
			break
		}
		commas = append(commas, comma)
	}
	close, err := p.expect(TkRParen)
	if err != nil {
		return nil, err
	}
	if len(types) == 1 && variadic == nil {
		return &ReturnAnnotation{Parens: &Parens{Open: open, Close: close}, Type: types[0]}, nil
	}
	return &ReturnAnnotation{
		Parens: &Parens{Open: open, Close: close},
		Pack:   &ListTypePack{Types: types, Commas: commas, Variadic: variadic},
	}, nil
}

func (p *Parser) parseReferenceType() (Type, *ParseError) {
	name1, err := p.expect(TkIdent)
	if err != nil {
		return nil, err
	}
	var prefix *ReferencePrefix
	name := name1
	if p.at(TkDot) {
		dot := p.eat()
		n2, err := p.expect(TkIdent)
		if err != nil {
			return nil, err
		}
		prefix = &ReferencePrefix{Name: name1, Dot: dot}
		name = n2
	}
	var generics *GenericTypeArgs
	if p.at(TkLt) {
		g, err := p.parseGenericTypeArgs()
		if err != nil {
			return nil, err
		}
		generics = g
	}
	return &ReferenceType{Prefix: prefix, Name: name, Generics: generics}, nil
}

func (p *Parser) parseGenericTypeArgs() (*GenericTypeArgs, *ParseError) {
	open, err := p.expect(TkLt)
	if err != nil {
		return nil, err
	}
	var args Punctuated[typeOrPackArg]
	for !p.at(TkGt) {
		var arg typeOrPackArg
		if p.at(TkEllipsis) {
			dots := p.eat()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			arg.Pack = &VariadicTypePack{Dots: dots, Type: typ}
		} else {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			arg.Type = typ
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		args = append(args, PunctuatedItem[typeOrPackArg]{Node: arg, Sep: sep})
		if sep == nil {
			break
		}
	}
	close, err := p.expect(TkGt)
	if err != nil {
		return nil, err
	}
	return &GenericTypeArgs{Angles: Angles{Open: open, Close: close}, Args: args}, nil
}

// parseGenericDecl parses `<T, U, R...>` after `function` or `type`.
func (p *Parser) parseGenericDecl() (*GenericDecl, *ParseError) {
	open, err := p.expect(TkLt)
	if err != nil {
		return nil, err
	}
	var params Punctuated[*GenericDeclParam]
	sawPack := false
	sawDefault := false
	for !p.at(TkGt) {
		param, err := p.parseGenericDeclParam()
		if err != nil {
			return nil, err
		}
		// P5 / spec invariant 3: generic names precede generic packs.
		if param.Dots == nil && sawPack {
			return nil, &ParseError{Span: param.Name.Span, Message: "generic packs must follow names"}
		}
		if param.Dots != nil {
			sawPack = true
		}
		// P5 / spec invariant 4: once a parameter has a default, every
		// subsequent parameter must also have one.
		hasDefault := param.Eq != nil
		if sawDefault && !hasDefault {
			return nil, &ParseError{Span: param.Name.Span, Message: "duplicate-default-ordering in generics"}
		}
		if hasDefault {
			sawDefault = true
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		params = append(params, PunctuatedItem[*GenericDeclParam]{Node: param, Sep: sep})
		if sep == nil {
			break
		}
	}
	close, err := p.expect(TkGt)
	if err != nil {
		return nil, err
	}
	return &GenericDecl{Angles: Angles{Open: open, Close: close}, Params: params}, nil
}

func (p *Parser) parseGenericDeclParam() (*GenericDeclParam, *ParseError) {
	name, err := p.expect(TkIdent)
	if err != nil {
		return nil, err
	}
	var dots *Token
	if tok, ok := p.eatIf(TkEllipsis); ok {
		dots = &tok
	}
	var eq *Token
	var defaultType Type
	var defaultPack TypePack
	if tok, ok := p.eatIf(TkEq); ok {
		eq = &tok
		if dots != nil {
			d, err := p.expect(TkEllipsis)
			if err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			defaultPack = &VariadicTypePack{Dots: d, Type: typ}
		} else {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			defaultType = typ
		}
	}
	return &GenericDeclParam{Name: name, Dots: dots, Eq: eq, DefaultType: defaultType, DefaultPack: defaultPack}, nil
}
