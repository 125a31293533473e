package syntax

// parseExpr parses a full expression: a binary-operator tree topped by any
// number of `::Type` assertions (spec.md §4.1/§4.2).
func (p *Parser) parseExpr() (Expr, *ParseError) {
	e, err := p.parseBinExpr(0)
	if err != nil {
		return nil, err
	}
	for p.at(TkDblColon) {
		colcol := p.eat()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		e = &AssertionExpr{Expr: e, ColonColon: colcol, Type: typ}
	}
	return e, nil
}

// parseBinExpr implements precedence climbing (teacher's codeExprPrec
// pattern): it parses a unary-or-atom left operand, then repeatedly
// consumes infix operators whose precedence is at least minPrec, recursing
// with minPrec raised to enforce left-associativity (or held flat for
// right-associative operators).
func (p *Parser) parseBinExpr(minPrec int) (Expr, *ParseError) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := BinOpFromTokenKind(p.currentKind())
		if !ok || op.Precedence() < minPrec {
			return left, nil
		}
		opToken := p.eat()
		nextMin := op.Precedence() + 1
		if op.Assoc() == AssocRight {
			nextMin = op.Precedence()
		}
		right, err := p.parseBinExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op, OpToken: opToken, Right: right}
	}
}

// parseUnaryExpr parses a prefix-operator expression, or falls through to
// an atom. The operand is parsed with UnaryPrecedence as the floor, so
// `^` (precedence 9, above UnaryPrecedence's 8) still binds into the
// operand while every other operator does not: `-x^2` is `-(x^2)`.
func (p *Parser) parseUnaryExpr() (Expr, *ParseError) {
	if op, ok := UnOpFromTokenKind(p.currentKind()); ok {
		opToken := p.eat()
		operand, err := p.parseBinExpr(UnaryPrecedence)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, OpToken: opToken, Operand: operand}, nil
	}
	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (Expr, *ParseError) {
	switch p.currentKind() {
	case TkNil:
		return &NilExpr{Keyword: p.eat()}, nil
	case TkTrue, TkFalse:
		return &BooleanExpr{Value: p.eat()}, nil
	case TkNumber:
		return &NumberExpr{Value: p.eat()}, nil
	case TkString:
		return &StringExpr{Value: p.eat()}, nil
	case TkEllipsis:
		return &VarargExpr{Dots: p.eat()}, nil
	case TkInterpStringPlain, TkInterpStringBegin:
		return p.parseInterpString()
	case TkLBrace:
		table, err := p.parseTableConstructor()
		if err != nil {
			return nil, err
		}
		return &TableExpr{Table: table}, nil
	case TkFunction:
		kw := p.eat()
		body, err := p.parseFunctionBody(nil)
		if err != nil {
			return nil, err
		}
		return &FunctionExpr{Keyword: kw, Body: body}, nil
	case TkAt:
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		kw, err := p.expect(TkFunction)
		if err != nil {
			return nil, err
		}
		body, err := p.parseFunctionBody(attrs)
		if err != nil {
			return nil, err
		}
		return &FunctionExpr{Keyword: kw, Body: body}, nil
	case TkIf:
		return p.parseIfElseExpr()
	case TkIdent, TkLParen:
		v, err := p.parseVar()
		if err != nil {
			return nil, err
		}
		return &VarExpr{Var: v}, nil
	default:
		return nil, p.expected("an expression")
	}
}

func (p *Parser) parseInterpString() (Expr, *ParseError) {
	first := p.eat()
	if first.Kind == TkInterpStringPlain {
		return &InterpStringExpr{Segments: []Token{first}}, nil
	}
	segments := []Token{first}
	var exprs []Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.at(TkInterpStringEnd) {
			segments = append(segments, p.eat())
			break
		}
		seg, err := p.expect(TkInterpStringMid)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return &InterpStringExpr{Segments: segments, Exprs: exprs}, nil
}

func (p *Parser) parseIfElseExpr() (Expr, *ParseError) {
	ifTok := p.eat()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.expect(TkThen)
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var clauses []IfElseExprClause
	for p.at(TkElseif) {
		elseif := p.eat()
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		t, err := p.expect(TkThen)
		if err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, IfElseExprClause{Elseif: elseif, Cond: c, Then: t, Value: val})
	}
	elseTok, err := p.expect(TkElse)
	if err != nil {
		return nil, err
	}
	alt, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &IfElseExpr{
		If: ifTok, Cond: cond, Then: then, Consequent: consequent,
		ElseIfs: clauses, Else: elseTok, Alternate: alt,
	}, nil
}

func (p *Parser) parseTableConstructor() (*TableConstructor, *ParseError) {
	open, err := p.expect(TkLBrace)
	if err != nil {
		return nil, err
	}
	var fields Punctuated[TableField]
	for !p.at(TkRBrace) {
		field, err := p.parseTableField()
		if err != nil {
			return nil, err
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		} else if tok, ok := p.eatIf(TkSemicolon); ok {
			sep = &tok
		}
		fields = append(fields, PunctuatedItem[TableField]{Node: field, Sep: sep})
		if sep == nil {
			break
		}
	}
	close, err := p.expect(TkRBrace)
	if err != nil {
		return nil, err
	}
	return &TableConstructor{Braces: Braces{Open: open, Close: close}, Fields: fields}, nil
}

func (p *Parser) parseTableField() (TableField, *ParseError) {
	if p.at(TkLBracket) {
		open := p.eat()
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		close, err := p.expect(TkRBracket)
		if err != nil {
			return nil, err
		}
		eq, err := p.expect(TkEq)
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ExprKeyField{Brackets: Brackets{Open: open, Close: close}, Key: key, Eq: eq, Value: value}, nil
	}
	if p.at(TkIdent) && p.peek(1).Kind == TkEq {
		name := p.eat()
		eq := p.eat()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &NameKeyField{Name: name, Eq: eq, Value: value}, nil
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &NoKeyField{Value: value}, nil
}

// parseVar parses a root (name or parenthesized expression) followed by
// any number of index/call suffixes — the shared "prefixexp" production
// used by assignment targets, call statements, and variable references.
func (p *Parser) parseVar() (*Var, *ParseError) {
	root, err := p.parseVarRoot()
	if err != nil {
		return nil, err
	}
	var suffixes []VarSuffix
	for {
		switch {
		case p.at(TkDot):
			dot := p.eat()
			name, err := p.expect(TkIdent)
			if err != nil {
				return nil, err
			}
			suffixes = append(suffixes, &NameIndexSuffix{Dot: dot, Name: name})
		case p.at(TkLBracket):
			open := p.eat()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			close, err := p.expect(TkRBracket)
			if err != nil {
				return nil, err
			}
			suffixes = append(suffixes, &ExprIndexSuffix{Brackets: Brackets{Open: open, Close: close}, Index: idx})
		case p.at(TkColon):
			colon := p.eat()
			name, err := p.expect(TkIdent)
			if err != nil {
				return nil, err
			}
			args, err := p.parseFunctionArg()
			if err != nil {
				return nil, err
			}
			suffixes = append(suffixes, &CallSuffix{Method: &CallSuffixMethod{Colon: colon, Name: name}, Args: args})
		case p.startsFunctionArg():
			args, err := p.parseFunctionArg()
			if err != nil {
				return nil, err
			}
			suffixes = append(suffixes, &CallSuffix{Args: args})
		default:
			return &Var{Root: root, Suffixes: suffixes}, nil
		}
	}
}

func (p *Parser) parseVarRoot() (VarRoot, *ParseError) {
	if p.at(TkLParen) {
		open := p.eat()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		close, err := p.expect(TkRParen)
		if err != nil {
			return nil, err
		}
		return &ParenVarRoot{Parens: Parens{Open: open, Close: close}, Inner: inner}, nil
	}
	name, err := p.expect(TkIdent)
	if err != nil {
		return nil, err
	}
	return &NameVarRoot{Name: name}, nil
}

func (p *Parser) startsFunctionArg() bool {
	return p.atSet(TkLParen, TkLBrace, TkString)
}

func (p *Parser) parseFunctionArg() (FunctionArg, *ParseError) {
	switch {
	case p.at(TkLParen):
		open := p.eat()
		var args Punctuated[Expr]
		for !p.at(TkRParen) {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			var sep *Token
			if tok, ok := p.eatIf(TkComma); ok {
				sep = &tok
			}
			args = append(args, PunctuatedItem[Expr]{Node: e, Sep: sep})
			if sep == nil {
				break
			}
		}
		close, err := p.expect(TkRParen)
		if err != nil {
			return nil, err
		}
		return &ArgsPack{Parens: Parens{Open: open, Close: close}, Args: args}, nil
	case p.at(TkLBrace):
		table, err := p.parseTableConstructor()
		if err != nil {
			return nil, err
		}
		return &ArgsTable{Table: table}, nil
	case p.at(TkString):
		return &ArgsString{Value: p.eat()}, nil
	default:
		return nil, p.expected("call arguments")
	}
}

// parseAttributes parses zero or more `@name` function attributes.
func (p *Parser) parseAttributes() ([]Attribute, *ParseError) {
	var attrs []Attribute
	for p.at(TkAt) {
		at := p.eat()
		name, err := p.expect(TkIdent)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, Attribute{At: at, Name: name})
	}
	return attrs, nil
}

// parseFunctionBody parses the shared tail of every function-valued
// construct: optional generics, parameter list, optional return
// annotation, body block, and closing `end`.
func (p *Parser) parseFunctionBody(attrs []Attribute) (*FunctionBody, *ParseError) {
	var generics *GenericDecl
	if p.at(TkLt) {
		g, err := p.parseGenericDecl()
		if err != nil {
			return nil, err
		}
		generics = g
	}
	open, err := p.expect(TkLParen)
	if err != nil {
		return nil, err
	}
	var params Punctuated[*Binding]
	for !p.at(TkRParen) {
		b, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		params = append(params, PunctuatedItem[*Binding]{Node: b, Sep: sep})
		if sep == nil {
			break
		}
	}
	close, err := p.expect(TkRParen)
	if err != nil {
		return nil, err
	}
	var colon *Token
	var ret *ReturnAnnotation
	if tok, ok := p.eatIf(TkColon); ok {
		colon = &tok
		r, err := p.parseReturnAnnotation()
		if err != nil {
			return nil, err
		}
		ret = r
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TkEnd)
	if err != nil {
		return nil, err
	}
	return &FunctionBody{
		Attributes: attrs, Generics: generics, Parens: Parens{Open: open, Close: close},
		Params: params, Colon: colon, Ret: ret, Block: block, End: end,
	}, nil
}

func (p *Parser) parseBinding() (*Binding, *ParseError) {
	if !p.atSet(TkIdent, TkEllipsis) {
		return nil, p.expected("a parameter name")
	}
	name := p.eat()
	var colon *Token
	var typ Type
	if tok, ok := p.eatIf(TkColon); ok {
		colon = &tok
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		typ = t
	}
	return &Binding{Name: name, Colon: colon, Type: typ}, nil
}

// parseExprList parses a punctuated expression list, requiring at least
// one expression (used by return/assignment/local-variable values and
// for-in iterator lists).
func (p *Parser) parseExprList() (Punctuated[Expr], *ParseError) {
	var items Punctuated[Expr]
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		items = append(items, PunctuatedItem[Expr]{Node: e, Sep: sep})
		if sep == nil {
			return items, nil
		}
	}
}

// startsExpr reports whether the current token can begin an expression,
// used to decide whether an optional expression list (e.g. `return`'s
// values) is present.
func (p *Parser) startsExpr() bool {
	switch p.currentKind() {
	case TkNil, TkTrue, TkFalse, TkNumber, TkString, TkEllipsis,
		TkInterpStringPlain, TkInterpStringBegin, TkLBrace, TkFunction, TkAt,
		TkIf, TkIdent, TkLParen, TkMinus, TkNot, TkHash, TkPlus:
		return true
	default:
		return false
	}
}
