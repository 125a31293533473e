package syntax

// parseBlock parses a sequence of statements optionally terminated by a
// return/break/continue, stopping at whatever token ends the enclosing
// construct (`end`, `else`, `elseif`, `until`, or end of file).
func (p *Parser) parseBlock() (*Block, *ParseError) {
	var stats []Stat
	var semis []*Token
	var last LastStat
	var lastSemi *Token

	for !p.atBlockEnd() {
		if p.atLastStatStart() {
			l, err := p.parseLastStat()
			if err != nil {
				return nil, err
			}
			last = l
			if tok, ok := p.eatIf(TkSemicolon); ok {
				lastSemi = &tok
			}
			break
		}
		stat, err := p.parseStat()
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
		var sep *Token
		if tok, ok := p.eatIf(TkSemicolon); ok {
			sep = &tok
		}
		semis = append(semis, sep)
	}

	return &Block{Stats: stats, StatSemi: semis, Last: last, LastSemi: lastSemi}, nil
}

func (p *Parser) atBlockEnd() bool {
	return p.atSet(TkEnd, TkElse, TkElseif, TkUntil, TkEOF)
}

func (p *Parser) atLastStatStart() bool {
	return p.atSet(TkReturn, TkBreak, TkContinue)
}

func (p *Parser) parseLastStat() (LastStat, *ParseError) {
	switch p.currentKind() {
	case TkReturn:
		tok := p.eat()
		var values Punctuated[Expr]
		if p.startsExpr() {
			v, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			values = v
		}
		return &ReturnStat{Return: tok, Values: values}, nil
	case TkBreak:
		return &BreakStat{Keyword: p.eat()}, nil
	case TkContinue:
		return &ContinueStat{Keyword: p.eat()}, nil
	default:
		return nil, p.expected("return, break, or continue")
	}
}

func (p *Parser) parseStat() (Stat, *ParseError) {
	switch p.currentKind() {
	case TkDo:
		return p.parseDoStat()
	case TkWhile:
		return p.parseWhileStat()
	case TkRepeat:
		return p.parseRepeatStat()
	case TkIf:
		return p.parseIfStat()
	case TkFor:
		return p.parseForStat()
	case TkFunction:
		return p.parseFunctionStat()
	case TkLocal:
		return p.parseLocalStat()
	case TkTypeKw, TkExport:
		return p.parseTypeStat()
	case TkAt:
		return p.parseAttributedFunctionStat()
	default:
		return p.parseAssignOrCallStat()
	}
}

func (p *Parser) parseDoStat() (Stat, *ParseError) {
	do := p.eat()
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TkEnd)
	if err != nil {
		return nil, err
	}
	return &DoStat{Do: do, Block: block, End: end}, nil
}

func (p *Parser) parseWhileStat() (Stat, *ParseError) {
	while := p.eat()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	do, err := p.expect(TkDo)
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TkEnd)
	if err != nil {
		return nil, err
	}
	return &WhileStat{While: while, Cond: cond, Do: do, Block: block, End: end}, nil
}

func (p *Parser) parseRepeatStat() (Stat, *ParseError) {
	repeat := p.eat()
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	until, err := p.expect(TkUntil)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &RepeatStat{Repeat: repeat, Block: block, Until: until, Cond: cond}, nil
}

func (p *Parser) parseIfStat() (Stat, *ParseError) {
	ifTok := p.eat()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.expect(TkThen)
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseIfs []*ElseIfClause
	for p.at(TkElseif) {
		c, err := p.parseElseIfClause()
		if err != nil {
			return nil, err
		}
		elseIfs = append(elseIfs, c)
	}
	var elseTok *Token
	var elseBlock *Block
	if tok, ok := p.eatIf(TkElse); ok {
		elseTok = &tok
		eb, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBlock = eb
	}
	end, err := p.expect(TkEnd)
	if err != nil {
		return nil, err
	}
	return &IfStat{
		If: ifTok, Cond: cond, Then: then, Block: block,
		ElseIfs: elseIfs, Else: elseTok, ElseBlock: elseBlock, End: end,
	}, nil
}

func (p *Parser) parseElseIfClause() (*ElseIfClause, *ParseError) {
	elseif := p.eat()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.expect(TkThen)
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ElseIfClause{Elseif: elseif, Cond: cond, Then: then, Block: block}, nil
}

// parseForStat disambiguates numeric-for from for-in by parsing the first
// loop variable, then checking whether `=` (numeric) or `,`/`in` (for-in)
// follows.
func (p *Parser) parseForStat() (Stat, *ParseError) {
	forTok := p.eat()
	first, err := p.parseBinding()
	if err != nil {
		return nil, err
	}

	if p.at(TkEq) {
		eq := p.eat()
		start, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		comma1, err := p.expect(TkComma)
		if err != nil {
			return nil, err
		}
		stop, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		var comma2 *Token
		var step Expr
		if tok, ok := p.eatIf(TkComma); ok {
			comma2 = &tok
			s, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			step = s
		}
		do, err := p.expect(TkDo)
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(TkEnd)
		if err != nil {
			return nil, err
		}
		return &NumericForStat{
			For: forTok, Name: first.Name, Colon: first.Colon, Type: first.Type,
			Eq: eq, Start: start, Comma1: comma1, Stop: stop, Comma2: comma2, Step: step,
			Do: do, Block: block, End: end,
		}, nil
	}

	var names Punctuated[*Binding]
	cur := first
	for {
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		names = append(names, PunctuatedItem[*Binding]{Node: cur, Sep: sep})
		if sep == nil {
			break
		}
		next, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		cur = next
	}
	in, err := p.expect(TkIn)
	if err != nil {
		return nil, err
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	do, err := p.expect(TkDo)
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TkEnd)
	if err != nil {
		return nil, err
	}
	return &ForInStat{For: forTok, Names: names, In: in, Exprs: exprs, Do: do, Block: block, End: end}, nil
}

func (p *Parser) parseFunctionStat() (Stat, *ParseError) {
	function := p.eat()
	name, err := p.parseFunctionName()
	if err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody(nil)
	if err != nil {
		return nil, err
	}
	return &FunctionStat{Function: function, Name: name, Body: body}, nil
}

func (p *Parser) parseFunctionName() (*FunctionName, *ParseError) {
	name1, err := p.expect(TkIdent)
	if err != nil {
		return nil, err
	}
	var dotted []NameIndexSuffix
	for p.at(TkDot) {
		dot := p.eat()
		n, err := p.expect(TkIdent)
		if err != nil {
			return nil, err
		}
		dotted = append(dotted, NameIndexSuffix{Dot: dot, Name: n})
	}
	var method *MethodName
	if tok, ok := p.eatIf(TkColon); ok {
		n, err := p.expect(TkIdent)
		if err != nil {
			return nil, err
		}
		method = &MethodName{Colon: tok, Name: n}
	}
	return &FunctionName{Name: name1, Dotted: dotted, Method: method}, nil
}

// parseAttributedFunctionStat parses `@attr ... function ...` and
// `@attr ... local function ...`, threading the attributes into the
// resulting FunctionBody.
func (p *Parser) parseAttributedFunctionStat() (Stat, *ParseError) {
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if p.at(TkLocal) {
		local := p.eat()
		function, err := p.expect(TkFunction)
		if err != nil {
			return nil, err
		}
		name, err := p.expect(TkIdent)
		if err != nil {
			return nil, err
		}
		body, err := p.parseFunctionBody(attrs)
		if err != nil {
			return nil, err
		}
		return &LocalFunctionStat{Local: local, Function: function, Name: name, Body: body}, nil
	}
	function, err := p.expect(TkFunction)
	if err != nil {
		return nil, err
	}
	name, err := p.parseFunctionName()
	if err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody(attrs)
	if err != nil {
		return nil, err
	}
	return &FunctionStat{Function: function, Name: name, Body: body}, nil
}

func (p *Parser) parseLocalStat() (Stat, *ParseError) {
	local := p.eat()
	if p.at(TkFunction) {
		function := p.eat()
		name, err := p.expect(TkIdent)
		if err != nil {
			return nil, err
		}
		body, err := p.parseFunctionBody(nil)
		if err != nil {
			return nil, err
		}
		return &LocalFunctionStat{Local: local, Function: function, Name: name, Body: body}, nil
	}

	var names Punctuated[*Binding]
	for {
		b, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		var sep *Token
		if tok, ok := p.eatIf(TkComma); ok {
			sep = &tok
		}
		names = append(names, PunctuatedItem[*Binding]{Node: b, Sep: sep})
		if sep == nil {
			break
		}
	}
	var eq *Token
	var values Punctuated[Expr]
	if tok, ok := p.eatIf(TkEq); ok {
		eq = &tok
		v, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		values = v
	}
	return &LocalVariableStat{Local: local, Names: names, Eq: eq, Values: values}, nil
}

func (p *Parser) parseTypeStat() (Stat, *ParseError) {
	var export *Token
	if tok, ok := p.eatIf(TkExport); ok {
		export = &tok
	}
	typeKw, err := p.expect(TkTypeKw)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(TkIdent)
	if err != nil {
		return nil, err
	}
	var generics *GenericDecl
	if p.at(TkLt) {
		g, err := p.parseGenericDecl()
		if err != nil {
			return nil, err
		}
		generics = g
	}
	eq, err := p.expect(TkEq)
	if err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &TypeStat{Export: export, Type: typeKw, Name: name, Generics: generics, Eq: eq, Value: value}, nil
}

// parseAssignOrCallStat parses the shared "prefixexp" entry point of a
// statement and disambiguates between a call statement, a simple or
// multi-target assignment, and a compound assignment by what follows the
// first parsed Var (spec.md §4.2's "assignment-vs-call" disambiguation).
func (p *Parser) parseAssignOrCallStat() (Stat, *ParseError) {
	first, err := p.parseVar()
	if err != nil {
		return nil, err
	}

	if op, ok := CompoundOpFromTokenKind(p.currentKind()); ok {
		opToken := p.eat()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &CompoundAssignStat{Target: first, Op: op, OpToken: opToken, Value: value}, nil
	}

	if p.at(TkEq) || p.at(TkComma) {
		var targets Punctuated[*Var]
		cur := first
		for {
			var sep *Token
			if tok, ok := p.eatIf(TkComma); ok {
				sep = &tok
			}
			targets = append(targets, PunctuatedItem[*Var]{Node: cur, Sep: sep})
			if sep == nil {
				break
			}
			next, err := p.parseVar()
			if err != nil {
				return nil, err
			}
			cur = next
		}
		eq, err := p.expect(TkEq)
		if err != nil {
			return nil, err
		}
		values, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &AssignStat{Targets: targets, Eq: eq, Values: values}, nil
	}

	if !first.IsCall() {
		return nil, p.expected("`=` or a call suffix")
	}
	return &CallStat{Call: first}, nil
}
