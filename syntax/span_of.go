package syntax

import "errors"

// ErrEmptyBlockSpan is returned by SpanOf when asked for the span of a
// Block with no statements and no last-statement: there is no token to
// anchor the span to (spec.md §4.4 invariant 2).
var ErrEmptyBlockSpan = errors.New("span of empty block is undefined")

// SpanOf computes the span of any CST node on demand from its first and
// last constituent tokens (spec.md §4.4). Composite nodes do not store
// their own span; this walks down to the relevant leaf tokens each call.
func SpanOf(node Node) (Span, error) {
	first, err := firstToken(node)
	if err != nil {
		return Span{}, err
	}
	last, err := lastToken(node)
	if err != nil {
		return Span{}, err
	}
	return first.Span.Merge(last.Span), nil
}

// firstToken returns the first token that would be emitted by Walk over
// node, i.e. the token anchoring the start of node's span.
func firstToken(node Node) (Token, error) {
	switch n := node.(type) {
	case *Cst:
		if len(n.Block.Stats) == 0 && n.Block.Last == nil {
			return n.Eof, nil
		}
		return firstToken(n.Block)
	case *Block:
		if len(n.Stats) > 0 {
			return firstToken(n.Stats[0])
		}
		if n.Last != nil {
			return firstToken(n.Last)
		}
		return Token{}, ErrEmptyBlockSpan

	// Types.
	case *NilType:
		return n.Keyword, nil
	case *BooleanType:
		return n.Value, nil
	case *StringType:
		return n.Value, nil
	case *ReferenceType:
		if n.Prefix != nil {
			return n.Prefix.Name, nil
		}
		return n.Name, nil
	case *TypeofType:
		return n.Keyword, nil
	case *ArrayType:
		return n.Braces.Open, nil
	case *TableType:
		return n.Braces.Open, nil
	case *FunctionType:
		if n.Generics != nil {
			return n.Generics.Angles.Open, nil
		}
		return n.Parens.Open, nil
	case *ParenType:
		return n.Parens.Open, nil
	case *OptionalType:
		return firstToken(n.Inner)
	case *UnionType:
		if n.Leading != nil {
			return *n.Leading, nil
		}
		return firstToken(n.Types[0])
	case *IntersectionType:
		if n.Leading != nil {
			return *n.Leading, nil
		}
		return firstToken(n.Types[0])
	case *GenericTypeArgs:
		return n.Angles.Open, nil

	case *NamePropField:
		if n.Access != nil {
			return *n.Access, nil
		}
		return n.Name, nil
	case *StringPropField:
		if n.Access != nil {
			return *n.Access, nil
		}
		return n.Brackets.Open, nil
	case *IndexerField:
		if n.Access != nil {
			return *n.Access, nil
		}
		return n.Brackets.Open, nil

	case *VariadicTypePack:
		return n.Dots, nil
	case *GenericTypePack:
		return n.Name, nil
	case *ListTypePack:
		if len(n.Types) > 0 {
			return firstToken(n.Types[0])
		}
		return firstToken(n.Variadic)

	case *GenericDecl:
		return n.Angles.Open, nil
	case *GenericDeclParam:
		return n.Name, nil

	// Expressions.
	case *NilExpr:
		return n.Keyword, nil
	case *BooleanExpr:
		return n.Value, nil
	case *NumberExpr:
		return n.Value, nil
	case *StringExpr:
		return n.Value, nil
	case *VarargExpr:
		return n.Dots, nil
	case *InterpStringExpr:
		return n.Segments[0], nil
	case *TableExpr:
		return firstToken(n.Table)
	case *FunctionExpr:
		return n.Keyword, nil
	case *IfElseExpr:
		return n.If, nil
	case *VarExpr:
		return firstToken(n.Var)
	case *AssertionExpr:
		return firstToken(n.Expr)
	case *UnaryExpr:
		return n.OpToken, nil
	case *BinaryExpr:
		return firstToken(n.Left)

	case *TableConstructor:
		return n.Braces.Open, nil
	case *NameKeyField:
		return n.Name, nil
	case *ExprKeyField:
		return n.Brackets.Open, nil
	case *NoKeyField:
		return firstToken(n.Value)

	case *ArgsPack:
		return n.Parens.Open, nil
	case *ArgsTable:
		return firstToken(n.Table)
	case *ArgsString:
		return n.Value, nil

	case *NameVarRoot:
		return n.Name, nil
	case *ParenVarRoot:
		return n.Parens.Open, nil
	case *Var:
		return firstToken(n.Root)
	case *FunctionName:
		return n.Name, nil

	case *FunctionBody:
		if len(n.Attributes) > 0 {
			return n.Attributes[0].At, nil
		}
		if n.Generics != nil {
			return n.Generics.Angles.Open, nil
		}
		return n.Parens.Open, nil
	case *Binding:
		return n.Name, nil
	case *Attribute:
		return n.At, nil

	// Statements.
	case *AssignStat:
		return firstToken(n.Targets[0].Node)
	case *CompoundAssignStat:
		return firstToken(n.Target)
	case *CallStat:
		return firstToken(n.Call)
	case *DoStat:
		return n.Do, nil
	case *WhileStat:
		return n.While, nil
	case *RepeatStat:
		return n.Repeat, nil
	case *IfStat:
		return n.If, nil
	case *ElseIfClause:
		return n.Elseif, nil
	case *NumericForStat:
		return n.For, nil
	case *ForInStat:
		return n.For, nil
	case *FunctionStat:
		return n.Function, nil
	case *LocalFunctionStat:
		return n.Local, nil
	case *LocalVariableStat:
		return n.Local, nil
	case *TypeStat:
		if n.Export != nil {
			return *n.Export, nil
		}
		return n.Type, nil

	case *ReturnStat:
		return n.Return, nil
	case *BreakStat:
		return n.Keyword, nil
	case *ContinueStat:
		return n.Keyword, nil
	}
	return Token{}, errors.New("span_of: unhandled node type")
}

// lastToken returns the last token that would be emitted by Walk over
// node, i.e. the token anchoring the end of node's span.
func lastToken(node Node) (Token, error) {
	switch n := node.(type) {
	case *Cst:
		return n.Eof, nil
	case *Block:
		if n.LastSemi != nil {
			return *n.LastSemi, nil
		}
		if n.Last != nil {
			return lastToken(n.Last)
		}
		if len(n.StatSemi) > 0 && n.StatSemi[len(n.StatSemi)-1] != nil {
			return *n.StatSemi[len(n.StatSemi)-1], nil
		}
		if len(n.Stats) > 0 {
			return lastToken(n.Stats[len(n.Stats)-1])
		}
		return Token{}, ErrEmptyBlockSpan

	case *NilType:
		return n.Keyword, nil
	case *BooleanType:
		return n.Value, nil
	case *StringType:
		return n.Value, nil
	case *ReferenceType:
		if n.Generics != nil {
			return n.Generics.Angles.Close, nil
		}
		return n.Name, nil
	case *TypeofType:
		return n.Parens.Close, nil
	case *ArrayType:
		return n.Braces.Close, nil
	case *TableType:
		return n.Braces.Close, nil
	case *FunctionType:
		return lastTokenOfReturnAnnotation(&n.Ret)
	case *ParenType:
		return n.Parens.Close, nil
	case *OptionalType:
		return n.Question, nil
	case *UnionType:
		return lastToken(n.Types[len(n.Types)-1])
	case *IntersectionType:
		return lastToken(n.Types[len(n.Types)-1])
	case *GenericTypeArgs:
		return n.Angles.Close, nil

	case *NamePropField:
		return lastToken(n.Type)
	case *StringPropField:
		return lastToken(n.Type)
	case *IndexerField:
		return lastToken(n.Type)

	case *VariadicTypePack:
		return lastToken(n.Type)
	case *GenericTypePack:
		return n.Dots, nil
	case *ListTypePack:
		if n.Variadic != nil {
			return lastToken(n.Variadic)
		}
		return lastToken(n.Types[len(n.Types)-1])

	case *GenericDecl:
		return n.Angles.Close, nil
	case *GenericDeclParam:
		if n.DefaultType != nil {
			return lastToken(n.DefaultType)
		}
		if n.DefaultPack != nil {
			return lastToken(n.DefaultPack)
		}
		if n.Dots != nil {
			return *n.Dots, nil
		}
		return n.Name, nil

	case *NilExpr:
		return n.Keyword, nil
	case *BooleanExpr:
		return n.Value, nil
	case *NumberExpr:
		return n.Value, nil
	case *StringExpr:
		return n.Value, nil
	case *VarargExpr:
		return n.Dots, nil
	case *InterpStringExpr:
		return n.Segments[len(n.Segments)-1], nil
	case *TableExpr:
		return lastToken(n.Table)
	case *FunctionExpr:
		return n.Body.End, nil
	case *IfElseExpr:
		return lastToken(n.Alternate)
	case *VarExpr:
		return lastToken(n.Var)
	case *AssertionExpr:
		return lastToken(n.Type)
	case *UnaryExpr:
		return lastToken(n.Operand)
	case *BinaryExpr:
		return lastToken(n.Right)

	case *TableConstructor:
		return n.Braces.Close, nil
	case *NameKeyField:
		return lastToken(n.Value)
	case *ExprKeyField:
		return lastToken(n.Value)
	case *NoKeyField:
		return lastToken(n.Value)

	case *ArgsPack:
		return n.Parens.Close, nil
	case *ArgsTable:
		return lastToken(n.Table)
	case *ArgsString:
		return n.Value, nil

	case *NameVarRoot:
		return n.Name, nil
	case *ParenVarRoot:
		return n.Parens.Close, nil
	case *Var:
		if len(n.Suffixes) > 0 {
			return lastToken(n.Suffixes[len(n.Suffixes)-1])
		}
		return lastToken(n.Root)
	case *NameIndexSuffix:
		return n.Name, nil
	case *ExprIndexSuffix:
		return n.Brackets.Close, nil
	case *CallSuffix:
		return lastTokenOfFunctionArg(n.Args)
	case *FunctionName:
		if n.Method != nil {
			return n.Method.Name, nil
		}
		if len(n.Dotted) > 0 {
			return n.Dotted[len(n.Dotted)-1].Name, nil
		}
		return n.Name, nil

	case *FunctionBody:
		return n.End, nil
	case *Binding:
		if n.Type != nil {
			return lastToken(n.Type)
		}
		return n.Name, nil
	case *Attribute:
		return n.Name, nil

	case *AssignStat:
		return lastToken(n.Values[len(n.Values)-1].Node)
	case *CompoundAssignStat:
		return lastToken(n.Value)
	case *CallStat:
		return lastToken(n.Call)
	case *DoStat:
		return n.End, nil
	case *WhileStat:
		return n.End, nil
	case *RepeatStat:
		return lastToken(n.Cond)
	case *IfStat:
		return n.End, nil
	case *ElseIfClause:
		return lastToken(n.Block)
	case *NumericForStat:
		return n.End, nil
	case *ForInStat:
		return n.End, nil
	case *FunctionStat:
		return n.Body.End, nil
	case *LocalFunctionStat:
		return n.Body.End, nil
	case *LocalVariableStat:
		if len(n.Values) > 0 {
			return lastToken(n.Values[len(n.Values)-1].Node)
		}
		return lastToken(n.Names[len(n.Names)-1].Node)
	case *TypeStat:
		return lastToken(n.Value)

	case *ReturnStat:
		if len(n.Values) > 0 {
			return lastToken(n.Values[len(n.Values)-1].Node)
		}
		return n.Return, nil
	case *BreakStat:
		return n.Keyword, nil
	case *ContinueStat:
		return n.Keyword, nil
	}
	return Token{}, errors.New("span_of: unhandled node type")
}

func lastTokenOfReturnAnnotation(r *ReturnAnnotation) (Token, error) {
	if r.Parens != nil {
		return r.Parens.Close, nil
	}
	if r.Type != nil {
		return lastToken(r.Type)
	}
	return lastToken(r.Pack)
}

func lastTokenOfFunctionArg(a FunctionArg) (Token, error) {
	switch n := a.(type) {
	case *ArgsPack:
		return n.Parens.Close, nil
	case *ArgsTable:
		return lastToken(n.Table)
	case *ArgsString:
		return n.Value, nil
	}
	return Token{}, errors.New("span_of: unhandled function arg")
}
