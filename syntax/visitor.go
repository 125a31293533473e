package syntax

// Visitor is a record of optional callbacks, one per node kind plus one for
// tokens, dispatched by Walk during a pre-order, left-to-right traversal
// (spec.md §4.3). Go has no ergonomic way to write a ~70-named-optional-
// field struct literal the way the reference model does, so the per-kind
// callbacks live in a map keyed by NodeKind instead; Base returns a Visitor
// with every slot absent, which Walk treats as a no-op.
type Visitor struct {
	// Nodes maps a NodeKind to the callback invoked when Walk enters a node
	// of that kind, before descending into its children.
	Nodes map[NodeKind]func(ctx any, node Node)

	// VisitToken is invoked for every token in source order, including
	// tokens embedded in delimiter pairs and the trailing EOF.
	VisitToken func(ctx any, tok Token)
}

// Base returns a Visitor with no callbacks set; every Walk on it is a no-op
// traversal. Callers set only the slots they care about.
func Base() *Visitor {
	return &Visitor{Nodes: map[NodeKind]func(ctx any, node Node){}}
}

func (v *Visitor) enter(ctx any, node Node) {
	if v.Nodes == nil {
		return
	}
	if cb, ok := v.Nodes[node.(interface{ Kind() NodeKind }).Kind()]; ok {
		cb(ctx, node)
	}
}

func (v *Visitor) tok(ctx any, t Token) {
	if v.VisitToken != nil {
		v.VisitToken(ctx, t)
	}
}

// Walk performs a pre-order, left-to-right walk of root, invoking the
// matching Nodes callback on entry to each node and VisitToken for every
// token encountered, in source order (spec.md §4.3, §9).
func Walk(v *Visitor, ctx any, root Node) {
	switch n := root.(type) {
	case *Cst:
		v.enter(ctx, n)
		walkBlock(v, ctx, n.Block)
		v.tok(ctx, n.Eof)
	case *Block:
		walkBlock(v, ctx, n)
	default:
		walkNode(v, ctx, root)
	}
}

func walkPunctuated[T Node](v *Visitor, ctx any, items Punctuated[T]) {
	for _, it := range items {
		walkNode(v, ctx, it.Node)
		if it.Sep != nil {
			v.tok(ctx, *it.Sep)
		}
	}
}

func walkBlock(v *Visitor, ctx any, b *Block) {
	if b == nil {
		return
	}
	v.enter(ctx, b)
	for i, s := range b.Stats {
		walkNode(v, ctx, s)
		if b.StatSemi[i] != nil {
			v.tok(ctx, *b.StatSemi[i])
		}
	}
	if b.Last != nil {
		walkNode(v, ctx, b.Last)
		if b.LastSemi != nil {
			v.tok(ctx, *b.LastSemi)
		}
	}
}

func walkGenericDecl(v *Visitor, ctx any, g *GenericDecl) {
	if g == nil {
		return
	}
	v.enter(ctx, g)
	v.tok(ctx, g.Angles.Open)
	for _, it := range g.Params {
		walkNode(v, ctx, it.Node)
		if it.Sep != nil {
			v.tok(ctx, *it.Sep)
		}
	}
	v.tok(ctx, g.Angles.Close)
}

func walkGenericTypeArgs(v *Visitor, ctx any, g *GenericTypeArgs) {
	if g == nil {
		return
	}
	v.enter(ctx, g)
	v.tok(ctx, g.Angles.Open)
	for _, it := range g.Args {
		if it.Node.Type != nil {
			walkNode(v, ctx, it.Node.Type)
		} else if it.Node.Pack != nil {
			walkNode(v, ctx, it.Node.Pack)
		}
		if it.Sep != nil {
			v.tok(ctx, *it.Sep)
		}
	}
	v.tok(ctx, g.Angles.Close)
}

func walkReturnAnnotation(v *Visitor, ctx any, r *ReturnAnnotation) {
	if r == nil {
		return
	}
	if r.Parens != nil {
		v.tok(ctx, r.Parens.Open)
	}
	if r.Type != nil {
		walkNode(v, ctx, r.Type)
	} else if r.Pack != nil {
		walkNode(v, ctx, r.Pack)
	}
	if r.Parens != nil {
		v.tok(ctx, r.Parens.Close)
	}
}

func walkFunctionBody(v *Visitor, ctx any, f *FunctionBody) {
	v.enter(ctx, f)
	for _, a := range f.Attributes {
		walkNode(v, ctx, &a)
	}
	walkGenericDecl(v, ctx, f.Generics)
	v.tok(ctx, f.Parens.Open)
	walkPunctuated(v, ctx, f.Params)
	v.tok(ctx, f.Parens.Close)
	if f.Colon != nil {
		v.tok(ctx, *f.Colon)
	}
	walkReturnAnnotation(v, ctx, f.Ret)
	walkBlock(v, ctx, f.Block)
	v.tok(ctx, f.End)
}

func walkFunctionArg(v *Visitor, ctx any, a FunctionArg) {
	switch n := a.(type) {
	case *ArgsPack:
		v.enter(ctx, n)
		v.tok(ctx, n.Parens.Open)
		walkPunctuated(v, ctx, n.Args)
		v.tok(ctx, n.Parens.Close)
	case *ArgsTable:
		v.enter(ctx, n)
		walkNode(v, ctx, n.Table)
	case *ArgsString:
		v.enter(ctx, n)
		v.tok(ctx, n.Value)
	}
}

func walkVar(v *Visitor, ctx any, vr *Var) {
	v.enter(ctx, vr)
	switch r := vr.Root.(type) {
	case *NameVarRoot:
		v.enter(ctx, r)
		v.tok(ctx, r.Name)
	case *ParenVarRoot:
		v.enter(ctx, r)
		v.tok(ctx, r.Parens.Open)
		walkNode(v, ctx, r.Inner)
		v.tok(ctx, r.Parens.Close)
	}
	for _, s := range vr.Suffixes {
		switch suf := s.(type) {
		case *NameIndexSuffix:
			v.enter(ctx, suf)
			v.tok(ctx, suf.Dot)
			v.tok(ctx, suf.Name)
		case *ExprIndexSuffix:
			v.enter(ctx, suf)
			v.tok(ctx, suf.Brackets.Open)
			walkNode(v, ctx, suf.Index)
			v.tok(ctx, suf.Brackets.Close)
		case *CallSuffix:
			v.enter(ctx, suf)
			if suf.Method != nil {
				v.tok(ctx, suf.Method.Colon)
				v.tok(ctx, suf.Method.Name)
			}
			walkFunctionArg(v, ctx, suf.Args)
		}
	}
}

// walkNode dispatches a single node (and, recursively, its children) by
// concrete type. It is the core of Walk, factored out so Walk's top-level
// switch only needs to special-case Cst/Block.
func walkNode(v *Visitor, ctx any, n Node) {
	switch n := n.(type) {
	case *Block:
		walkBlock(v, ctx, n)

	// Types.
	case *NilType:
		v.enter(ctx, n)
		v.tok(ctx, n.Keyword)
	case *BooleanType:
		v.enter(ctx, n)
		v.tok(ctx, n.Value)
	case *StringType:
		v.enter(ctx, n)
		v.tok(ctx, n.Value)
	case *ReferenceType:
		v.enter(ctx, n)
		if n.Prefix != nil {
			v.tok(ctx, n.Prefix.Name)
			v.tok(ctx, n.Prefix.Dot)
		}
		v.tok(ctx, n.Name)
		walkGenericTypeArgs(v, ctx, n.Generics)
	case *TypeofType:
		v.enter(ctx, n)
		v.tok(ctx, n.Keyword)
		v.tok(ctx, n.Parens.Open)
		walkNode(v, ctx, n.Expr)
		v.tok(ctx, n.Parens.Close)
	case *ArrayType:
		v.enter(ctx, n)
		v.tok(ctx, n.Braces.Open)
		walkNode(v, ctx, n.Element)
		v.tok(ctx, n.Braces.Close)
	case *TableType:
		v.enter(ctx, n)
		v.tok(ctx, n.Braces.Open)
		walkPunctuated(v, ctx, n.Fields)
		v.tok(ctx, n.Braces.Close)
	case *FunctionType:
		v.enter(ctx, n)
		walkGenericDecl(v, ctx, n.Generics)
		v.tok(ctx, n.Parens.Open)
		for _, it := range n.Params {
			p := it.Node
			if p.Name != nil {
				v.tok(ctx, *p.Name)
			}
			if p.Colon != nil {
				v.tok(ctx, *p.Colon)
			}
			walkNode(v, ctx, p.Type)
			if it.Sep != nil {
				v.tok(ctx, *it.Sep)
			}
		}
		if n.Varargs != nil {
			if n.VarargsComma != nil {
				v.tok(ctx, *n.VarargsComma)
			}
			walkNode(v, ctx, n.Varargs)
		}
		v.tok(ctx, n.Parens.Close)
		v.tok(ctx, n.Arrow)
		walkReturnAnnotation(v, ctx, &n.Ret)
	case *ParenType:
		v.enter(ctx, n)
		v.tok(ctx, n.Parens.Open)
		walkNode(v, ctx, n.Inner)
		v.tok(ctx, n.Parens.Close)
	case *OptionalType:
		v.enter(ctx, n)
		walkNode(v, ctx, n.Inner)
		v.tok(ctx, n.Question)
	case *UnionType:
		v.enter(ctx, n)
		if n.Leading != nil {
			v.tok(ctx, *n.Leading)
		}
		for i, t := range n.Types {
			walkNode(v, ctx, t)
			if i < len(n.Pipes) {
				v.tok(ctx, n.Pipes[i])
			}
		}
	case *IntersectionType:
		v.enter(ctx, n)
		if n.Leading != nil {
			v.tok(ctx, *n.Leading)
		}
		for i, t := range n.Types {
			walkNode(v, ctx, t)
			if i < len(n.Amps) {
				v.tok(ctx, n.Amps[i])
			}
		}
	case *GenericTypeArgs:
		walkGenericTypeArgs(v, ctx, n)

	// Table type fields.
	case *NamePropField:
		v.enter(ctx, n)
		if n.Access != nil {
			v.tok(ctx, *n.Access)
		}
		v.tok(ctx, n.Name)
		v.tok(ctx, n.Colon)
		walkNode(v, ctx, n.Type)
	case *StringPropField:
		v.enter(ctx, n)
		if n.Access != nil {
			v.tok(ctx, *n.Access)
		}
		v.tok(ctx, n.Brackets.Open)
		v.tok(ctx, n.Key)
		v.tok(ctx, n.Brackets.Close)
		v.tok(ctx, n.Colon)
		walkNode(v, ctx, n.Type)
	case *IndexerField:
		v.enter(ctx, n)
		if n.Access != nil {
			v.tok(ctx, *n.Access)
		}
		v.tok(ctx, n.Brackets.Open)
		walkNode(v, ctx, n.Key)
		v.tok(ctx, n.Brackets.Close)
		v.tok(ctx, n.Colon)
		walkNode(v, ctx, n.Type)

	// Type packs.
	case *VariadicTypePack:
		v.enter(ctx, n)
		v.tok(ctx, n.Dots)
		walkNode(v, ctx, n.Type)
	case *GenericTypePack:
		v.enter(ctx, n)
		v.tok(ctx, n.Name)
		v.tok(ctx, n.Dots)
	case *ListTypePack:
		v.enter(ctx, n)
		for i, t := range n.Types {
			walkNode(v, ctx, t)
			if i < len(n.Commas) {
				v.tok(ctx, n.Commas[i])
			}
		}
		if n.Variadic != nil {
			walkNode(v, ctx, n.Variadic)
		}

	// Generics.
	case *GenericDecl:
		walkGenericDecl(v, ctx, n)
	case *GenericDeclParam:
		v.enter(ctx, n)
		v.tok(ctx, n.Name)
		if n.Dots != nil {
			v.tok(ctx, *n.Dots)
		}
		if n.Eq != nil {
			v.tok(ctx, *n.Eq)
		}
		if n.DefaultType != nil {
			walkNode(v, ctx, n.DefaultType)
		} else if n.DefaultPack != nil {
			walkNode(v, ctx, n.DefaultPack)
		}

	// Expressions.
	case *NilExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.Keyword)
	case *BooleanExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.Value)
	case *NumberExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.Value)
	case *StringExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.Value)
	case *VarargExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.Dots)
	case *InterpStringExpr:
		v.enter(ctx, n)
		for i, seg := range n.Segments {
			v.tok(ctx, seg)
			if i < len(n.Exprs) {
				walkNode(v, ctx, n.Exprs[i])
			}
		}
	case *TableExpr:
		v.enter(ctx, n)
		walkNode(v, ctx, n.Table)
	case *FunctionExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.Keyword)
		walkFunctionBody(v, ctx, n.Body)
	case *IfElseExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.If)
		walkNode(v, ctx, n.Cond)
		v.tok(ctx, n.Then)
		walkNode(v, ctx, n.Consequent)
		for _, c := range n.ElseIfs {
			v.tok(ctx, c.Elseif)
			walkNode(v, ctx, c.Cond)
			v.tok(ctx, c.Then)
			walkNode(v, ctx, c.Value)
		}
		v.tok(ctx, n.Else)
		walkNode(v, ctx, n.Alternate)
	case *VarExpr:
		v.enter(ctx, n)
		walkVar(v, ctx, n.Var)
	case *AssertionExpr:
		v.enter(ctx, n)
		walkNode(v, ctx, n.Expr)
		v.tok(ctx, n.ColonColon)
		walkNode(v, ctx, n.Type)
	case *UnaryExpr:
		v.enter(ctx, n)
		v.tok(ctx, n.OpToken)
		walkNode(v, ctx, n.Operand)
	case *BinaryExpr:
		v.enter(ctx, n)
		walkNode(v, ctx, n.Left)
		v.tok(ctx, n.OpToken)
		walkNode(v, ctx, n.Right)

	// Table constructor.
	case *TableConstructor:
		v.enter(ctx, n)
		v.tok(ctx, n.Braces.Open)
		walkPunctuated(v, ctx, n.Fields)
		v.tok(ctx, n.Braces.Close)
	case *NameKeyField:
		v.enter(ctx, n)
		v.tok(ctx, n.Name)
		v.tok(ctx, n.Eq)
		walkNode(v, ctx, n.Value)
	case *ExprKeyField:
		v.enter(ctx, n)
		v.tok(ctx, n.Brackets.Open)
		walkNode(v, ctx, n.Key)
		v.tok(ctx, n.Brackets.Close)
		v.tok(ctx, n.Eq)
		walkNode(v, ctx, n.Value)
	case *NoKeyField:
		v.enter(ctx, n)
		walkNode(v, ctx, n.Value)

	// Function args.
	case *ArgsPack, *ArgsTable, *ArgsString:
		walkFunctionArg(v, ctx, n.(FunctionArg))

	// Vars.
	case *Var:
		walkVar(v, ctx, n)

	// Function bodies and related.
	case *FunctionBody:
		walkFunctionBody(v, ctx, n)
	case *Binding:
		v.enter(ctx, n)
		v.tok(ctx, n.Name)
		if n.Colon != nil {
			v.tok(ctx, *n.Colon)
		}
		if n.Type != nil {
			walkNode(v, ctx, n.Type)
		}
	case *Attribute:
		v.enter(ctx, n)
		v.tok(ctx, n.At)
		v.tok(ctx, n.Name)
	case *FunctionName:
		v.enter(ctx, n)
		v.tok(ctx, n.Name)
		for _, d := range n.Dotted {
			v.enter(ctx, &d)
			v.tok(ctx, d.Dot)
			v.tok(ctx, d.Name)
		}
		if n.Method != nil {
			v.enter(ctx, n.Method)
			v.tok(ctx, n.Method.Colon)
			v.tok(ctx, n.Method.Name)
		}

	// Statements.
	case *AssignStat:
		v.enter(ctx, n)
		walkPunctuated(v, ctx, n.Targets)
		v.tok(ctx, n.Eq)
		walkPunctuated(v, ctx, n.Values)
	case *CompoundAssignStat:
		v.enter(ctx, n)
		walkVar(v, ctx, n.Target)
		v.tok(ctx, n.OpToken)
		walkNode(v, ctx, n.Value)
	case *CallStat:
		v.enter(ctx, n)
		walkVar(v, ctx, n.Call)
	case *DoStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Do)
		walkBlock(v, ctx, n.Block)
		v.tok(ctx, n.End)
	case *WhileStat:
		v.enter(ctx, n)
		v.tok(ctx, n.While)
		walkNode(v, ctx, n.Cond)
		v.tok(ctx, n.Do)
		walkBlock(v, ctx, n.Block)
		v.tok(ctx, n.End)
	case *RepeatStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Repeat)
		walkBlock(v, ctx, n.Block)
		v.tok(ctx, n.Until)
		walkNode(v, ctx, n.Cond)
	case *IfStat:
		v.enter(ctx, n)
		v.tok(ctx, n.If)
		walkNode(v, ctx, n.Cond)
		v.tok(ctx, n.Then)
		walkBlock(v, ctx, n.Block)
		for _, c := range n.ElseIfs {
			walkNode(v, ctx, c)
		}
		if n.Else != nil {
			v.tok(ctx, *n.Else)
			walkBlock(v, ctx, n.ElseBlock)
		}
		v.tok(ctx, n.End)
	case *ElseIfClause:
		v.enter(ctx, n)
		v.tok(ctx, n.Elseif)
		walkNode(v, ctx, n.Cond)
		v.tok(ctx, n.Then)
		walkBlock(v, ctx, n.Block)
	case *NumericForStat:
		v.enter(ctx, n)
		v.tok(ctx, n.For)
		v.tok(ctx, n.Name)
		if n.Colon != nil {
			v.tok(ctx, *n.Colon)
			walkNode(v, ctx, n.Type)
		}
		v.tok(ctx, n.Eq)
		walkNode(v, ctx, n.Start)
		v.tok(ctx, n.Comma1)
		walkNode(v, ctx, n.Stop)
		if n.Comma2 != nil {
			v.tok(ctx, *n.Comma2)
			walkNode(v, ctx, n.Step)
		}
		v.tok(ctx, n.Do)
		walkBlock(v, ctx, n.Block)
		v.tok(ctx, n.End)
	case *ForInStat:
		v.enter(ctx, n)
		v.tok(ctx, n.For)
		walkPunctuated(v, ctx, n.Names)
		v.tok(ctx, n.In)
		walkPunctuated(v, ctx, n.Exprs)
		v.tok(ctx, n.Do)
		walkBlock(v, ctx, n.Block)
		v.tok(ctx, n.End)
	case *FunctionStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Function)
		walkNode(v, ctx, n.Name)
		walkFunctionBody(v, ctx, n.Body)
	case *LocalFunctionStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Local)
		v.tok(ctx, n.Function)
		v.tok(ctx, n.Name)
		walkFunctionBody(v, ctx, n.Body)
	case *LocalVariableStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Local)
		walkPunctuated(v, ctx, n.Names)
		if n.Eq != nil {
			v.tok(ctx, *n.Eq)
			walkPunctuated(v, ctx, n.Values)
		}
	case *TypeStat:
		v.enter(ctx, n)
		if n.Export != nil {
			v.tok(ctx, *n.Export)
		}
		v.tok(ctx, n.Type)
		v.tok(ctx, n.Name)
		walkGenericDecl(v, ctx, n.Generics)
		v.tok(ctx, n.Eq)
		walkNode(v, ctx, n.Value)

	// Last statements.
	case *ReturnStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Return)
		walkPunctuated(v, ctx, n.Values)
	case *BreakStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Keyword)
	case *ContinueStat:
		v.enter(ctx, n)
		v.tok(ctx, n.Keyword)
	}
}
