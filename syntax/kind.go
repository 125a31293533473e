package syntax

// NodeKind tags every concrete CST node type, for use as a Visitor dispatch
// key and in debug output. It plays the role syntax.SyntaxKind plays in the
// teacher (boergens/gotypst) — but here it tags one of many concrete struct
// types instead of a single uniform tree node.
type NodeKind uint8

const (
	KindCst NodeKind = iota
	KindBlock

	// Types.
	KindNilType
	KindBooleanType
	KindStringType
	KindReferenceType
	KindTypeofType
	KindArrayType
	KindTableType
	KindFunctionType
	KindParenType
	KindOptionalType
	KindUnionType
	KindIntersectionType
	KindGenericTypeArgs

	// Table type fields.
	KindNamePropField
	KindStringPropField
	KindIndexerField

	// Type packs.
	KindVariadicTypePack
	KindGenericTypePack
	KindListTypePack

	// Generics.
	KindGenericDecl
	KindGenericDeclParam

	// Expressions.
	KindNilExpr
	KindBooleanExpr
	KindNumberExpr
	KindStringExpr
	KindVarargExpr
	KindInterpStringExpr
	KindTableExpr
	KindFunctionExpr
	KindIfElseExpr
	KindVarExpr
	KindAssertionExpr
	KindUnaryExpr
	KindBinaryExpr

	// Table constructor (expression-side) and its fields.
	KindTableConstructor
	KindNameKeyField
	KindExprKeyField
	KindNoKeyField

	// Function call arguments.
	KindArgsPack
	KindArgsTable
	KindArgsString

	// Vars.
	KindNameVarRoot
	KindParenVarRoot
	KindNameIndexSuffix
	KindExprIndexSuffix
	KindCallSuffix
	KindVar

	// Function bodies and related.
	KindFunctionBody
	KindBinding
	KindAttribute
	KindFunctionName
	KindMethodName

	// Statements.
	KindAssignStat
	KindCompoundAssignStat
	KindCallStat
	KindDoStat
	KindWhileStat
	KindRepeatStat
	KindIfStat
	KindElseIfClause
	KindNumericForStat
	KindForInStat
	KindFunctionStat
	KindLocalFunctionStat
	KindLocalVariableStat
	KindTypeStat

	// Last statements.
	KindReturnStat
	KindBreakStat
	KindContinueStat
)

var nodeKindNames = [...]string{
	"cst", "block",
	"nil type", "boolean type", "string type", "reference type", "typeof type",
	"array type", "table type", "function type", "parenthesized type",
	"optional type", "union type", "intersection type", "generic type args",
	"name property field", "string property field", "indexer field",
	"variadic type pack", "generic type pack", "list type pack",
	"generic declaration", "generic declaration parameter",
	"nil expr", "boolean expr", "number expr", "string expr", "vararg expr",
	"interpolated string expr", "table expr", "function expr", "if-else expr",
	"var expr", "assertion expr", "unary expr", "binary expr",
	"table constructor", "name-key field", "expr-key field", "no-key field",
	"call args (pack)", "call args (table)", "call args (string)",
	"name var root", "paren var root", "name-index suffix",
	"expr-index suffix", "call suffix", "var",
	"function body", "binding", "attribute", "function name", "method name",
	"assign stat", "compound-assign stat", "call stat", "do stat",
	"while stat", "repeat stat", "if stat", "elseif clause",
	"numeric-for stat", "for-in stat", "function stat",
	"local-function stat", "local-variable stat", "type stat",
	"return stat", "break stat", "continue stat",
}

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "unknown node"
}
