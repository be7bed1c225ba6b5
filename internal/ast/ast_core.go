package ast

import "github.com/funvibe/cs2dec/internal/typesystem"

// Node is the base interface for all expression tree nodes.
type Node interface {
	Accept(v Visitor)
}

// Expression is a Node that produces a typed value.
type Expression interface {
	Node
	expressionNode()
	Type() typesystem.Type
}

// Visitor walks expression trees.
type Visitor interface {
	VisitIntLiteral(*IntLiteral)
	VisitLongLiteral(*LongLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitBooleanLiteral(*BooleanLiteral)
	VisitCharLiteral(*CharLiteral)
	VisitNullableIntLiteral(*NullableIntLiteral)
	VisitVariable(*Variable)
	VisitPlaceholderValue(*PlaceholderValue)
	VisitNewLocation(*NewLocation)
	VisitNewWidgetPointer(*NewWidgetPointer)
	VisitNewColor(*NewColor)
	VisitCastExpression(*CastExpression)
	VisitTupleExpression(*TupleExpression)
}

// Types returns the inferred types of exprs as typesystem.Typed values.
func Types(exprs []Expression) []typesystem.Typed {
	out := make([]typesystem.Typed, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}
