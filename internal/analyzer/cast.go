package analyzer

import (
	"fmt"

	"github.com/funvibe/cs2dec/internal/ast"
	"github.com/funvibe/cs2dec/internal/typesystem"
)

// Cast converts expr to an expression of the required type.
// It returns expr itself when no conversion is needed, a wrapper or
// re-typed literal when one of the coercion rules applies, and an error
// otherwise. The rules are checked in order; the first match wins.
func Cast(expr ast.Expression, required typesystem.Type) (ast.Expression, error) {
	from := expr.Type()
	if typesystem.Equal(from, required) {
		return expr, nil
	}
	if _, ok := expr.(*ast.PlaceholderValue); ok {
		return nil, NewPlaceholderCastError(required)
	}

	if typesystem.Equal(required, typesystem.Unknown) {
		return expr, nil
	}

	switch required {
	case typesystem.Location:
		return &ast.NewLocation{Expression: expr}, nil
	case typesystem.WidgetPtr:
		return &ast.NewWidgetPointer{Expression: expr}, nil
	case typesystem.Color:
		// a color read through a widget pointer refers to the packed int itself
		if wp, ok := expr.(*ast.NewWidgetPointer); ok {
			return &ast.NewColor{Expression: wp.Expression}, nil
		}
		return &ast.NewColor{Expression: expr}, nil
	}

	lit, isIntLit := expr.(*ast.IntLiteral)
	if isIntLit {
		switch required {
		case typesystem.Boolean:
			// -1 is a null boolean, not false
			if lit.Value == -1 {
				return &ast.NullableIntLiteral{Value: -1}, nil
			}
			return &ast.BooleanLiteral{Value: lit.Value != 0}, nil
		case typesystem.Char:
			return &ast.CharLiteral{Value: rune(uint16(lit.Value))}, nil
		}
	}

	if (from == typesystem.Boolean || from == typesystem.Color) && required == typesystem.Int {
		return expr, nil
	}

	// int-shaped handle types use -1 as their null value
	if isIntLit && required.Footprint() == typesystem.Int.Footprint() {
		return &ast.NullableIntLiteral{Value: lit.Value}, nil
	}

	if typesystem.Compatible(required, from) {
		return &ast.CastExpression{Target: required, Expression: expr}, nil
	}

	return nil, NewIncompatibleCastError(from, required)
}

// CastAll casts each argument to the type at the same position, as done
// for call sites whose signature is known.
func CastAll(args []ast.Expression, types []typesystem.Type) ([]ast.Expression, error) {
	if len(args) != len(types) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(types), len(args))
	}
	out := make([]ast.Expression, len(args))
	for i, arg := range args {
		cast, err := Cast(arg, types[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = cast
	}
	return out, nil
}
