package submission

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
	"golang.org/x/text/cases"
)

// Filter is a compiled AIP-160 filter expression. The zero Filter matches
// every record.
type Filter struct {
	source string
	match  predicate
}

type predicate func(Submission) bool

// ParseFilter parses and type-checks an AIP-160 filter over FieldNames.
//
// Supported: AND, OR, NOT, =, !=, <, <=, >, >= and the ":" has operator
// (case-insensitive substring). created_at compares against
// timestamp("RFC3339").
func ParseFilter(source string) (Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Filter{}, nil
	}
	decls, err := filterDeclarations()
	if err != nil {
		return Filter{}, err
	}
	parsed, err := filtering.ParseFilterString(source, decls)
	if err != nil {
		return Filter{}, fmt.Errorf("%w: filter: %v", ErrInvalidQuery, err)
	}
	if parsed.CheckedExpr == nil || parsed.CheckedExpr.GetExpr() == nil {
		return Filter{}, nil
	}
	match, err := compileExpr(parsed.CheckedExpr.GetExpr())
	if err != nil {
		return Filter{}, fmt.Errorf("%w: filter: %v", ErrInvalidQuery, err)
	}
	return Filter{source: source, match: match}, nil
}

// String returns the source expression.
func (f Filter) String() string {
	return f.source
}

// Match reports whether record satisfies the filter.
func (f Filter) Match(record Submission) bool {
	if f.match == nil {
		return true
	}
	return f.match(record)
}

func filterDeclarations() (*filtering.Declarations, error) {
	opts := []filtering.DeclarationOption{
		filtering.DeclareStandardFunctions(),
		// Juxtaposed terms ("a = 1 b = 2") parse as FUZZY and are treated as AND.
		filtering.DeclareFunction(filtering.FunctionFuzzyAnd,
			filtering.NewFunctionOverload(filtering.FunctionFuzzyAnd+"_bool", filtering.TypeBool, filtering.TypeBool, filtering.TypeBool)),
	}
	for _, column := range Columns {
		if column.Key == KeyCreatedAt {
			opts = append(opts, filtering.DeclareIdent(column.Field, filtering.TypeTimestamp))
			continue
		}
		opts = append(opts, filtering.DeclareIdent(column.Field, filtering.TypeString))
	}
	return filtering.NewDeclarations(opts...)
}

func compileExpr(e *expr.Expr) (predicate, error) {
	call := e.GetCallExpr()
	if call == nil {
		return nil, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	switch call.GetFunction() {
	case filtering.FunctionAnd, filtering.FunctionFuzzyAnd:
		return compileJunction(call.GetArgs(), true)
	case filtering.FunctionOr:
		return compileJunction(call.GetArgs(), false)
	case filtering.FunctionNot:
		if len(call.GetArgs()) != 1 {
			return nil, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := compileExpr(call.GetArgs()[0])
		if err != nil {
			return nil, err
		}
		return func(s Submission) bool { return !inner(s) }, nil
	case "=", "!=", "<", "<=", ">", ">=", ":":
		return compileComparison(call.GetFunction(), call.GetArgs())
	default:
		return nil, fmt.Errorf("unsupported function: %s", call.GetFunction())
	}
}

func compileJunction(args []*expr.Expr, all bool) (predicate, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("logical operator requires at least 2 arguments")
	}
	parts := make([]predicate, 0, len(args))
	for _, arg := range args {
		part, err := compileExpr(arg)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return func(s Submission) bool {
		for _, part := range parts {
			if part(s) != all {
				return !all
			}
		}
		return all
	}, nil
}

func compileComparison(op string, args []*expr.Expr) (predicate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s requires 2 arguments", op)
	}
	ident := args[0].GetIdentExpr()
	if ident == nil {
		return nil, fmt.Errorf("left side of %s must be a field", op)
	}
	column, ok := columnByField[ident.GetName()]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", ident.GetName())
	}

	if column.Key == KeyCreatedAt {
		bound, err := timestampArg(args[1])
		if err != nil {
			return nil, err
		}
		if op == ":" {
			return nil, fmt.Errorf("operator : is not supported for %s", column.Field)
		}
		return func(s Submission) bool {
			if s.CreatedAt.IsZero() {
				return false
			}
			return compareOrdered(op, s.CreatedAt.Compare(bound))
		}, nil
	}

	want, err := stringArg(args[1])
	if err != nil {
		return nil, err
	}
	if op == ":" {
		fold := cases.Fold()
		needle := fold.String(want)
		return func(s Submission) bool {
			return strings.Contains(cases.Fold().String(column.value(s)), needle)
		}, nil
	}
	return func(s Submission) bool {
		return compareOrdered(op, strings.Compare(column.value(s), want))
	}, nil
}

func compareOrdered(op string, cmp int) bool {
	switch op {
	case "=":
		return cmp == 0
	case "!=":
		return cmp != 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	default:
		return false
	}
}

func stringArg(e *expr.Expr) (string, error) {
	constant := e.GetConstExpr()
	if constant == nil {
		return "", fmt.Errorf("expected a constant value, got %T", e.GetExprKind())
	}
	kind, ok := constant.GetConstantKind().(*expr.Constant_StringValue)
	if !ok {
		return "", fmt.Errorf("unsupported constant type: %T", constant.GetConstantKind())
	}
	return kind.StringValue, nil
}

// timestampArg accepts timestamp("...") or a bare RFC 3339 string.
func timestampArg(e *expr.Expr) (time.Time, error) {
	arg := e
	if call := e.GetCallExpr(); call != nil {
		if call.GetFunction() != filtering.FunctionTimestamp || len(call.GetArgs()) != 1 {
			return time.Time{}, fmt.Errorf("created_at must be compared with timestamp(\"...\")")
		}
		arg = call.GetArgs()[0]
	}
	raw, err := stringArg(arg)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format: %s", raw)
	}
	return parsed.UTC(), nil
}
