package eval

import (
	"errors"

	"github.com/signadot/go-syrup/ir"

	"github.com/expr-lang/expr"
)

var ErrNoValue = errors.New("expression produced no value")

// Env holds additional variables visible to an expression.
type Env map[string]any

// DocVar is the name the document is bound to.
const DocVar = "v"

// Eval evaluates src against doc and returns the result as a node.
func Eval(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	vars := make(map[string]any, len(env)+1)
	for k, v := range env {
		vars[k] = v
	}
	vars[DocVar] = exprValue(ir.ToAny(doc))
	opts := append([]expr.Option{expr.Env(vars)}, exprOpts(doc)...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, vars)
	if err != nil {
		return nil, err
	}
	return fromExpr(res)
}

func fromExpr(res any) (*ir.Node, error) {
	switch x := res.(type) {
	case nil:
		return nil, ErrNoValue
	case *ir.Node:
		if x == nil {
			return nil, ErrNoValue
		}
		return x.Clone(), nil
	case []*ir.Node:
		vs := make([]*ir.Node, len(x))
		for i, y := range x {
			vs[i] = y.Clone()
		}
		return ir.FromSlice(vs), nil
	default:
		return ir.FromAny(res)
	}
}

// exprValue converts the result of ir.ToAny to the forms described in
// the package documentation.
func exprValue(v any) any {
	switch x := v.(type) {
	case int64:
		return int(x)
	case ir.Symbol:
		return string(x)
	case ir.Set:
		return exprValues(x)
	case []any:
		return exprValues(x)
	case ir.Record:
		return map[string]any{
			"label":  exprValue(x.Label),
			"fields": exprValues(x.Fields),
		}
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = exprValue(e)
		}
		return res
	case []ir.DictEntry:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = map[string]any{
				"key":   exprValue(e.Key),
				"value": exprValue(e.Value),
			}
		}
		return res
	default:
		return v
	}
}

func exprValues(xs []any) []any {
	res := make([]any, len(xs))
	for i, x := range xs {
		res[i] = exprValue(x)
	}
	return res
}
