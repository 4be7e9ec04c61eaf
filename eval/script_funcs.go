package eval

import (
	"os"

	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/parse"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.Root().GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return exprValue(ir.ToAny(res)), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.Root().ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, item := range yRes {
				res[i] = exprValue(ir.ToAny(item))
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("typeof", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.Root().GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return "", nil
			}
			return res.Type.String(), nil
		},
			new(func(string) string)),
		expr.Function("decode", func(params ...any) (any, error) {
			node, _, err := parse.DecodeString(params[0].(string))
			if err != nil {
				return nil, err
			}
			return node, nil
		},
			new(func(string) *ir.Node)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
