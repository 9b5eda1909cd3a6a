package eval

import (
	"fmt"
	"os"
	"reflect"

	"github.com/expr-lang/expr"

	"github.com/signadot/jv/ir"
)

func exprOpts(node *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return node.Path(), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := node.Root().GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return res.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			vs, err := node.Root().ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(vs))
			for i, v := range vs {
				res[i] = v.ToAny()
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("keys", func(params ...any) (any, error) {
			v, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			if v.Type() != ir.ObjectType {
				return nil, fmt.Errorf("keys of %s", v.Type())
			}
			ks := v.Keys()
			res := make([]any, len(ks))
			for i, k := range ks {
				res[i] = k
			}
			return res, nil
		},
			new(func(any) []any)),
		expr.Function("size", func(params ...any) (any, error) {
			switch x := params[0].(type) {
			case string:
				return len(x), nil
			case nil:
				return 0, nil
			}
			rv := reflect.ValueOf(params[0])
			switch rv.Kind() {
			case reflect.Slice, reflect.Map, reflect.Array:
				return rv.Len(), nil
			}
			return 0, nil
		},
			new(func(any) int)),
		expr.Function("typeOf", func(params ...any) (any, error) {
			v, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return v.Type().String(), nil
		},
			new(func(any) string)),
	}
}
