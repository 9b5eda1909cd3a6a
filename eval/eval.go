package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/ir"
)

type Env map[string]any

// Eval evaluates expression with doc bound to the native form of doc.
func Eval(expression string, doc *ir.Value) (*ir.Value, error) {
	return EvalEnv(expression, doc, nil)
}

// EvalEnv is like Eval with additional bindings. The doc binding always
// refers to doc.
func EvalEnv(expression string, doc *ir.Value, env Env) (*ir.Value, error) {
	x, err := run(expression, doc, env)
	if err != nil {
		return nil, err
	}
	return toValue(x)
}

func run(expression string, node *ir.Value, env Env) (any, error) {
	full := make(Env, len(env)+1)
	for k, v := range env {
		full[k] = v
	}
	full["doc"] = node.Root().ToAny()
	program, err := expr.Compile(expression, exprOpts(node)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", expression, err)
	}
	res, err := vm.Run(program, map[string]any(full))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q at %s gave:", expression, node.Path())
		debug.LogAny(res)
	}
	return res, nil
}

func toValue(x any) (*ir.Value, error) {
	switch t := x.(type) {
	case []string:
		vs := make([]*ir.Value, len(t))
		for i, s := range t {
			vs[i] = ir.FromString(s)
		}
		return ir.AdoptSlice(vs), nil
	case []*ir.Value:
		return ir.FromSlice(t), nil
	}
	v, err := ir.FromAny(x)
	if err != nil {
		return nil, fmt.Errorf("could not convert result: %w", err)
	}
	return v, nil
}
