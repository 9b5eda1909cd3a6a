package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
)

// Expand returns a copy of v in which every string is expanded against env.
// A string of the form .[expr] is replaced by the value of expr; other
// strings have each $[expr] or .[expr] within them replaced by the text of
// the result. Object keys are left as they are.
func Expand(v *ir.Value, env Env) (*ir.Value, error) {
	return expand(v, env)
}

func expand(node *ir.Value, env Env) (*ir.Value, error) {
	switch node.Type() {
	case ir.ObjectType:
		m := make(map[string]*ir.Value, node.Size())
		for k, e := range node.Entries() {
			x, err := expand(e, env)
			if err != nil {
				return nil, err
			}
			m[k] = x
		}
		return ir.AdoptMap(m), nil
	case ir.ArrayType:
		vs := make([]*ir.Value, 0, node.Size())
		for e := range node.Values() {
			x, err := expand(e, env)
			if err != nil {
				return nil, err
			}
			vs = append(vs, x)
		}
		return ir.AdoptSlice(vs), nil
	case ir.StringType:
		s := node.AsString()
		if raw := GetRaw(s); raw != "" {
			x, err := run(raw, node, env)
			if err != nil {
				return nil, err
			}
			return toValue(x)
		}
		xs, err := expandString(s, node, env)
		if err != nil {
			return nil, err
		}
		return ir.FromString(xs), nil
	default:
		return node.Clone(), nil
	}
}

// GetRaw extracts expr from a string of the form .[expr], returning "" for
// any other string.
func GetRaw(v string) string {
	if !isRawEnvRef(v) {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

func isRawEnvRef(s string) bool {
	return strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]") && closes(s[2:]) == len(s)-3
}

// ExpandString expands $[...] and .[...] expressions in a string against
// env, with doc bound to null.
//
// Within expressions, brackets nest, so $[a[0]] evaluates a[0], and a
// backslash escapes the next character, so \] does not close the expression.
// An expression with no closing ] is kept as literal text.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, ir.Null(), env)
}

func expandString(v string, node *ir.Value, env Env) (string, error) {
	var out strings.Builder
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c != '$' && c != '.') || i+1 == len(v) || v[i+1] != '[' {
			out.WriteByte(c)
			continue
		}
		j := closes(v[i+2:])
		if j == -1 {
			out.WriteString(v[i:])
			break
		}
		key := strings.TrimSpace(unescape(v[i+2 : i+2+j]))
		x, err := run(key, node, env)
		if err != nil {
			return "", err
		}
		text, err := anyToText(x)
		if err != nil {
			return "", fmt.Errorf("could not encode evaluation results for %s: %w", key, err)
		}
		out.WriteString(text)
		i += 2 + j
	}
	return out.String(), nil
}

// closes returns the index of the unescaped ']' balancing a '[' opened just
// before s, or -1.
func closes(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func anyToText(x any) (string, error) {
	switch t := x.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	v, err := toValue(x)
	if err != nil {
		return "", err
	}
	return encode.Encode(v), nil
}
