package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ToAny converts v to plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any. Invalid values convert to nil.
func (v *Value) ToAny() any {
	switch v.typ {
	case BoolType:
		return v.b
	case IntegerType:
		return v.i
	case FloatType:
		return v.f
	case StringType:
		return v.s
	case ArrayType:
		res := make([]any, len(v.arr))
		for i, e := range v.arr {
			res[i] = e.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			res[k] = e.ToAny()
		}
		return res
	default:
		return nil
	}
}

// FromAny converts a Go value built from the kinds produced by ToAny, or by
// encoding/json and YAML decoders, into a Value.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrUnsupported, t)
		}
		return FromFloat(f), nil
	case []any:
		vs := make([]*Value, len(t))
		for i, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return AdoptSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Value, len(t))
		for k, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = ev
		}
		return AdoptMap(m), nil
	case map[any]any:
		m := make(map[string]*Value, len(t))
		for k, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = ev
		}
		return AdoptMap(m), nil
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return FromFloat(float64(u)), nil
		}
		return FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
}
