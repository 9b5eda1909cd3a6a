package ir

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path returns the location of v within its root, such as $.a[0] or
// $.'is,live'.
func (v *Value) Path() string {
	if v.parent == nil {
		return "$"
	}
	switch v.parent.typ {
	case ObjectType:
		return v.parent.Path() + "." + PathField(v.field)
	case ArrayType:
		return v.parent.Path() + "[" + strconv.Itoa(slices.Index(v.parent.arr, v)) + "]"
	default:
		return "$"
	}
}

// PathField renders f as a path step, quoting it when needed.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[], ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Path is a parsed path expression. Each step selects one of an index, all
// indices, a field, or the whole subtree.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseStep(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseStep(s string, dst *Path) error {
	if len(s) == 0 {
		return nil
	}
	var rest string
	switch s[0] {
	case '.':
		if len(s) > 1 && s[1] == '.' {
			dst.Subtree = true
			rest = s[2:]
			if len(rest) != 0 && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, tail, err := parseField(s[1:])
		if err != nil {
			return err
		}
		dst.Field = &field
		rest = tail
	case '[':
		i := strings.IndexByte(s, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		if s[1:i] == "*" {
			dst.IndexAll = true
		} else {
			n, err := strconv.ParseUint(s[1:i], 10, 63)
			if err != nil {
				return fmt.Errorf("bad index %q", s[1:i])
			}
			index := int(n)
			dst.Index = &index
		}
		rest = s[i+1:]
	default:
		return fmt.Errorf("expected '.' or '[' at %q", s)
	}
	if len(rest) == 0 {
		if dst.Subtree {
			dst.Next = &Path{}
		}
		return nil
	}
	dst.Next = &Path{}
	return parseStep(rest, dst.Next)
}

func parseField(s string) (field, rest string, err error) {
	if len(s) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if s[0] != '\'' {
		i := strings.IndexAny(s, ".[")
		if i == -1 {
			return s, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return s[:i], s[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(s))
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), s[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// GetPath returns the value at path, which may not contain wildcards. The
// result is nil with a nil error when a field along the way is absent.
func (v *Value) GetPath(path string) (*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := v
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return nil, fmt.Errorf("%w: [*] in get", ErrPath)
		case x.Subtree:
			return nil, fmt.Errorf("%w: .. in get", ErrPath)
		case x.Index != nil:
			if res.typ != ArrayType {
				return nil, fmt.Errorf("%w: expected Array at %s, got %s", ErrPath, res.Path(), res.typ)
			}
			if *x.Index >= len(res.arr) {
				return nil, fmt.Errorf("%w: index %d out of bounds at %s (size %d)", ErrPath, *x.Index, res.Path(), len(res.arr))
			}
			res = res.arr[*x.Index]
		case x.Field != nil:
			if res.typ != ObjectType {
				return nil, fmt.Errorf("%w: expected Object at %s, got %s", ErrPath, res.Path(), res.typ)
			}
			e, ok := res.obj[*x.Field]
			if !ok {
				return nil, nil
			}
			res = e
		}
	}
	return res, nil
}

// ListPath appends to dst every value matched by path and returns the
// extended slice. Missing fields and indices match nothing.
func (v *Value) ListPath(dst []*Value, path string) ([]*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return v.listPath(dst, p), nil
}

func (v *Value) listPath(dst []*Value, p *Path) []*Value {
	if p == nil {
		return append(dst, v)
	}
	if p.Subtree {
		_ = v.Visit(func(x *Value, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = x.listPath(dst, p.Next)
			return true, nil
		})
		return dst
	}
	switch {
	case p.Field != nil:
		if e, ok := v.obj[*p.Field]; ok && v.typ == ObjectType {
			return e.listPath(dst, p.Next)
		}
	case p.Index != nil:
		if v.typ == ArrayType && *p.Index < len(v.arr) {
			return v.arr[*p.Index].listPath(dst, p.Next)
		}
	case p.IndexAll:
		switch v.typ {
		case ArrayType:
			for _, e := range v.arr {
				dst = e.listPath(dst, p.Next)
			}
		case ObjectType:
			for _, e := range v.Entries() {
				dst = e.listPath(dst, p.Next)
			}
		}
	default:
		return v.listPath(dst, p.Next)
	}
	return dst
}
