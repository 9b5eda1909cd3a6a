package libdiff

import (
	"slices"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
)

// Change records that the value at Path differs. From is nil for an
// insertion and To is nil for a deletion.
type Change struct {
	Path     string
	From, To *ir.Value
}

// Changes returns the structural differences between from and to, in
// path order. Objects are compared by key and arrays by aligning their
// elements.
func Changes(from, to *ir.Value) []Change {
	return changes(nil, "$", from, to)
}

func changes(dst []Change, path string, from, to *ir.Value) []Change {
	if from.Type() != to.Type() {
		return append(dst, Change{Path: path, From: from, To: to})
	}
	switch from.Type() {
	case ir.ObjectType:
		return objectChanges(dst, path, from, to)
	case ir.ArrayType:
		return arrayChanges(dst, path, from, to)
	}
	if !ir.Equal(from, to) {
		dst = append(dst, Change{Path: path, From: from, To: to})
	}
	return dst
}

func objectChanges(dst []Change, path string, from, to *ir.Value) []Change {
	keys := append(from.Keys(), to.Keys()...)
	slices.Sort(keys)
	for _, k := range slices.Compact(keys) {
		kp := path + "." + ir.PathField(k)
		switch {
		case !to.Has(k):
			dst = append(dst, Change{Path: kp, From: from.Field(k)})
		case !from.Has(k):
			dst = append(dst, Change{Path: kp, To: to.Field(k)})
		default:
			dst = changes(dst, kp, from.Field(k), to.Field(k))
		}
	}
	return dst
}

// arrays are aligned by diffing a summary rune per element, so that an
// insertion in the middle does not report every later element as changed.
// Aligned elements of the same kind are compared recursively; a deletion
// directly followed by an insertion is reported as a replacement.
func arrayChanges(dst []Change, path string, from, to *ir.Value) []Change {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var pendingDel *Change
	flush := func() {
		if pendingDel != nil {
			dst = append(dst, *pendingDel)
			pendingDel = nil
		}
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				flush()
				pendingDel = &Change{Path: indexPath(path, fi), From: from.Get(fi)}
				fi++
			}
		case diffpatch.DiffEqual:
			flush()
			for range n {
				dst = changes(dst, indexPath(path, fi), from.Get(fi), to.Get(ti))
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if pendingDel != nil {
					pendingDel.To = to.Get(ti)
					flush()
				} else {
					dst = append(dst, Change{Path: indexPath(path, ti), To: to.Get(ti)})
				}
				ti++
			}
		}
	}
	flush()
	return dst
}

func summaries(m map[string]rune, v *ir.Value) []rune {
	rs := make([]rune, 0, v.Size())
	for e := range v.Values() {
		sum := summaryStr(e)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

// containers summarize to their type alone so that they align and get
// compared element by element.
func summaryStr(v *ir.Value) string {
	switch v.Type() {
	case ir.ObjectType, ir.ArrayType:
		return v.Type().String()
	default:
		return v.Type().String() + "-" + encode.Encode(v, encode.Reencode(true))
	}
}

func indexPath(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}
