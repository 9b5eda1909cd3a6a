package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Diff is one line of a line diff.
type Diff struct {
	Op   Op
	Line string
}

// Lines diffs the encodings of from and to with one array element or
// object entry per line.
func Lines(from, to *ir.Value) []Diff {
	fromLines := encodedLines(from)
	toLines := encodedLines(to)
	m := map[string]rune{}
	fromRunes := mapLines(m, fromLines)
	toRunes := mapLines(m, toLines)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := make([]Diff, 0, max(len(fromLines), len(toLines)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, Diff{Op: Equal, Line: fromLines[fi]})
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Diff{Op: Delete, Line: fromLines[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Diff{Op: Insert, Line: toLines[ti]})
				ti++
			}
		}
	}
	return res
}

func encodedLines(v *ir.Value) []string {
	s := encode.Encode(v, encode.Reencode(true), encode.Pretty(true), encode.WrapThreshold(0), encode.Indent(2))
	return strings.Split(s, "\r\n")
}

func mapLines(m map[string]rune, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
		}
		rs[i] = r
	}
	return rs
}

// Changed reports whether diffs contains anything but equal lines.
func Changed(diffs []Diff) bool {
	for i := range diffs {
		if diffs[i].Op != Equal {
			return true
		}
	}
	return false
}

// Render writes diffs one per line, prefixed by their Op.
func Render(w io.Writer, diffs []Diff, colors bool) error {
	for i := range diffs {
		d := &diffs[i]
		ln := d.Op.String() + " " + d.Line
		if colors {
			switch d.Op {
			case Delete:
				ln = color.RedString("%s", ln)
			case Insert:
				ln = color.GreenString("%s", ln)
			}
		}
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}
