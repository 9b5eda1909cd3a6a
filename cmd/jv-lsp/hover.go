package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/jv/ir"
)

// Hover describes the top level value of the document.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	hoverText := buildHoverText(doc.value)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(v *ir.Value) string {
	parts := []string{fmt.Sprintf("**Type:** %s", v.Type())}
	if info := getValueInfo(v); info != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", info))
	}
	return strings.Join(parts, "\n\n")
}

func getValueInfo(v *ir.Value) string {
	switch v.Type() {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		return fmt.Sprintf("`%t`", v.AsBool())
	case ir.IntegerType:
		return fmt.Sprintf("`%d`", v.AsInt())
	case ir.FloatType:
		return fmt.Sprintf("`%g`", v.AsFloat())
	case ir.StringType:
		val := []rune(v.AsString())
		if len(val) > 50 {
			return fmt.Sprintf("`%s...`", string(val[:50]))
		}
		return fmt.Sprintf("`%s`", string(val))
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", v.Size())
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", v.Size())
	}
	return ""
}
