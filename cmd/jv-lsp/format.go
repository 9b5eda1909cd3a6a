package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/format"
	"github.com/signadot/jv/ir"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value.Type() == ir.InvalidType {
		return nil, nil
	}
	opts := []encode.EncodeOption{
		encode.EncodeFormat(format.FromPath(doc.uri)),
		encode.Reencode(true),
		encode.Pretty(true),
	}
	if params.Options.TabSize > 0 {
		opts = append(opts, encode.Indent(int(params.Options.TabSize)))
	}
	// LF line endings in edits
	formatted := strings.ReplaceAll(encode.Encode(doc.value, opts...), "\r\n", "\n") + "\n"
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range:   documentRange(doc.content),
			NewText: formatted,
		},
	}, nil
}
