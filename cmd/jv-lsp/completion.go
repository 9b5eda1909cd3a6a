package main

import (
	"context"

	"go.lsp.dev/protocol"
)

var keywords = []string{"true", "false", "null"}

// Completion offers the JSON literals.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	if s.docs.get(string(params.TextDocument.URI)) == nil {
		return nil, nil
	}
	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, k := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: k,
			Kind:  protocol.CompletionItemKindKeyword,
		})
	}
	return &protocol.CompletionList{Items: items}, nil
}
