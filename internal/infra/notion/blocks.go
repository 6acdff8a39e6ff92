package notion

import "github.com/arun-karra/release-notes/internal/domain"

// Wire types for the Notion block API. The domain BlockType values are the
// Notion type names, so serialization is a direct mapping.

type wireLink struct {
	URL string `json:"url"`
}

type wireText struct {
	Content string    `json:"content"`
	Link    *wireLink `json:"link,omitempty"`
}

type wireAnnotations struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
}

type wireRichText struct {
	Type        string           `json:"type"`
	Text        wireText         `json:"text"`
	Annotations *wireAnnotations `json:"annotations,omitempty"`
}

// wireBlock is built as a map because the block content sits under a key
// named after the block type ("heading_2": {...}, "paragraph": {...}).
type wireBlock map[string]any

// spanToWire converts one rich-text span.
func spanToWire(s domain.RichTextSpan) wireRichText {
	rt := wireRichText{
		Type: "text",
		Text: wireText{Content: s.Content},
	}
	if s.Link != "" {
		rt.Text.Link = &wireLink{URL: s.Link}
	}
	if s.Bold || s.Italic {
		rt.Annotations = &wireAnnotations{Bold: s.Bold, Italic: s.Italic}
	}
	return rt
}

// blocksToWire converts domain blocks to their API representation.
func blocksToWire(blocks []domain.Block) []wireBlock {
	out := make([]wireBlock, 0, len(blocks))
	for _, b := range blocks {
		spans := make([]wireRichText, 0, len(b.Text))
		for _, s := range b.Text {
			spans = append(spans, spanToWire(s))
		}
		out = append(out, wireBlock{
			"object":       "block",
			"type":         string(b.Type),
			string(b.Type): map[string]any{"rich_text": spans},
		})
	}
	return out
}
