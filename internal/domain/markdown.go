package domain

import "strings"

// ToBlocks converts a markdown document into an ordered block sequence.
// Lines are trimmed, blank lines produce no block. Malformed markdown never
// fails: unmatched delimiters pass through as literal characters.
func ToBlocks(markdown string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		typ, rest := splitBlockPrefix(line)
		blocks = append(blocks, Block{Type: typ, Text: ParseRichText(rest)})
	}
	return blocks
}

// splitBlockPrefix determines the block type of a line and strips the matched
// prefix. Longer heading prefixes are tried first; numbered items take
// precedence over bullets.
func splitBlockPrefix(line string) (BlockType, string) {
	switch {
	case strings.HasPrefix(line, "### "):
		return BlockHeading3, line[4:]
	case strings.HasPrefix(line, "## "):
		return BlockHeading2, line[3:]
	case strings.HasPrefix(line, "# "):
		return BlockHeading1, line[2:]
	}
	if rest, ok := trimNumberedPrefix(line); ok {
		return BlockNumberedItem, rest
	}
	if strings.HasPrefix(line, "- ") {
		return BlockBulletItem, line[2:]
	}
	return BlockParagraph, line
}

// trimNumberedPrefix strips a "<digits>.<space>" prefix if present.
func trimNumberedPrefix(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' {
		return "", false
	}
	switch line[i+1] {
	case ' ', '\t':
		return line[i+2:], true
	}
	return "", false
}

// ParseRichText splits a line into rich-text spans. Parsing runs in strict
// precedence tiers: links first, then bold on the text outside links, then
// italic on the text outside bold. A consequence kept on purpose is that
// emphasis markers inside a link label stay literal; persisted documents
// depend on that. Zero-length runs produce no span.
func ParseRichText(s string) []RichTextSpan {
	var spans []RichTextSpan
	rest := s
	for {
		pre, text, url, post, ok := findLink(rest)
		if !ok {
			break
		}
		spans = append(spans, parseBold(pre)...)
		spans = append(spans, RichTextSpan{Content: text, Link: url})
		rest = post
	}
	return append(spans, parseBold(rest)...)
}

// parseBold extracts **bold** runs, delegating surrounding text to the italic
// tier.
func parseBold(s string) []RichTextSpan {
	var spans []RichTextSpan
	rest := s
	for {
		pre, text, post, ok := findBold(rest)
		if !ok {
			break
		}
		spans = append(spans, parseItalic(pre)...)
		spans = append(spans, RichTextSpan{Content: text, Bold: true})
		rest = post
	}
	return append(spans, parseItalic(rest)...)
}

// parseItalic extracts *italic* runs; everything else becomes plain spans.
func parseItalic(s string) []RichTextSpan {
	var spans []RichTextSpan
	rest := s
	for {
		pre, text, post, ok := findItalic(rest)
		if !ok {
			break
		}
		if pre != "" {
			spans = append(spans, RichTextSpan{Content: pre})
		}
		spans = append(spans, RichTextSpan{Content: text, Italic: true})
		rest = post
	}
	if rest != "" {
		spans = append(spans, RichTextSpan{Content: rest})
	}
	return spans
}

// findLink locates the leftmost [text](url) occurrence. Text is one or more
// non-']' characters, url one or more non-')' characters; anything short of a
// balanced match is treated as literal text.
func findLink(s string) (pre, text, url, post string, ok bool) {
	for i := 0; i+4 < len(s); i++ {
		if s[i] != '[' {
			continue
		}
		j := strings.IndexByte(s[i+1:], ']')
		if j < 0 {
			return "", "", "", "", false
		}
		j += i + 1
		if j == i+1 || j+1 >= len(s) || s[j+1] != '(' {
			continue
		}
		k := strings.IndexByte(s[j+2:], ')')
		if k < 0 {
			continue
		}
		k += j + 2
		if k == j+2 {
			continue
		}
		return s[:i], s[i+1 : j], s[j+2 : k], s[k+1:], true
	}
	return "", "", "", "", false
}

// findBold locates the leftmost **text** occurrence (non-greedy, at least one
// character of content).
func findBold(s string) (pre, text, post string, ok bool) {
	start := 0
	for {
		i := strings.Index(s[start:], "**")
		if i < 0 {
			return "", "", "", false
		}
		i += start
		if i+4 > len(s) {
			return "", "", "", false
		}
		j := strings.Index(s[i+3:], "**")
		if j < 0 {
			start = i + 1
			continue
		}
		j += i + 3
		return s[:i], s[i+2 : j], s[j+2:], true
	}
}

// findItalic locates the leftmost *text* occurrence where text contains no
// asterisk and is non-empty.
func findItalic(s string) (pre, text, post string, ok bool) {
	start := 0
	for {
		i := strings.IndexByte(s[start:], '*')
		if i < 0 {
			return "", "", "", false
		}
		i += start
		rel := strings.IndexByte(s[i+1:], '*')
		if rel < 0 {
			return "", "", "", false
		}
		j := i + 1 + rel
		if j == i+1 {
			start = j
			continue
		}
		return s[:i], s[i+1 : j], s[j+1:], true
	}
}

// ExtractCategories returns the level-2 heading labels of a markdown document
// with emoji and punctuation stripped, for use as page tags.
func ExtractCategories(markdown string) []string {
	var categories []string
	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		name := cleanCategoryName(line[3:])
		if name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}

// cleanCategoryName keeps letters, digits, spaces, hyphens and underscores.
func cleanCategoryName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
