package domain

// BlockType identifies the kind of a document block.
type BlockType string

// Block types produced by the markdown converter.
const (
	BlockHeading1     BlockType = "heading_1"
	BlockHeading2     BlockType = "heading_2"
	BlockHeading3     BlockType = "heading_3"
	BlockBulletItem   BlockType = "bulleted_list_item"
	BlockNumberedItem BlockType = "numbered_list_item"
	BlockParagraph    BlockType = "paragraph"
)

// RichTextSpan is one run of inline text. Link spans never carry bold or
// italic: inline emphasis inside link text is not parsed (see ParseRichText).
// Fields are ordered to minimize memory padding.
type RichTextSpan struct {
	Content string // Text content, markdown delimiters stripped
	Link    string // Hyperlink URL (empty for plain text)
	Bold    bool
	Italic  bool
}

// Block is one structured document block. Block order in a document equals
// the order of non-blank source lines.
type Block struct {
	Type BlockType
	Text []RichTextSpan
}
