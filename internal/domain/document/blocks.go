package document

// BlockKind discriminates the layout blocks emitted by the composer.
type BlockKind string

const (
	BlockLogo          BlockKind = "logo"
	BlockTitle         BlockKind = "title"
	BlockSentence      BlockKind = "sentence"
	BlockSectionHeader BlockKind = "section_header"
	BlockRow           BlockKind = "row"
	BlockSeparator     BlockKind = "separator"
	BlockDisclosure    BlockKind = "disclosure"
)

// Block is one element of the rendered document, in display order.
// Text is set for title/sentence/section/disclosure blocks; Label and
// Value for label/value rows.
type Block struct {
	Kind  BlockKind
	Text  string
	Label string
	Value string
}

func logo() Block                { return Block{Kind: BlockLogo} }
func title(text string) Block    { return Block{Kind: BlockTitle, Text: text} }
func sentence(text string) Block { return Block{Kind: BlockSentence, Text: text} }
func section(text string) Block  { return Block{Kind: BlockSectionHeader, Text: text} }

func row(label, value string) Block {
	return Block{Kind: BlockRow, Label: label, Value: value}
}

func separator() Block             { return Block{Kind: BlockSeparator} }
func disclosure(text string) Block { return Block{Kind: BlockDisclosure, Text: text} }
