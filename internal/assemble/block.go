// Package assemble turns one will plus its resolved template into an
// ordered sequence of content blocks. The sequence is built exactly once
// per export; every renderer is a pure fold over it, so the three output
// formats agree on section presence and order by construction.
package assemble

type Kind string

const (
	KindHeading       Kind = "heading"
	KindHeaderLine    Kind = "header_line"
	KindParagraph     Kind = "paragraph"
	KindNumberedItem  Kind = "numbered_item"
	KindBulletItem    Kind = "bullet_item"
	KindKeyValue      Kind = "key_value"
	KindSignatureLine Kind = "signature_line"
	KindRule          Kind = "rule"
	KindPageBreak     Kind = "page_break"
	KindFooter        Kind = "footer"
)

// Block is one logical piece of document content. Field use depends on
// Kind: Level for headings (1 title, 2 section, 3 subsection), Index for
// numbered items (1-based), Label for key-value lines and the
// jurisdiction badge on the header line.
type Block struct {
	Kind  Kind
	Level int
	Index int
	Label string
	Text  string
}

func heading(level int, text string) Block { return Block{Kind: KindHeading, Level: level, Text: text} }

func headerLine(badge, text string) Block {
	return Block{Kind: KindHeaderLine, Label: badge, Text: text}
}

func para(text string) Block { return Block{Kind: KindParagraph, Text: text} }

func item(index int, text string) Block {
	return Block{Kind: KindNumberedItem, Index: index, Text: text}
}

func bullet(text string) Block { return Block{Kind: KindBulletItem, Text: text} }

func kv(label, value string) Block { return Block{Kind: KindKeyValue, Label: label, Text: value} }

func signatureLine(text string) Block { return Block{Kind: KindSignatureLine, Text: text} }

func rule() Block { return Block{Kind: KindRule} }

func pageBreak() Block { return Block{Kind: KindPageBreak} }

func footer(text string) Block { return Block{Kind: KindFooter, Text: text} }

// SectionHeadings returns the text of every section-level heading, in
// order. Used by tests to assert cross-format section parity.
func SectionHeadings(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == KindHeading && b.Level == 2 {
			out = append(out, b.Text)
		}
	}
	return out
}
