package render

import (
	"fmt"
	"strings"

	"will-engine/internal/assemble"
	"will-engine/internal/model"
)

// Markdown renders blocks by plain string concatenation. There is no
// pagination concept; page breaks become thematic breaks.
type Markdown struct{}

func (m *Markdown) Format() model.Format { return model.FormatMarkdown }

func (m *Markdown) MediaType() string { return "text/markdown" }

func (m *Markdown) Render(blocks []assemble.Block) ([]byte, error) {
	var sb strings.Builder
	var lastKind assemble.Kind

	for _, b := range blocks {
		// Lists need a blank line before the next non-list block.
		if isListKind(lastKind) && !isListKind(b.Kind) {
			sb.WriteString("\n")
		}

		switch b.Kind {
		case assemble.KindHeading:
			fmt.Fprintf(&sb, "%s %s\n\n", strings.Repeat("#", b.Level), b.Text)
		case assemble.KindHeaderLine:
			fmt.Fprintf(&sb, "**%s** | %s\n\n", b.Label, b.Text)
		case assemble.KindParagraph:
			sb.WriteString(b.Text)
			sb.WriteString("\n\n")
		case assemble.KindNumberedItem:
			fmt.Fprintf(&sb, "%d. %s\n", b.Index, b.Text)
		case assemble.KindBulletItem:
			fmt.Fprintf(&sb, "- %s\n", b.Text)
		case assemble.KindKeyValue:
			fmt.Fprintf(&sb, "- **%s:** %s\n", b.Label, b.Text)
		case assemble.KindSignatureLine:
			fmt.Fprintf(&sb, "_________________________________\n%s\n\n", b.Text)
		case assemble.KindRule, assemble.KindPageBreak:
			sb.WriteString("---\n\n")
		case assemble.KindFooter:
			fmt.Fprintf(&sb, "*%s*\n", b.Text)
		}
		lastKind = b.Kind
	}

	return []byte(sb.String()), nil
}

func isListKind(k assemble.Kind) bool {
	return k == assemble.KindNumberedItem || k == assemble.KindBulletItem || k == assemble.KindKeyValue
}
