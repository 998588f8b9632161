package render

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"will-engine/internal/assemble"
	"will-engine/internal/model"
)

// DOCX builds the document paragraph by paragraph. Word has no markdown
// style layer here; headings are sized and bolded runs, list items are
// plain text with their marker baked in, and signature lines are a run
// of underscores above the caption.
type DOCX struct{}

func (d *DOCX) Format() model.Format { return model.FormatDOCX }

func (d *DOCX) MediaType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (d *DOCX) Render(blocks []assemble.Block) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, b := range blocks {
		switch b.Kind {
		case assemble.KindHeading:
			doc.AddParagraph().AddText(b.Text).Size(headingSize(b.Level)).Bold()
		case assemble.KindHeaderLine:
			p := doc.AddParagraph()
			p.AddText(b.Label + " ").Bold().Color("1A365D")
			p.AddText(b.Text).Italic()
		case assemble.KindParagraph:
			doc.AddParagraph().AddText(b.Text)
		case assemble.KindNumberedItem:
			doc.AddParagraph().AddText(strconv.Itoa(b.Index) + ". " + b.Text)
		case assemble.KindBulletItem:
			doc.AddParagraph().AddText("• " + b.Text)
		case assemble.KindKeyValue:
			p := doc.AddParagraph()
			p.AddText(b.Label + ": ").Bold()
			p.AddText(b.Text)
		case assemble.KindSignatureLine:
			doc.AddParagraph().AddText(strings.Repeat("_", 50))
			doc.AddParagraph().AddText(b.Text)
		case assemble.KindRule:
			doc.AddParagraph().AddText(strings.Repeat("_", 60))
		case assemble.KindPageBreak:
			doc.AddParagraph().AddPageBreaks()
		case assemble.KindFooter:
			doc.AddParagraph().AddText(b.Text).Italic().Size("16")
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// headingSize maps heading levels to half-point font sizes.
func headingSize(level int) string {
	switch level {
	case 1:
		return "36"
	case 2:
		return "28"
	default:
		return "24"
	}
}
