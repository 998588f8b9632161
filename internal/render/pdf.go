package render

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"will-engine/internal/assemble"
	"will-engine/internal/model"
)

// A4 portrait, millimetre units. The layout is cursor based: the renderer
// tracks a y position, wraps long text to the content width and starts a
// new page once the cursor passes the bottom threshold. The overflow check
// runs after every written line, not only between sections, so a long
// beneficiary list breaks cleanly mid-section.
const (
	pdfMargin     = 20.0
	pdfLineHeight = 7.0
	pdfWrapWidth  = 170.0
	pdfBottom     = 250.0
	pdfIndent     = 5.0
)

type PDF struct{}

func (p *PDF) Format() model.Format { return model.FormatPDF }

func (p *PDF) MediaType() string { return "application/pdf" }

func (p *PDF) Render(blocks []assemble.Block) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// cp1250 covers the Slovak, Czech and German diacritics in the
	// template text; the core fonts are not Unicode.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: tr, y: pdfMargin}

	for _, b := range blocks {
		switch b.Kind {
		case assemble.KindHeading:
			w.heading(b.Level, b.Text)
		case assemble.KindHeaderLine:
			w.headerLine(b.Label, b.Text)
		case assemble.KindParagraph:
			pdf.SetFont("Helvetica", "", 12)
			w.wrapped(b.Text, pdfMargin, pdfWrapWidth)
			w.y += 3
		case assemble.KindNumberedItem:
			pdf.SetFont("Helvetica", "", 12)
			w.wrapped(itemText(b), pdfMargin+pdfIndent, pdfWrapWidth-pdfIndent)
			w.y += 1
		case assemble.KindBulletItem:
			pdf.SetFont("Helvetica", "", 12)
			w.wrapped("• "+b.Text, pdfMargin+pdfIndent, pdfWrapWidth-pdfIndent)
			w.y += 1
		case assemble.KindKeyValue:
			pdf.SetFont("Helvetica", "", 12)
			w.wrapped(b.Label+": "+b.Text, pdfMargin+pdfIndent, pdfWrapWidth-pdfIndent)
			w.y += 1
		case assemble.KindSignatureLine:
			w.signature(b.Text)
		case assemble.KindRule:
			w.overflow()
			pdf.Line(pdfMargin, w.y, pdfMargin+pdfWrapWidth, w.y)
			w.y += 6
		case assemble.KindPageBreak:
			pdf.AddPage()
			w.y = pdfMargin
		case assemble.KindFooter:
			pdf.SetFont("Helvetica", "I", 8)
			w.wrapped(b.Text, pdfMargin, pdfWrapWidth)
		}
		w.overflow()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (w *pdfWriter) overflow() {
	if w.y > pdfBottom {
		w.pdf.AddPage()
		w.y = pdfMargin
	}
}

// wrapped writes text at x, wrapping to width, advancing the cursor one
// line height per wrapped line.
func (w *pdfWriter) wrapped(text string, x, width float64) {
	lines := w.pdf.SplitText(w.tr(text), width)
	for _, line := range lines {
		w.overflow()
		w.pdf.Text(x, w.y, line)
		w.y += pdfLineHeight
	}
}

func (w *pdfWriter) heading(level int, text string) {
	size := 12.0
	switch level {
	case 1:
		size = 18
	case 2:
		size = 14
	}
	w.overflow()
	w.y += 3
	w.pdf.SetFont("Helvetica", "B", size)
	w.wrapped(text, pdfMargin, pdfWrapWidth)
	w.y += 2
}

// headerLine draws the jurisdiction badge and the header text beside it.
func (w *pdfWriter) headerLine(badge, text string) {
	w.overflow()
	w.pdf.SetFont("Helvetica", "B", 10)
	w.pdf.SetFillColor(26, 54, 93)
	w.pdf.Rect(pdfMargin, w.y-5, 45, 8, "F")
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.Text(pdfMargin+2, w.y, w.tr(badge))
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Helvetica", "I", 10)
	w.pdf.Text(pdfMargin+50, w.y, w.tr(text))
	w.y += 10
}

func (w *pdfWriter) signature(text string) {
	w.overflow()
	w.y += 8
	w.pdf.Line(pdfMargin, w.y, pdfMargin+80, w.y)
	w.y += 5
	w.pdf.SetFont("Helvetica", "", 12)
	w.wrapped(text, pdfMargin, pdfWrapWidth)
	w.y += 3
}

func itemText(b assemble.Block) string {
	return strconv.Itoa(b.Index) + ". " + b.Text
}
