package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"will-engine/internal/assemble"
	"will-engine/internal/model"
	"will-engine/internal/sample"
	"will-engine/internal/template"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleBlocks(t *testing.T) []assemble.Block {
	t.Helper()
	reg, err := template.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	tmpl, err := reg.Resolve(model.LanguageSK, model.JurisdictionSK)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	opts := model.ExportOptions{
		Format:                       model.FormatMarkdown,
		Language:                     model.LanguageSK,
		Jurisdiction:                 model.JurisdictionSK,
		IncludeExecutionInstructions: true,
		IncludeJurisdictionInfo:      true,
	}
	return assemble.Build(sample.WillDataSK(), tmpl, opts, testNow)
}

// markdownHeadings parses rendered markdown and returns the level-2
// heading texts, in document order.
func markdownHeadings(t *testing.T, src []byte) []string {
	t.Helper()
	var out []string
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 2 {
			out = append(out, string(h.Text(src)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return out
}

func TestMarkdownSectionParity(t *testing.T) {
	blocks := sampleBlocks(t)

	out, err := (&Markdown{}).Render(blocks)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := assemble.SectionHeadings(blocks)
	got := markdownHeadings(t, out)
	if len(got) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMarkdownContent(t *testing.T) {
	out, err := (&Markdown{}).Render(sampleBlocks(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	md := string(out)

	if !strings.HasPrefix(md, "# ZÁVET\n") {
		t.Fatal("expected document title as top-level heading")
	}
	if !strings.Contains(md, "**SLOVENSKO** | ") {
		t.Fatal("expected jurisdiction badge in header line")
	}
	if !strings.Contains(md, "Svedok 1") || !strings.Contains(md, "Svedok 2") {
		t.Fatal("expected two witness lines")
	}
	if strings.Contains(md, "Svedok 3") {
		t.Fatal("expected no third witness line")
	}
	if !strings.Contains(md, "250000 EUR") {
		t.Fatal("expected real estate value with EUR")
	}
	if !strings.Contains(md, "1. Mária Nováková (manželka) - 50%") {
		t.Fatal("expected numbered beneficiary entry")
	}
}

func TestPDFRender(t *testing.T) {
	out, err := (&PDF{}).Render(sampleBlocks(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("expected PDF header")
	}
	if len(out) < 1000 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestDOCXRender(t *testing.T) {
	out, err := (&DOCX{}).Render(sampleBlocks(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// A docx file is a zip archive.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatal("expected zip header")
	}
	if len(out) < 1000 {
		t.Fatalf("suspiciously small docx: %d bytes", len(out))
	}
}

func TestRegistryFormats(t *testing.T) {
	reg := Default()
	for _, f := range []model.Format{model.FormatMarkdown, model.FormatPDF, model.FormatDOCX} {
		r, ok := reg.Get(f)
		if !ok {
			t.Fatalf("no renderer for %s", f)
		}
		if r.Format() != f {
			t.Fatalf("renderer for %s reports %s", f, r.Format())
		}
		if r.MediaType() == "" {
			t.Fatalf("renderer for %s has no media type", f)
		}
	}
	if _, ok := reg.Get(model.Format("xml")); ok {
		t.Fatal("expected no renderer for xml")
	}
}
