package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"will-engine/internal/model"
	"will-engine/internal/render"
	"will-engine/internal/sample"
	"will-engine/internal/template"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	reg, err := template.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	s := New(reg, render.Default())
	s.Now = func() time.Time { return testNow }
	return s
}

func TestExportFilename(t *testing.T) {
	s := newService(t)

	doc, err := s.Export(sample.WillDataSK(), model.ExportOptions{
		Format:       model.FormatMarkdown,
		Language:     model.LanguageSK,
		Jurisdiction: model.JurisdictionSK,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.Filename != "Zavet-Ján_Novák-sk-SK-2026-06-15.md" {
		t.Fatalf("unexpected filename: %s", doc.Filename)
	}
	if doc.MediaType != "text/markdown" {
		t.Fatalf("unexpected media type: %s", doc.MediaType)
	}

	// Same input, same clock: identical filename on repeat.
	doc2, err := s.Export(sample.WillDataSK(), model.ExportOptions{
		Format:       model.FormatMarkdown,
		Language:     model.LanguageSK,
		Jurisdiction: model.JurisdictionSK,
	})
	if err != nil {
		t.Fatalf("repeat export: %v", err)
	}
	if doc2.Filename != doc.Filename {
		t.Fatalf("filename not deterministic: %s vs %s", doc.Filename, doc2.Filename)
	}
}

func TestFilenameVariants(t *testing.T) {
	opts := model.ExportOptions{Format: model.FormatPDF, Language: model.LanguageDE, Jurisdiction: model.JurisdictionCZ}

	if got := Filename("Pavel Dvořák", opts, testNow); got != "Zavet-Pavel_Dvořák-de-CZ-2026-06-15.pdf" {
		t.Fatalf("unexpected filename: %s", got)
	}

	// Whitespace runs collapse to single underscores.
	if got := Filename("  Anna   Mária  Kováčová ", opts, testNow); got != "Zavet-Anna_Mária_Kováčová-de-CZ-2026-06-15.pdf" {
		t.Fatalf("unexpected filename: %s", got)
	}

	opts.Format = model.FormatDOCX
	if got := Filename("Ján Novák", opts, testNow); !strings.HasSuffix(got, ".docx") {
		t.Fatalf("expected .docx suffix, got %s", got)
	}
}

func TestExportUnknownCombination(t *testing.T) {
	s := newService(t)

	_, err := s.Export(sample.WillDataSK(), model.ExportOptions{
		Format:       model.FormatMarkdown,
		Language:     model.Language("fr"),
		Jurisdiction: model.JurisdictionSK,
	})
	var nfe *template.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	s := newService(t)

	_, err := s.Export(sample.WillDataSK(), model.ExportOptions{
		Format:       model.Format("xml"),
		Language:     model.LanguageSK,
		Jurisdiction: model.JurisdictionSK,
	})
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if ufe.Error() != "unsupported export format: xml" {
		t.Fatalf("unexpected message: %s", ufe.Error())
	}
}

func TestExportJurisdictionCitations(t *testing.T) {
	s := newService(t)
	opts := model.ExportOptions{
		Format:                  model.FormatMarkdown,
		Language:                model.LanguageSK,
		Jurisdiction:            model.JurisdictionSK,
		IncludeJurisdictionInfo: true,
	}

	doc, err := s.Export(sample.WillDataSK(), opts)
	if err != nil {
		t.Fatalf("export SK: %v", err)
	}
	md := string(doc.Content)
	if !strings.Contains(md, "§ 476-478") {
		t.Fatal("expected Slovak civil code citation")
	}
	if strings.Contains(md, "§ 1540-1542") {
		t.Fatal("Czech citation leaked into Slovak document")
	}
	if !strings.Contains(md, "EUR") {
		t.Fatal("expected EUR in Slovak document")
	}

	opts.Jurisdiction = model.JurisdictionCZ
	opts.Language = model.LanguageCS
	doc, err = s.Export(sample.WillDataCZ(), opts)
	if err != nil {
		t.Fatalf("export CZ: %v", err)
	}
	md = string(doc.Content)
	if !strings.Contains(md, "§ 1540-1542") {
		t.Fatal("expected Czech civil code citation")
	}
	if strings.Contains(md, "§ 476-478") {
		t.Fatal("Slovak citation leaked into Czech document")
	}
	if !strings.Contains(md, "CZK") {
		t.Fatal("expected CZK in Czech document")
	}
}

func TestExportAllCombinationsAllFormats(t *testing.T) {
	s := newService(t)

	for _, lang := range []model.Language{model.LanguageSK, model.LanguageCS, model.LanguageEN, model.LanguageDE} {
		for _, jur := range []model.Jurisdiction{model.JurisdictionSK, model.JurisdictionCZ} {
			for _, format := range []model.Format{model.FormatMarkdown, model.FormatPDF, model.FormatDOCX} {
				doc, err := s.Export(sample.WillDataSK(), model.ExportOptions{
					Format: format, Language: lang, Jurisdiction: jur,
				})
				if err != nil {
					t.Fatalf("export %s/%s/%s: %v", lang, jur, format, err)
				}
				if len(doc.Content) == 0 {
					t.Fatalf("export %s/%s/%s: empty document", lang, jur, format)
				}
			}
		}
	}
}
