// Package export ties template resolution, assembly and rendering into a
// single call. It is the only package a caller needs.
package export

import (
	"fmt"
	"strings"
	"time"

	"will-engine/internal/assemble"
	"will-engine/internal/model"
	"will-engine/internal/render"
	"will-engine/internal/template"
)

type Service struct {
	templates *template.Registry
	renderers *render.Registry

	// Now is the clock used for child ages, the signature date and the
	// filename. Overridable in tests.
	Now func() time.Time
}

func New(templates *template.Registry, renderers *render.Registry) *Service {
	return &Service{
		templates: templates,
		renderers: renderers,
		Now:       time.Now,
	}
}

// Export produces the document for the will under the given options.
// Fails with *template.NotFoundError for an unregistered {language,
// jurisdiction} combination and *UnsupportedFormatError for an unknown
// format; partial documents are never returned.
func (s *Service) Export(will model.WillExportData, opts model.ExportOptions) (model.Document, error) {
	tmpl, err := s.templates.Resolve(opts.Language, opts.Jurisdiction)
	if err != nil {
		return model.Document{}, err
	}

	renderer, ok := s.renderers.Get(opts.Format)
	if !ok {
		return model.Document{}, &UnsupportedFormatError{Format: string(opts.Format)}
	}

	now := s.Now()
	blocks := assemble.Build(will, tmpl, opts, now)

	content, err := renderer.Render(blocks)
	if err != nil {
		return model.Document{}, fmt.Errorf("render %s: %w", opts.Format, err)
	}

	return model.Document{
		Filename:  Filename(will.TestatorName, opts, now),
		MediaType: renderer.MediaType(),
		Content:   content,
	}, nil
}

// Filename builds the deterministic export filename:
// Zavet-<Name_with_underscores>-<lang>-<jurisdiction>-<date>.<ext>.
// Whitespace runs in the testator name collapse to single underscores;
// all other characters pass through unchanged.
func Filename(testatorName string, opts model.ExportOptions, now time.Time) string {
	name := strings.Join(strings.Fields(testatorName), "_")
	return fmt.Sprintf("Zavet-%s-%s-%s-%s.%s",
		name, opts.Language, opts.Jurisdiction,
		now.Format("2006-01-02"), opts.Format.Extension())
}
