// Package render holds the per-format renderers. Every renderer consumes
// the same assembled block sequence, so the formats cannot drift apart in
// section content or order.
package render

import (
	"will-engine/internal/assemble"
	"will-engine/internal/model"
)

type Renderer interface {
	Format() model.Format
	MediaType() string
	Render(blocks []assemble.Block) ([]byte, error)
}

type Registry struct{ byFormat map[model.Format]Renderer }

func NewRegistry() *Registry { return &Registry{byFormat: map[model.Format]Renderer{}} }

func (r *Registry) Register(rd Renderer) { r.byFormat[rd.Format()] = rd }

func (r *Registry) Get(format model.Format) (Renderer, bool) {
	rd, ok := r.byFormat[format]
	return rd, ok
}

// Default returns a registry with all three shipped renderers.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&Markdown{})
	r.Register(&PDF{})
	r.Register(&DOCX{})
	return r
}
