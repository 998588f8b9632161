// Package template resolves the legal template for a {language,
// jurisdiction} combination. Template text is configuration, not code: the
// shipped set is embedded YAML, and a remote registry can override single
// combinations without a redeploy.
package template

import (
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"will-engine/internal/model"
)

//go:embed templates.yaml
var embeddedTemplates []byte

// NotFoundError reports a {language, jurisdiction} combination with no
// registered template. The export call fails as a whole; there is no
// fallback-language resolution, since serving legal text authored for a
// different combination would risk legal inaccuracy.
type NotFoundError struct {
	Language     model.Language
	Jurisdiction model.Jurisdiction
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found for %s_%s", e.Language, e.Jurisdiction)
}

type templateFile struct {
	Templates map[string]*Content `yaml:"templates"`
}

// Registry holds the read-only template set. Populated once at
// construction; safe for concurrent use.
type Registry struct {
	templates map[string]*Content

	// Remote overrides, optional. Same contract as the embedded set;
	// any fetch or decode failure falls back to the embedded template.
	overrideURL string
	client      *http.Client
	cache       sync.Map
}

// NewRegistry parses the embedded template set and reads
// TEMPLATE_REGISTRY_URL for the optional override source.
func NewRegistry() (*Registry, error) {
	var f templateFile
	if err := yaml.Unmarshal(embeddedTemplates, &f); err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("embedded template set is empty")
	}

	r := &Registry{
		templates:   f.Templates,
		overrideURL: os.Getenv("TEMPLATE_REGISTRY_URL"),
	}
	if r.overrideURL != "" {
		r.client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return r, nil
}

// Key is the exact lookup key: "<language>_<jurisdiction>".
func Key(lang model.Language, jur model.Jurisdiction) string {
	return string(lang) + "_" + string(jur)
}

// Resolve returns the template for the combination, or *NotFoundError.
func (r *Registry) Resolve(lang model.Language, jur model.Jurisdiction) (*Content, error) {
	key := Key(lang, jur)

	if r.overrideURL != "" {
		if c := r.fetchOverride(key); c != nil {
			return c, nil
		}
	}

	c, ok := r.templates[key]
	if !ok {
		return nil, &NotFoundError{Language: lang, Jurisdiction: jur}
	}
	return c, nil
}

// Combinations returns the registered keys, for diagnostics.
func (r *Registry) Combinations() []string {
	keys := make([]string, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	return keys
}

func (r *Registry) fetchOverride(key string) *Content {
	if c, ok := r.cache.Load(key); ok {
		return c.(*Content)
	}

	resp, err := r.client.Get(r.overrideURL + "/templates/" + key)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var c Content
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil
	}
	r.cache.Store(key, &c)
	return &c
}
