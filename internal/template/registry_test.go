package template

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"

	"will-engine/internal/model"
)

var allLanguages = []model.Language{model.LanguageSK, model.LanguageCS, model.LanguageEN, model.LanguageDE}
var allJurisdictions = []model.Jurisdiction{model.JurisdictionSK, model.JurisdictionCZ}

func TestResolveAllCombinations(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	for _, lang := range allLanguages {
		for _, jur := range allJurisdictions {
			tmpl, err := reg.Resolve(lang, jur)
			if err != nil {
				t.Fatalf("resolve %s/%s: %v", lang, jur, err)
			}
			if tmpl.DocumentTitle == "" {
				t.Fatalf("%s/%s: empty document title", lang, jur)
			}
			if tmpl.Sections.PersonalInfo == "" || tmpl.Sections.Signature == "" {
				t.Fatalf("%s/%s: incomplete sections", lang, jur)
			}
			if tmpl.JurisdictionInfo.LegalFramework == "" {
				t.Fatalf("%s/%s: missing legal framework", lang, jur)
			}
			if tmpl.LegalNotes == nil || len(tmpl.LegalNotes.Notes) == 0 {
				t.Fatalf("%s/%s: missing legal notes", lang, jur)
			}
		}
	}

	if n := len(reg.Combinations()); n != 8 {
		t.Fatalf("expected 8 combinations, got %d", n)
	}
}

func TestResolveUnknownCombination(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	_, err = reg.Resolve(model.Language("fr"), model.JurisdictionSK)
	if err == nil {
		t.Fatal("expected error for unregistered language")
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if nfe.Error() != "template not found for fr_SK" {
		t.Fatalf("unexpected message: %s", nfe.Error())
	}
}

func TestKey(t *testing.T) {
	if k := Key(model.LanguageDE, model.JurisdictionCZ); k != "de_CZ" {
		t.Fatalf("expected de_CZ, got %s", k)
	}
}

func TestJurisdictionCurrencyInTemplates(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	for _, lang := range allLanguages {
		sk, _ := reg.Resolve(lang, model.JurisdictionSK)
		if sk.JurisdictionInfo.Currency != "EUR" {
			t.Fatalf("%s/SK: expected EUR, got %s", lang, sk.JurisdictionInfo.Currency)
		}
		cz, _ := reg.Resolve(lang, model.JurisdictionCZ)
		if cz.JurisdictionInfo.Currency != "CZK" {
			t.Fatalf("%s/CZ: expected CZK, got %s", lang, cz.JurisdictionInfo.Currency)
		}
	}
}

func TestRemoteOverride(t *testing.T) {
	override := Content{DocumentTitle: "ZÁVET (v2)"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/templates/sk_SK" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(override)
	}))
	defer srv.Close()

	t.Setenv("TEMPLATE_REGISTRY_URL", srv.URL)
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	tmpl, err := reg.Resolve(model.LanguageSK, model.JurisdictionSK)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if tmpl.DocumentTitle != "ZÁVET (v2)" {
		t.Fatalf("expected overridden title, got %s", tmpl.DocumentTitle)
	}

	// Combinations without an override fall back to the embedded set.
	tmpl, err = reg.Resolve(model.LanguageCS, model.JurisdictionCZ)
	if err != nil {
		t.Fatalf("resolve fallback: %v", err)
	}
	if tmpl.DocumentTitle != "ZÁVĚŤ" {
		t.Fatalf("expected embedded title, got %s", tmpl.DocumentTitle)
	}
}

func TestRemoteOverrideUnreachable(t *testing.T) {
	// Dead endpoint: every resolve silently falls back to embedded.
	t.Setenv("TEMPLATE_REGISTRY_URL", "http://127.0.0.1:1")
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	tmpl, err := reg.Resolve(model.LanguageSK, model.JurisdictionSK)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if tmpl.DocumentTitle != "ZÁVET" {
		t.Fatalf("expected embedded title, got %s", tmpl.DocumentTitle)
	}
}
