package template

import "will-engine/internal/model"

// Content is one localized legal template: every string a document in a
// given {language, jurisdiction} combination needs. Each combination is
// independently authored legal text; there is deliberately no inheritance
// between "similar" languages, because section wording and jurisdiction
// notes are not interchangeable (e.g. mandatory dating of holographic wills
// in CZ vs. optional in SK).
type Content struct {
	DocumentTitle         string                `yaml:"document_title" json:"document_title"`
	HeaderText            string                `yaml:"header_text" json:"header_text"`
	Sections              Sections              `yaml:"sections" json:"sections"`
	ExecutionInstructions ExecutionInstructions `yaml:"execution_instructions" json:"execution_instructions"`
	JurisdictionInfo      JurisdictionInfo      `yaml:"jurisdiction_info" json:"jurisdiction_info"`
	LegalNotes            *LegalNotes           `yaml:"legal_notes,omitempty" json:"legal_notes,omitempty"`
	LegalDisclaimer       string                `yaml:"legal_disclaimer" json:"legal_disclaimer"`
	FooterText            string                `yaml:"footer_text" json:"footer_text"`
}

type Sections struct {
	PersonalInfo     string `yaml:"personal_info" json:"personal_info"`
	Revocation       string `yaml:"revocation" json:"revocation"`
	Beneficiaries    string `yaml:"beneficiaries" json:"beneficiaries"`
	ForcedHeirs      string `yaml:"forced_heirs,omitempty" json:"forced_heirs,omitempty"`
	SpecificBequests string `yaml:"specific_bequests" json:"specific_bequests"`
	Executor         string `yaml:"executor" json:"executor"`
	Guardianship     string `yaml:"guardianship,omitempty" json:"guardianship,omitempty"`
	FinalWishes      string `yaml:"final_wishes" json:"final_wishes"`
	Residuary        string `yaml:"residuary" json:"residuary"`
	Signature        string `yaml:"signature" json:"signature"`
	Witnesses        string `yaml:"witnesses" json:"witnesses"`
}

type ExecutionInstructions struct {
	Title       string         `yaml:"title" json:"title"`
	Holographic InstructionSet `yaml:"holographic" json:"holographic"`
	Witnessed   InstructionSet `yaml:"witnessed" json:"witnessed"`
	Notarial    InstructionSet `yaml:"notarial" json:"notarial"`
}

type InstructionSet struct {
	Title        string   `yaml:"title" json:"title"`
	Steps        []string `yaml:"steps" json:"steps"`
	Requirements []string `yaml:"requirements" json:"requirements"`
	Warnings     []string `yaml:"warnings" json:"warnings"`
}

// ForWillType selects the instruction variant for the given will form.
func (e ExecutionInstructions) ForWillType(t model.WillType) InstructionSet {
	switch t {
	case model.WillWitnessed:
		return e.Witnessed
	case model.WillNotarial:
		return e.Notarial
	default:
		return e.Holographic
	}
}

type JurisdictionInfo struct {
	Title                   string `yaml:"title" json:"title"`
	LegalFramework          string `yaml:"legal_framework" json:"legal_framework"`
	Currency                string `yaml:"currency" json:"currency"`
	MinimumAge              string `yaml:"minimum_age" json:"minimum_age"`
	WitnessRequirements     string `yaml:"witness_requirements" json:"witness_requirements"`
	HolographicRequirements string `yaml:"holographic_requirements" json:"holographic_requirements"`
	NotaryRequirements      string `yaml:"notary_requirements,omitempty" json:"notary_requirements,omitempty"`
}

type LegalNotes struct {
	Title string   `yaml:"title" json:"title"`
	Notes []string `yaml:"notes" json:"notes"`
}
