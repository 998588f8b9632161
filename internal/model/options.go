package model

// Language is an interface language of the document text.
type Language string

const (
	LanguageSK Language = "sk"
	LanguageCS Language = "cs"
	LanguageEN Language = "en"
	LanguageDE Language = "de"
)

// Jurisdiction is the legal system governing will validity. Independent of
// the interface language: a German-language will can be drawn under Slovak
// law.
type Jurisdiction string

const (
	JurisdictionSK Jurisdiction = "SK"
	JurisdictionCZ Jurisdiction = "CZ"
)

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatMarkdown Format = "markdown"
)

// ExportOptions is the per-call export configuration.
type ExportOptions struct {
	Format                       Format       `json:"format"`
	Language                     Language     `json:"language"`
	Jurisdiction                 Jurisdiction `json:"jurisdiction"`
	IncludeExecutionInstructions bool         `json:"include_execution_instructions,omitempty"`
	IncludeJurisdictionInfo      bool         `json:"include_jurisdiction_info,omitempty"`
	CustomHeaderText             string       `json:"custom_header_text,omitempty"`
}

// JurisdictionName returns the display name used in the document header.
// Not localized: the jurisdiction names itself in its own language.
func (j Jurisdiction) JurisdictionName() string {
	if j == JurisdictionCZ {
		return "ČESKÁ REPUBLIKA"
	}
	return "SLOVENSKO"
}

// Currency derives the monetary unit purely from jurisdiction.
func (j Jurisdiction) Currency() string {
	if j == JurisdictionCZ {
		return "CZK"
	}
	return "EUR"
}

// Extension returns the filename extension for the format ("md", not
// "markdown").
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}
