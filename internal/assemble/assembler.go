package assemble

import (
	"fmt"
	"strconv"
	"time"

	"will-engine/internal/model"
	"will-engine/internal/template"
	"will-engine/internal/vocab"
)

// Build walks the will data and template and produces the ordered block
// sequence. now decides child ages and the signature-line date.
//
// Section inclusion: personal info, revocation, beneficiaries, signature,
// disclaimer and footer are always present. Assets require at least one
// of real estate / bank accounts / vehicles. Executor requires a primary
// executor. Guardianship requires a primary guardian and at least one
// minor child. Final wishes require any of funeral wishes, organ donation
// or a personal message. Witnesses require the witnessed will form. The
// two appendices are opt-in via options; legal notes follow the template.
func Build(will model.WillExportData, tmpl *template.Content, opts model.ExportOptions, now time.Time) []Block {
	lang := opts.Language
	var blocks []Block

	headerText := tmpl.HeaderText
	if opts.CustomHeaderText != "" {
		headerText = opts.CustomHeaderText
	}
	blocks = append(blocks,
		heading(1, tmpl.DocumentTitle),
		headerLine(opts.Jurisdiction.JurisdictionName(), headerText),
		rule(),
	)

	// Personal information.
	blocks = append(blocks,
		heading(2, tmpl.Sections.PersonalInfo),
		para(vocab.Declaration(lang, will.TestatorName, will.BirthDate, will.BirthPlace, will.Address, will.Citizenship, will.PersonalID)),
	)

	// Revocation.
	blocks = append(blocks,
		heading(2, tmpl.Sections.Revocation),
		para(vocab.T(lang, vocab.TermRevocation)),
	)

	// Beneficiaries.
	blocks = append(blocks, heading(2, tmpl.Sections.Beneficiaries))
	for i, b := range will.Beneficiaries {
		blocks = append(blocks, item(i+1, fmt.Sprintf("%s (%s) - %s%%", b.Name, b.Relationship, formatNumber(b.Percentage))))
		if b.Conditions != "" {
			blocks = append(blocks, kv(vocab.T(lang, vocab.TermConditions), b.Conditions))
		}
	}

	blocks = append(blocks, assetBlocks(will, tmpl, opts)...)
	blocks = append(blocks, executorBlocks(will, tmpl, lang)...)
	blocks = append(blocks, guardianshipBlocks(will, tmpl, lang, now)...)
	blocks = append(blocks, finalWishBlocks(will, tmpl, lang)...)

	// Signature.
	blocks = append(blocks,
		rule(),
		heading(2, tmpl.Sections.Signature),
		para(fmt.Sprintf("%s %s %s %s",
			vocab.T(lang, vocab.TermInCity), will.City,
			vocab.T(lang, vocab.TermOnDate), now.Format(vocab.T(lang, vocab.TermDateLayout)))),
		signatureLine(fmt.Sprintf("%s, %s", will.TestatorName, vocab.T(lang, vocab.TermTestator))),
	)

	// Witnesses, only for the witnessed form. Exactly two witness lines.
	if will.WillType == model.WillWitnessed {
		blocks = append(blocks,
			heading(2, tmpl.Sections.Witnesses),
			para(vocab.T(lang, vocab.TermWitnessAttest)),
			signatureLine(witnessLine(lang, 1)),
			signatureLine(witnessLine(lang, 2)),
		)
	}

	if opts.IncludeExecutionInstructions {
		blocks = append(blocks, instructionBlocks(will, tmpl, lang)...)
	}
	if opts.IncludeJurisdictionInfo {
		blocks = append(blocks, jurisdictionBlocks(tmpl, lang)...)
	}

	if tmpl.LegalNotes != nil {
		blocks = append(blocks, pageBreak(), heading(2, tmpl.LegalNotes.Title))
		for i, note := range tmpl.LegalNotes.Notes {
			blocks = append(blocks, item(i+1, note))
		}
	}

	// Disclaimer and footer close every document.
	blocks = append(blocks,
		pageBreak(),
		heading(2, vocab.T(lang, vocab.TermDisclaimerTitle)),
		para(tmpl.LegalDisclaimer),
		footer(tmpl.FooterText),
	)

	return blocks
}

func assetBlocks(will model.WillExportData, tmpl *template.Content, opts model.ExportOptions) []Block {
	if len(will.RealEstate) == 0 && len(will.BankAccounts) == 0 && len(will.Vehicles) == 0 {
		return nil
	}
	lang := opts.Language
	currency := opts.Jurisdiction.Currency()

	blocks := []Block{heading(2, tmpl.Sections.SpecificBequests)}

	if len(will.RealEstate) > 0 {
		blocks = append(blocks, heading(3, vocab.T(lang, vocab.TermRealEstateHeading)))
		for i, p := range will.RealEstate {
			blocks = append(blocks, item(i+1, p.Description), kv(vocab.T(lang, vocab.TermAddress), p.Address))
			if p.Value != 0 {
				blocks = append(blocks, kv(vocab.T(lang, vocab.TermValue), money(p.Value, currency)))
			}
		}
	}

	if len(will.BankAccounts) > 0 {
		blocks = append(blocks, heading(3, vocab.T(lang, vocab.TermBankAccountsHeading)))
		for i, a := range will.BankAccounts {
			blocks = append(blocks, item(i+1, a.Bank),
				kv(vocab.T(lang, vocab.TermAccountNumber), a.AccountNumber),
				kv(vocab.T(lang, vocab.TermAccountType), a.Type))
		}
	}

	if len(will.Vehicles) > 0 {
		blocks = append(blocks, heading(3, vocab.T(lang, vocab.TermVehiclesHeading)))
		for i, v := range will.Vehicles {
			blocks = append(blocks, item(i+1, fmt.Sprintf("%s %s (%d)", v.Make, v.Model, v.Year)))
			if v.VIN != "" {
				blocks = append(blocks, kv("VIN", v.VIN))
			}
			if v.Value != 0 {
				blocks = append(blocks, kv(vocab.T(lang, vocab.TermValue), money(v.Value, currency)))
			}
		}
	}

	if len(will.PersonalProperty) > 0 {
		blocks = append(blocks, heading(3, vocab.T(lang, vocab.TermPersonalProperty)))
		for i, p := range will.PersonalProperty {
			blocks = append(blocks, item(i+1, p.Description))
			if p.Recipient != "" {
				blocks = append(blocks, kv(vocab.T(lang, vocab.TermRecipient), p.Recipient))
			}
			if p.Value != 0 {
				blocks = append(blocks, kv(vocab.T(lang, vocab.TermValue), money(p.Value, currency)))
			}
		}
	}

	if len(will.CharitableBequests) > 0 {
		blocks = append(blocks, heading(3, vocab.T(lang, vocab.TermCharitableBequests)))
		for i, c := range will.CharitableBequests {
			blocks = append(blocks, item(i+1, c.Description),
				kv(vocab.T(lang, vocab.TermOrganization), c.Organization))
			if c.Amount != 0 {
				blocks = append(blocks, kv(vocab.T(lang, vocab.TermValue), money(c.Amount, currency)))
			}
		}
	}

	return blocks
}

func executorBlocks(will model.WillExportData, tmpl *template.Content, lang model.Language) []Block {
	if will.PrimaryExecutor == nil {
		return nil
	}
	blocks := []Block{heading(2, tmpl.Sections.Executor)}
	blocks = append(blocks, personBlocks(lang, vocab.TermExecutor, will.PrimaryExecutor)...)
	if will.BackupExecutor != nil {
		blocks = append(blocks, personBlocks(lang, vocab.TermBackupExecutor, will.BackupExecutor)...)
	}
	return blocks
}

func guardianshipBlocks(will model.WillExportData, tmpl *template.Content, lang model.Language, now time.Time) []Block {
	if will.PrimaryGuardian == nil {
		return nil
	}
	minor := false
	for _, c := range will.Children {
		if IsMinor(c.BirthDate, now) {
			minor = true
			break
		}
	}
	if !minor {
		return nil
	}

	title := tmpl.Sections.Guardianship
	if title == "" {
		title = vocab.T(lang, vocab.TermGuardianshipTitle)
	}
	blocks := []Block{heading(2, title)}
	blocks = append(blocks, personBlocks(lang, vocab.TermGuardian, will.PrimaryGuardian)...)
	if will.BackupGuardian != nil {
		blocks = append(blocks, personBlocks(lang, vocab.TermBackupGuardian, will.BackupGuardian)...)
	}
	return blocks
}

func personBlocks(lang model.Language, role vocab.Term, p *model.Person) []Block {
	return []Block{
		kv(vocab.T(lang, role), p.Name),
		kv(vocab.T(lang, vocab.TermAddress), p.Address),
		kv(vocab.T(lang, vocab.TermRelationship), p.Relationship),
	}
}

func finalWishBlocks(will model.WillExportData, tmpl *template.Content, lang model.Language) []Block {
	if will.FuneralWishes == "" && !will.OrganDonation && will.PersonalMessages == "" {
		return nil
	}
	blocks := []Block{heading(2, tmpl.Sections.FinalWishes)}
	if will.FuneralWishes != "" {
		blocks = append(blocks, kv(vocab.T(lang, vocab.TermFuneralWishes), will.FuneralWishes))
	}
	if will.OrganDonation {
		blocks = append(blocks, para(vocab.T(lang, vocab.TermOrganDonation)))
	}
	if will.PersonalMessages != "" {
		blocks = append(blocks, kv(vocab.T(lang, vocab.TermPersonalMessage), will.PersonalMessages))
	}
	return blocks
}

func instructionBlocks(will model.WillExportData, tmpl *template.Content, lang model.Language) []Block {
	instr := tmpl.ExecutionInstructions.ForWillType(will.WillType)
	blocks := []Block{
		pageBreak(),
		heading(2, tmpl.ExecutionInstructions.Title),
		heading(3, instr.Title),
	}
	if len(instr.Steps) > 0 {
		blocks = append(blocks, para(vocab.T(lang, vocab.TermSteps)+":"))
		for i, s := range instr.Steps {
			blocks = append(blocks, item(i+1, s))
		}
	}
	if len(instr.Requirements) > 0 {
		blocks = append(blocks, para(vocab.T(lang, vocab.TermRequirements)+":"))
		for _, r := range instr.Requirements {
			blocks = append(blocks, bullet(r))
		}
	}
	if len(instr.Warnings) > 0 {
		blocks = append(blocks, para(vocab.T(lang, vocab.TermWarnings)+":"))
		for _, w := range instr.Warnings {
			blocks = append(blocks, bullet("⚠ "+w))
		}
	}
	return blocks
}

func jurisdictionBlocks(tmpl *template.Content, lang model.Language) []Block {
	ji := tmpl.JurisdictionInfo
	blocks := []Block{
		pageBreak(),
		heading(2, ji.Title),
		kv(vocab.T(lang, vocab.TermLegalFramework), ji.LegalFramework),
		kv(vocab.T(lang, vocab.TermCurrency), ji.Currency),
		kv(vocab.T(lang, vocab.TermMinimumAge), ji.MinimumAge),
		kv(vocab.T(lang, vocab.TermWitnessReq), ji.WitnessRequirements),
		kv(vocab.T(lang, vocab.TermHolographicReq), ji.HolographicRequirements),
	}
	if ji.NotaryRequirements != "" {
		blocks = append(blocks, kv(vocab.T(lang, vocab.TermNotaryReq), ji.NotaryRequirements))
	}
	return blocks
}

func witnessLine(lang model.Language, n int) string {
	return fmt.Sprintf("%s %d: _____________________ %s: _________",
		vocab.T(lang, vocab.TermWitnessLabel), n, vocab.T(lang, vocab.TermOnDate))
}

func money(v float64, currency string) string {
	return formatNumber(v) + " " + currency
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
