// Package vocab holds the fixed document vocabulary for every supported
// interface language. One nested table replaces per-term switch statements;
// lookups for an unknown language fall back to Slovak, the authoring
// language of the product.
package vocab

import (
	"fmt"

	"will-engine/internal/model"
)

type Term string

const (
	// Sentence templates. Declaration takes name, birth date, birth place,
	// address, citizenship and personal id, in that order.
	TermDeclaration       Term = "declaration"
	TermRevocation        Term = "revocation"
	TermOrganDonation     Term = "organ_donation"
	TermWitnessAttest     Term = "witness_attestation"
	TermPersonalIDMissing Term = "personal_id_missing"

	// Labels.
	TermRealEstate          Term = "real_estate"
	TermRealEstateHeading   Term = "real_estate_heading"
	TermBankAccount         Term = "bank_account"
	TermBankAccountsHeading Term = "bank_accounts_heading"
	TermVehicle             Term = "vehicle"
	TermVehiclesHeading     Term = "vehicles_heading"
	TermPersonalProperty    Term = "personal_property"
	TermCharitableBequests  Term = "charitable_bequests"
	TermOrganization        Term = "organization"
	TermRecipient           Term = "recipient"
	TermExecutor            Term = "executor"
	TermBackupExecutor      Term = "backup_executor"
	TermGuardian            Term = "guardian"
	TermBackupGuardian      Term = "backup_guardian"
	TermGuardianshipTitle   Term = "guardianship_title"
	TermFuneralWishes       Term = "funeral_wishes"
	TermPersonalMessage     Term = "personal_message"
	TermWitnessLabel        Term = "witness_label"
	TermTestator            Term = "testator"
	TermInCity              Term = "in_city"
	TermOnDate              Term = "on_date"
	TermDateLayout          Term = "date_layout"
	TermDisclaimerTitle     Term = "disclaimer_title"
	TermConditions          Term = "conditions"
	TermAddress             Term = "address"
	TermValue               Term = "value"
	TermAccountNumber       Term = "account_number"
	TermAccountType         Term = "account_type"
	TermRelationship        Term = "relationship"
	TermSteps               Term = "steps"
	TermRequirements        Term = "requirements"
	TermWarnings            Term = "warnings"
	TermLegalFramework      Term = "legal_framework"
	TermCurrency            Term = "currency"
	TermMinimumAge          Term = "minimum_age"
	TermWitnessReq          Term = "witness_requirements"
	TermHolographicReq      Term = "holographic_requirements"
	TermNotaryReq           Term = "notary_requirements"
)

const fallback = model.LanguageSK

var table = map[model.Language]map[Term]string{
	model.LanguageSK: {
		TermDeclaration:       "Ja, %s, dátum narodenia %s, miesto narodenia %s, trvale bytom %s, občan %s, osobné číslo %s, činím týmto svoj závet. Vyhlasujem, že som pri plnej duševnej sile a spôsobilý na právne úkony.",
		TermRevocation:        "Týmto odvolávam všetky svoje skôr urobené závety a dodatky k nim.",
		TermOrganDonation:     "Súhlasím s darovaním svojich orgánov na transplantačné účely.",
		TermWitnessAttest:     "Tento závet bol podpísaný v našej prítomnosti a my ho na žiadosť poručiteľa podpisujeme ako svedkovia:",
		TermPersonalIDMissing: "neuvedené",

		TermRealEstate:          "Nehnuteľnosť",
		TermRealEstateHeading:   "Nehnuteľnosti",
		TermBankAccount:         "Bankový účet",
		TermBankAccountsHeading: "Bankové účty",
		TermVehicle:             "Vozidlo",
		TermVehiclesHeading:     "Vozidlá",
		TermPersonalProperty:    "Osobný majetok",
		TermCharitableBequests:  "Dobročinné odkazy",
		TermOrganization:        "Organizácia",
		TermRecipient:           "Nadobúdateľ",
		TermExecutor:            "Vykonávateľ závetu",
		TermBackupExecutor:      "Náhradný vykonávateľ",
		TermGuardian:            "Poručník",
		TermBackupGuardian:      "Náhradný poručník",
		TermGuardianshipTitle:   "Poručníctvo",
		TermFuneralWishes:       "Pohrebné želania",
		TermPersonalMessage:     "Osobný odkaz",
		TermWitnessLabel:        "Svedok",
		TermTestator:            "poručiteľ",
		TermInCity:              "V",
		TermOnDate:              "dňa",
		TermDateLayout:          "2.1.2006",
		TermDisclaimerTitle:     "Právne upozornenie",
		TermConditions:          "Podmienky",
		TermAddress:             "Adresa",
		TermValue:               "Hodnota",
		TermAccountNumber:       "Číslo účtu",
		TermAccountType:         "Typ",
		TermRelationship:        "Vzťah",
		TermSteps:               "Kroky",
		TermRequirements:        "Požiadavky",
		TermWarnings:            "Upozornenia",
		TermLegalFramework:      "Právny rámec",
		TermCurrency:            "Mena",
		TermMinimumAge:          "Minimálny vek",
		TermWitnessReq:          "Požiadavky na svedkov",
		TermHolographicReq:      "Holografický závet",
		TermNotaryReq:           "Notársky závet",
	},
	model.LanguageCS: {
		TermDeclaration:       "Já, %s, datum narození %s, místo narození %s, trvale bydlem %s, občan %s, osobní číslo %s, činím tímto svou závěť. Prohlašuji, že jsem při plné duševní síle a způsobilý k právním úkonům.",
		TermRevocation:        "Tímto odvolávám všechny své dříve učiněné závěti a dodatky k nim.",
		TermOrganDonation:     "Souhlasím s darováním svých orgánů pro transplantační účely.",
		TermWitnessAttest:     "Tato závěť byla podepsána v naší přítomnosti a my ji na žádost zůstavitele podpisujeme jako svědci:",
		TermPersonalIDMissing: "neuvedeno",

		TermRealEstate:          "Nemovitost",
		TermRealEstateHeading:   "Nemovitosti",
		TermBankAccount:         "Bankovní účet",
		TermBankAccountsHeading: "Bankovní účty",
		TermVehicle:             "Vozidlo",
		TermVehiclesHeading:     "Vozidla",
		TermPersonalProperty:    "Osobní majetek",
		TermCharitableBequests:  "Dobročinné odkazy",
		TermOrganization:        "Organizace",
		TermRecipient:           "Nabyvatel",
		TermExecutor:            "Vykonavatel závěti",
		TermBackupExecutor:      "Náhradní vykonavatel",
		TermGuardian:            "Poručník",
		TermBackupGuardian:      "Náhradní poručník",
		TermGuardianshipTitle:   "Poručnictví",
		TermFuneralWishes:       "Pohřební přání",
		TermPersonalMessage:     "Osobní vzkaz",
		TermWitnessLabel:        "Svědek",
		TermTestator:            "zůstavitel",
		TermInCity:              "V",
		TermOnDate:              "dne",
		TermDateLayout:          "2.1.2006",
		TermDisclaimerTitle:     "Právní upozornění",
		TermConditions:          "Podmínky",
		TermAddress:             "Adresa",
		TermValue:               "Hodnota",
		TermAccountNumber:       "Číslo účtu",
		TermAccountType:         "Typ",
		TermRelationship:        "Vztah",
		TermSteps:               "Kroky",
		TermRequirements:        "Požadavky",
		TermWarnings:            "Upozornění",
		TermLegalFramework:      "Právní rámec",
		TermCurrency:            "Měna",
		TermMinimumAge:          "Minimální věk",
		TermWitnessReq:          "Požadavky na svědky",
		TermHolographicReq:      "Holografní závěť",
		TermNotaryReq:           "Notářská závěť",
	},
	model.LanguageEN: {
		TermDeclaration:       "I, %s, born %s in %s, permanently residing at %s, citizen of %s, personal ID %s, hereby make my will. I declare that I am of sound mind and legally competent.",
		TermRevocation:        "I hereby revoke all wills and codicils previously made by me.",
		TermOrganDonation:     "I consent to the donation of my organs for transplantation purposes.",
		TermWitnessAttest:     "This will was signed in our presence and we sign it as witnesses at the testator's request:",
		TermPersonalIDMissing: "not specified",

		TermRealEstate:          "Real Estate",
		TermRealEstateHeading:   "Real Estate",
		TermBankAccount:         "Bank Account",
		TermBankAccountsHeading: "Bank Accounts",
		TermVehicle:             "Vehicle",
		TermVehiclesHeading:     "Vehicles",
		TermPersonalProperty:    "Personal Property",
		TermCharitableBequests:  "Charitable Bequests",
		TermOrganization:        "Organization",
		TermRecipient:           "Recipient",
		TermExecutor:            "Executor",
		TermBackupExecutor:      "Backup Executor",
		TermGuardian:            "Guardian",
		TermBackupGuardian:      "Backup Guardian",
		TermGuardianshipTitle:   "Guardianship",
		TermFuneralWishes:       "Funeral Wishes",
		TermPersonalMessage:     "Personal Message",
		TermWitnessLabel:        "Witness",
		TermTestator:            "testator",
		TermInCity:              "In",
		TermOnDate:              "on",
		TermDateLayout:          "1/2/2006",
		TermDisclaimerTitle:     "Legal Disclaimer",
		TermConditions:          "Conditions",
		TermAddress:             "Address",
		TermValue:               "Value",
		TermAccountNumber:       "Account Number",
		TermAccountType:         "Type",
		TermRelationship:        "Relationship",
		TermSteps:               "Steps",
		TermRequirements:        "Requirements",
		TermWarnings:            "Warnings",
		TermLegalFramework:      "Legal framework",
		TermCurrency:            "Currency",
		TermMinimumAge:          "Minimum age",
		TermWitnessReq:          "Witness requirements",
		TermHolographicReq:      "Holographic will",
		TermNotaryReq:           "Notarial will",
	},
	model.LanguageDE: {
		TermDeclaration:       "Ich, %s, geboren am %s in %s, wohnhaft %s, Staatsangehöriger %s, Personalausweis %s, errichte hiermit mein Testament. Ich erkläre, dass ich bei vollem Bewusstsein und geschäftsfähig bin.",
		TermRevocation:        "Hiermit widerrufe ich alle von mir früher errichteten Testamente und Zusätze dazu.",
		TermOrganDonation:     "Ich stimme der Organspende für Transplantationszwecke zu.",
		TermWitnessAttest:     "Dieses Testament wurde in unserer Gegenwart unterzeichnet und wir unterzeichnen es auf Wunsch des Erblassers als Zeugen:",
		TermPersonalIDMissing: "nicht angegeben",

		TermRealEstate:          "Immobilie",
		TermRealEstateHeading:   "Immobilien",
		TermBankAccount:         "Bankkonto",
		TermBankAccountsHeading: "Bankkonten",
		TermVehicle:             "Fahrzeug",
		TermVehiclesHeading:     "Fahrzeuge",
		TermPersonalProperty:    "Persönlicher Besitz",
		TermCharitableBequests:  "Wohltätige Vermächtnisse",
		TermOrganization:        "Organisation",
		TermRecipient:           "Empfänger",
		TermExecutor:            "Testamentsvollstrecker",
		TermBackupExecutor:      "Ersatz-Testamentsvollstrecker",
		TermGuardian:            "Vormund",
		TermBackupGuardian:      "Ersatz-Vormund",
		TermGuardianshipTitle:   "Vormundschaft",
		TermFuneralWishes:       "Bestattungswünsche",
		TermPersonalMessage:     "Persönliche Nachricht",
		TermWitnessLabel:        "Zeuge",
		TermTestator:            "Erblasser",
		TermInCity:              "In",
		TermOnDate:              "am",
		TermDateLayout:          "2.1.2006",
		TermDisclaimerTitle:     "Rechtlicher Hinweis",
		TermConditions:          "Bedingungen",
		TermAddress:             "Adresse",
		TermValue:               "Wert",
		TermAccountNumber:       "Kontonummer",
		TermAccountType:         "Typ",
		TermRelationship:        "Beziehung",
		TermSteps:               "Schritte",
		TermRequirements:        "Anforderungen",
		TermWarnings:            "Warnhinweise",
		TermLegalFramework:      "Rechtsrahmen",
		TermCurrency:            "Währung",
		TermMinimumAge:          "Mindestalter",
		TermWitnessReq:          "Zeugenanforderungen",
		TermHolographicReq:      "Eigenhändiges Testament",
		TermNotaryReq:           "Notarielles Testament",
	},
}

// T looks up a term for the given language, falling back to Slovak for
// languages or terms without an entry.
func T(lang model.Language, term Term) string {
	if m, ok := table[lang]; ok {
		if s, ok := m[term]; ok {
			return s
		}
	}
	return table[fallback][term]
}

// Declaration renders the testator declaration sentence.
func Declaration(lang model.Language, name, birthDate, birthPlace, address, citizenship, personalID string) string {
	if personalID == "" {
		personalID = T(lang, TermPersonalIDMissing)
	}
	return fmt.Sprintf(T(lang, TermDeclaration), name, birthDate, birthPlace, address, citizenship, personalID)
}
