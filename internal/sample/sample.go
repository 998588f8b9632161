// Package sample provides ready-made will data for demos and the
// generator CLI.
package sample

import "will-engine/internal/model"

// WillDataSK is a witnessed Slovak will with a full asset mix, a minor
// child and both appendix-relevant roles filled.
func WillDataSK() model.WillExportData {
	return model.WillExportData{
		TestatorName:  "Ján Novák",
		BirthDate:     "1975-03-14",
		BirthPlace:    "Bratislava",
		PersonalID:    "750314/1234",
		Address:       "Hlavná 12, 811 01 Bratislava",
		Citizenship:   "Slovenská republika",
		MaritalStatus: "ženatý",
		SpouseName:    "Mária Nováková",
		Children: []model.Child{
			{Name: "Peter Novák", BirthDate: "2010-06-01", Relationship: "syn"},
			{Name: "Eva Nováková", BirthDate: "2003-11-20", Relationship: "dcéra"},
		},
		Beneficiaries: []model.Beneficiary{
			{Name: "Mária Nováková", Relationship: "manželka", Percentage: 50},
			{Name: "Peter Novák", Relationship: "syn", Percentage: 25},
			{Name: "Eva Nováková", Relationship: "dcéra", Percentage: 25, Conditions: "po dovŕšení 25 rokov"},
		},
		RealEstate: []model.RealEstate{
			{Description: "Trojizbový byt", Address: "Hlavná 12, 811 01 Bratislava", Value: 250000},
		},
		BankAccounts: []model.BankAccount{
			{Bank: "Tatra banka", AccountNumber: "SK89 1100 0000 0026 1234 5678", Type: "bežný účet"},
		},
		Vehicles: []model.Vehicle{
			{Make: "Škoda", Model: "Octavia", Year: 2021, VIN: "TMBJJ7NE5M0123456", Value: 18500},
		},
		PersonalProperty: []model.PersonalProperty{
			{Description: "Zbierka hodiniek", Recipient: "Peter Novák", Value: 4200},
		},
		PrimaryExecutor:  &model.Person{Name: "Mária Nováková", Address: "Hlavná 12, 811 01 Bratislava", Relationship: "manželka"},
		BackupExecutor:   &model.Person{Name: "Milan Novák", Address: "Dlhá 3, 040 01 Košice", Relationship: "brat"},
		PrimaryGuardian:  &model.Person{Name: "Milan Novák", Address: "Dlhá 3, 040 01 Košice", Relationship: "brat"},
		BackupGuardian:   &model.Person{Name: "Anna Kováčová", Address: "Krátka 7, 949 01 Nitra", Relationship: "sestra"},
		FuneralWishes:    "Pochovanie na cintoríne v Bratislave, civilný obrad.",
		OrganDonation:    true,
		PersonalMessages: "Ďakujem vám za všetko. Držte spolu.",
		WillType:         model.WillWitnessed,
		CreatedDate:      "2026-01-15",
		City:             "Bratislava",
	}
}

// WillDataCZ is a simpler holographic Czech will: adult children only, no
// guardianship and no witness section.
func WillDataCZ() model.WillExportData {
	return model.WillExportData{
		TestatorName:  "Pavel Dvořák",
		BirthDate:     "1968-09-02",
		BirthPlace:    "Praha",
		Address:       "Vinohradská 45, 120 00 Praha 2",
		Citizenship:   "Česká republika",
		MaritalStatus: "vdovec",
		Children: []model.Child{
			{Name: "Tereza Dvořáková", BirthDate: "1995-04-18", Relationship: "dcera"},
		},
		Beneficiaries: []model.Beneficiary{
			{Name: "Tereza Dvořáková", Relationship: "dcera", Percentage: 100},
		},
		RealEstate: []model.RealEstate{
			{Description: "Rodinný dům se zahradou", Address: "Polní 8, 250 01 Brandýs nad Labem", Value: 7500000},
		},
		BankAccounts: []model.BankAccount{
			{Bank: "Česká spořitelna", AccountNumber: "CZ65 0800 0000 1920 0014 5399", Type: "spořicí účet"},
		},
		CharitableBequests: []model.CharitableBequest{
			{Organization: "Člověk v tísni", Description: "Jednorázový dar", Amount: 50000},
		},
		PrimaryExecutor: &model.Person{Name: "Tereza Dvořáková", Address: "Vinohradská 45, 120 00 Praha 2", Relationship: "dcera"},
		FuneralWishes:   "Kremace, uložení urny v rodinné hrobce.",
		WillType:        model.WillHolographic,
		CreatedDate:     "2026-02-03",
		City:            "Praha",
	}
}
