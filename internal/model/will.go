package model

// WillType selects the legal form of the will. The form decides which
// execution instructions apply and whether a witness section is emitted.
type WillType string

const (
	WillHolographic WillType = "holographic"
	WillWitnessed   WillType = "witnessed"
	WillNotarial    WillType = "notarial"
)

type Person struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Relationship string `json:"relationship"`
}

type Child struct {
	Name         string `json:"name"`
	BirthDate    string `json:"birth_date"`
	Relationship string `json:"relationship"`
}

type Beneficiary struct {
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Percentage   float64 `json:"percentage"`
	Conditions   string  `json:"conditions,omitempty"`
}

type RealEstate struct {
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Value       float64 `json:"value,omitempty"`
}

type BankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	Type          string `json:"type"`
}

type Vehicle struct {
	Make  string  `json:"make"`
	Model string  `json:"model"`
	Year  int     `json:"year"`
	VIN   string  `json:"vin,omitempty"`
	Value float64 `json:"value,omitempty"`
}

type PersonalProperty struct {
	Description string  `json:"description"`
	Recipient   string  `json:"recipient,omitempty"`
	Value       float64 `json:"value,omitempty"`
}

type CharitableBequest struct {
	Organization string  `json:"organization"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount,omitempty"`
}

// WillExportData is the semantic content of one will. It is supplied by the
// caller per export call and never persisted here. Legal completeness
// (percentage sums, forced-heir compliance) is validated upstream.
type WillExportData struct {
	TestatorName  string `json:"testator_name"`
	BirthDate     string `json:"birth_date"`
	BirthPlace    string `json:"birth_place"`
	PersonalID    string `json:"personal_id,omitempty"`
	Address       string `json:"address"`
	Citizenship   string `json:"citizenship"`
	MaritalStatus string `json:"marital_status"`
	SpouseName    string `json:"spouse_name,omitempty"`

	Children      []Child       `json:"children"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`

	RealEstate         []RealEstate        `json:"real_estate"`
	BankAccounts       []BankAccount       `json:"bank_accounts"`
	Vehicles           []Vehicle           `json:"vehicles"`
	PersonalProperty   []PersonalProperty  `json:"personal_property"`
	CharitableBequests []CharitableBequest `json:"charitable_bequests,omitempty"`

	PrimaryExecutor *Person `json:"primary_executor,omitempty"`
	BackupExecutor  *Person `json:"backup_executor,omitempty"`
	PrimaryGuardian *Person `json:"primary_guardian,omitempty"`
	BackupGuardian  *Person `json:"backup_guardian,omitempty"`

	FuneralWishes    string `json:"funeral_wishes,omitempty"`
	OrganDonation    bool   `json:"organ_donation,omitempty"`
	PersonalMessages string `json:"personal_messages,omitempty"`

	WillType    WillType `json:"will_type"`
	CreatedDate string   `json:"created_date"`
	City        string   `json:"city"`
}
