package domain

// TaxEntry holds the four tax components of a single return line.
// Entries are plain values; updates replace the whole entry.
type TaxEntry struct {
	IGST Amount `json:"igst"`
	CGST Amount `json:"cgst"`
	SGST Amount `json:"sgst"`
	Cess Amount `json:"cess"`
}

// TaxSum returns igst + cgst + sgst, excluding cess.
func (e TaxEntry) TaxSum() Amount {
	return e.IGST.Add(e.CGST).Add(e.SGST)
}

// Total returns igst + cgst + sgst + cess.
func (e TaxEntry) Total() Amount {
	return e.TaxSum().Add(e.Cess)
}

// TaxableEntry is a TaxEntry together with the pre-tax base amount.
type TaxableEntry struct {
	TaxableValue Amount `json:"taxable_value"`
	TaxEntry
}

// TaxPaymentEntry records how a tax head was discharged.
type TaxPaymentEntry struct {
	Tax      Amount `json:"tax"`
	Interest Amount `json:"interest"`
	Penalty  Amount `json:"penalty"`
	Fees     Amount `json:"fees"`
	Others   Amount `json:"others"`
}

// BasicInfo carries the registration identity and, after filing, the
// acknowledgement. ARN and AckDate stay empty until submission and are
// immutable once assigned.
type BasicInfo struct {
	GSTIN     string `json:"gstin"`
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name"`
	ARN       string `json:"arn"`
	AckDate   string `json:"ack_date"` // YYYY-MM-DD
}

// OutwardSupplies is section 3.1/3.2 of the return.
type OutwardSupplies struct {
	Taxable                TaxableEntry `json:"taxable"`
	ZeroRated              TaxableEntry `json:"zero_rated"`
	NilExempt              TaxableEntry `json:"nil_exempt"`
	InterStateUnregistered TaxableEntry `json:"interstate_unregistered"`
	InterStateComposition  TaxableEntry `json:"interstate_composition"`
}

// InwardSupplies covers inward supplies liable to tax.
type InwardSupplies struct {
	ReverseCharge  TaxableEntry `json:"reverse_charge"`
	ImportGoods    TaxableEntry `json:"import_goods"`
	ImportServices TaxableEntry `json:"import_services"`
	ISD            TaxableEntry `json:"isd"`
}

// EligibleITC is section 4A, input tax credit available.
type EligibleITC struct {
	ImportGoods         TaxEntry `json:"import_goods"`
	ImportServices      TaxEntry `json:"import_services"`
	InwardSupplies      TaxEntry `json:"inward"`
	InwardReverseCharge TaxEntry `json:"inward_reverse_charge"`
	Others              TaxEntry `json:"others"`
}

// ITCReversed is section 4B, credit reversed under the rules or otherwise.
type ITCReversed struct {
	Rules  TaxEntry `json:"rules"`
	Others TaxEntry `json:"others"`
}

// ExemptInward is section 5, inward supplies that carry no tax.
type ExemptInward struct {
	InterState Amount `json:"inter_state"`
	IntraState Amount `json:"intra_state"`
}

// TaxPaid is the payment table, one row per tax head.
type TaxPaid struct {
	IGST TaxPaymentEntry `json:"igst"`
	CGST TaxPaymentEntry `json:"cgst"`
	SGST TaxPaymentEntry `json:"sgst"`
	Cess TaxPaymentEntry `json:"cess"`
}

// Verification is the signatory declaration block.
type Verification struct {
	Date          string `json:"date"` // YYYY-MM-DD
	SignatoryName string `json:"signatory_name"`
	Designation   string `json:"designation"`
	Place         string `json:"place"`
}

// ReturnDocument is the full GSTR-3B return for one period. Documents are
// treated as values: every edit produces a new document, and the working
// copy is only persisted on an explicit draft save or on submission.
type ReturnDocument struct {
	BasicInfo        BasicInfo       `json:"basic_info"`
	Period           ReturnPeriod    `json:"period"`
	OutwardSupplies  OutwardSupplies `json:"outward_supplies"`
	AmendmentOutward TaxableEntry    `json:"amendment_outward"`
	InwardSupplies   InwardSupplies  `json:"inward_supplies"`
	EligibleITC      EligibleITC     `json:"eligible_itc"`
	ITCReversed      ITCReversed     `json:"itc_reversed"`
	ExemptInward     ExemptInward    `json:"exempt_inward"`
	InterestLateFee  TaxEntry        `json:"interest_late_fee"`
	TaxPaid          TaxPaid         `json:"tax_paid"`
	Verification     Verification    `json:"verification"`
	Status           ReturnStatus    `json:"status"`
}

// NewReturnDocument creates an empty draft return for the given
// registration and period.
func NewReturnDocument(gstin, legalName, tradeName string, period ReturnPeriod) *ReturnDocument {
	return &ReturnDocument{
		BasicInfo: BasicInfo{
			GSTIN:     gstin,
			LegalName: legalName,
			TradeName: tradeName,
		},
		Period: period,
		Status: StatusDraft,
	}
}

// ReturnSummary is a listing row for saved returns of one registration.
type ReturnSummary struct {
	Period    ReturnPeriod `json:"period"`
	Status    ReturnStatus `json:"status" db:"status"`
	ARN       string       `json:"arn" db:"arn"`
	UpdatedAt string       `json:"updated_at" db:"-"`
}
