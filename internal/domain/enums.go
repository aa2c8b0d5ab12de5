package domain

// ReturnStatus represents the filing lifecycle of a return document.
type ReturnStatus string

const (
	StatusDraft     ReturnStatus = "draft"
	StatusPreviewed ReturnStatus = "previewed"
	StatusSubmitted ReturnStatus = "submitted"
)

// Editable reports whether field updates are still allowed in this status.
// Submitted is terminal; prior-period corrections go through the amendment
// section of a later return, never through edits of the filed document.
func (s ReturnStatus) Editable() bool {
	return s == StatusDraft || s == StatusPreviewed
}

// OutwardSlot names one of the outward-supply lines of sections 3.1/3.2.
type OutwardSlot string

const (
	OutwardTaxable                OutwardSlot = "taxable"
	OutwardZeroRated              OutwardSlot = "zero_rated"
	OutwardNilExempt              OutwardSlot = "nil_exempt"
	OutwardInterStateUnregistered OutwardSlot = "interstate_unregistered"
	OutwardInterStateComposition  OutwardSlot = "interstate_composition"
)

// InwardSlot names one of the inward-supply lines liable to tax.
type InwardSlot string

const (
	InwardReverseCharge  InwardSlot = "reverse_charge"
	InwardImportGoods    InwardSlot = "import_goods"
	InwardImportServices InwardSlot = "import_services"
	InwardISD            InwardSlot = "isd"
)

// ITCSlot names one of the eligible input-tax-credit lines of section 4A.
type ITCSlot string

const (
	ITCImportGoods         ITCSlot = "import_goods"
	ITCImportServices      ITCSlot = "import_services"
	ITCInwardSupplies      ITCSlot = "inward"
	ITCInwardReverseCharge ITCSlot = "inward_reverse_charge"
	ITCOthers              ITCSlot = "others"
)

// ReversalSlot names one of the ITC reversal lines of section 4B.
type ReversalSlot string

const (
	ReversalRules  ReversalSlot = "rules"
	ReversalOthers ReversalSlot = "others"
)

// TaxHead identifies one of the four tax ledgers of the payment table.
type TaxHead string

const (
	HeadIGST TaxHead = "igst"
	HeadCGST TaxHead = "cgst"
	HeadSGST TaxHead = "sgst"
	HeadCess TaxHead = "cess"
)

// ValidationSeverity classifies a validation rule outcome.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ValidationRuleType groups validation rules by the kind of check they perform.
type ValidationRuleType string

const (
	ValidationRuleRequired ValidationRuleType = "required"
	ValidationRuleFormat   ValidationRuleType = "format"
)
