package domain

// Update is a typed edit applied to a return document. Apply is pure: it
// returns a modified copy and never mutates the input. Unknown slots or
// heads fail with ErrUnknownSlot so a bad request can't silently write
// into the wrong line.
type Update interface {
	Apply(doc ReturnDocument) (ReturnDocument, error)
}

// SetBasicInfo replaces the editable identity fields. ARN and AckDate are
// filing artifacts and are preserved from the existing document.
type SetBasicInfo struct {
	GSTIN     string `json:"gstin"`
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name"`
}

func (u SetBasicInfo) Apply(doc ReturnDocument) (ReturnDocument, error) {
	doc.BasicInfo.GSTIN = u.GSTIN
	doc.BasicInfo.LegalName = u.LegalName
	doc.BasicInfo.TradeName = u.TradeName
	return doc, nil
}

// SetOutwardSupply replaces one outward-supply line.
type SetOutwardSupply struct {
	Slot  OutwardSlot  `json:"slot"`
	Entry TaxableEntry `json:"entry"`
}

func (u SetOutwardSupply) Apply(doc ReturnDocument) (ReturnDocument, error) {
	switch u.Slot {
	case OutwardTaxable:
		doc.OutwardSupplies.Taxable = u.Entry
	case OutwardZeroRated:
		doc.OutwardSupplies.ZeroRated = u.Entry
	case OutwardNilExempt:
		doc.OutwardSupplies.NilExempt = u.Entry
	case OutwardInterStateUnregistered:
		doc.OutwardSupplies.InterStateUnregistered = u.Entry
	case OutwardInterStateComposition:
		doc.OutwardSupplies.InterStateComposition = u.Entry
	default:
		return doc, ErrUnknownSlot
	}
	return doc, nil
}

// SetAmendmentOutward replaces the amendment line for prior-period
// outward corrections.
type SetAmendmentOutward struct {
	Entry TaxableEntry `json:"entry"`
}

func (u SetAmendmentOutward) Apply(doc ReturnDocument) (ReturnDocument, error) {
	doc.AmendmentOutward = u.Entry
	return doc, nil
}

// SetInwardSupply replaces one inward-supply line.
type SetInwardSupply struct {
	Slot  InwardSlot   `json:"slot"`
	Entry TaxableEntry `json:"entry"`
}

func (u SetInwardSupply) Apply(doc ReturnDocument) (ReturnDocument, error) {
	switch u.Slot {
	case InwardReverseCharge:
		doc.InwardSupplies.ReverseCharge = u.Entry
	case InwardImportGoods:
		doc.InwardSupplies.ImportGoods = u.Entry
	case InwardImportServices:
		doc.InwardSupplies.ImportServices = u.Entry
	case InwardISD:
		doc.InwardSupplies.ISD = u.Entry
	default:
		return doc, ErrUnknownSlot
	}
	return doc, nil
}

// SetEligibleITC replaces one eligible input-tax-credit line.
type SetEligibleITC struct {
	Slot  ITCSlot  `json:"slot"`
	Entry TaxEntry `json:"entry"`
}

func (u SetEligibleITC) Apply(doc ReturnDocument) (ReturnDocument, error) {
	switch u.Slot {
	case ITCImportGoods:
		doc.EligibleITC.ImportGoods = u.Entry
	case ITCImportServices:
		doc.EligibleITC.ImportServices = u.Entry
	case ITCInwardSupplies:
		doc.EligibleITC.InwardSupplies = u.Entry
	case ITCInwardReverseCharge:
		doc.EligibleITC.InwardReverseCharge = u.Entry
	case ITCOthers:
		doc.EligibleITC.Others = u.Entry
	default:
		return doc, ErrUnknownSlot
	}
	return doc, nil
}

// SetITCReversal replaces one ITC reversal line.
type SetITCReversal struct {
	Slot  ReversalSlot `json:"slot"`
	Entry TaxEntry     `json:"entry"`
}

func (u SetITCReversal) Apply(doc ReturnDocument) (ReturnDocument, error) {
	switch u.Slot {
	case ReversalRules:
		doc.ITCReversed.Rules = u.Entry
	case ReversalOthers:
		doc.ITCReversed.Others = u.Entry
	default:
		return doc, ErrUnknownSlot
	}
	return doc, nil
}

// SetExemptInward replaces the exempt inward-supply values.
type SetExemptInward struct {
	InterState Amount `json:"inter_state"`
	IntraState Amount `json:"intra_state"`
}

func (u SetExemptInward) Apply(doc ReturnDocument) (ReturnDocument, error) {
	doc.ExemptInward.InterState = u.InterState
	doc.ExemptInward.IntraState = u.IntraState
	return doc, nil
}

// SetInterestLateFee replaces the interest and late-fee line.
type SetInterestLateFee struct {
	Entry TaxEntry `json:"entry"`
}

func (u SetInterestLateFee) Apply(doc ReturnDocument) (ReturnDocument, error) {
	doc.InterestLateFee = u.Entry
	return doc, nil
}

// SetTaxPaid replaces the payment row for one tax head.
type SetTaxPaid struct {
	Head  TaxHead         `json:"head"`
	Entry TaxPaymentEntry `json:"entry"`
}

func (u SetTaxPaid) Apply(doc ReturnDocument) (ReturnDocument, error) {
	switch u.Head {
	case HeadIGST:
		doc.TaxPaid.IGST = u.Entry
	case HeadCGST:
		doc.TaxPaid.CGST = u.Entry
	case HeadSGST:
		doc.TaxPaid.SGST = u.Entry
	case HeadCess:
		doc.TaxPaid.Cess = u.Entry
	default:
		return doc, ErrUnknownSlot
	}
	return doc, nil
}

// SetVerification replaces the signatory declaration block.
type SetVerification struct {
	Date          string `json:"date"`
	SignatoryName string `json:"signatory_name"`
	Designation   string `json:"designation"`
	Place         string `json:"place"`
}

func (u SetVerification) Apply(doc ReturnDocument) (ReturnDocument, error) {
	doc.Verification = Verification{
		Date:          u.Date,
		SignatoryName: u.SignatoryName,
		Designation:   u.Designation,
		Place:         u.Place,
	}
	return doc, nil
}
