// Package compute derives the aggregate figures of a GSTR-3B return.
// All computation is pure: the same document always yields the same
// totals and the input is never modified.
package compute

import (
	"gstbook/internal/domain"
)

// Totals is the derived summary of one return document.
type Totals struct {
	TotalOutwardTax  domain.Amount `json:"total_outward_tax"`
	TotalInwardTax   domain.Amount `json:"total_inward_tax"`
	TotalEligibleITC domain.Amount `json:"total_eligible_itc"`
	TotalITCReversed domain.Amount `json:"total_itc_reversed"`
	TotalIGST        domain.Amount `json:"total_igst"`
	TotalCGST        domain.Amount `json:"total_cgst"`
	TotalSGST        domain.Amount `json:"total_sgst"`
	TotalCess        domain.Amount `json:"total_cess"`
	NetTaxLiability  domain.Amount `json:"net_tax_liability"`
}

// ComputeTotals aggregates the tax lines of doc into the summary figures
// shown on preview and checked at submission.
//
// Outward tax counts the taxable and zero-rated lines only; nil-rated and
// exempt lines carry no tax by definition. Inward tax counts only the
// reverse-charge line, since that is the only inward category where the
// recipient owes the tax. The per-head totals include the reverse-charge
// inward line, but the cess total does not: reverse-charge cess flows
// through the credit side instead.
func ComputeTotals(doc *domain.ReturnDocument) Totals {
	out := doc.OutwardSupplies
	in := doc.InwardSupplies
	itc := doc.EligibleITC
	rev := doc.ITCReversed

	var t Totals

	t.TotalOutwardTax = out.Taxable.TaxSum().Add(out.ZeroRated.TaxSum())
	t.TotalInwardTax = in.ReverseCharge.TaxSum()

	t.TotalEligibleITC = itc.ImportGoods.Total().
		Add(itc.ImportServices.Total()).
		Add(itc.InwardSupplies.Total()).
		Add(itc.InwardReverseCharge.Total()).
		Add(itc.Others.Total())

	t.TotalITCReversed = rev.Rules.Total().Add(rev.Others.Total())

	t.TotalIGST = out.Taxable.IGST.Add(out.ZeroRated.IGST).Add(in.ReverseCharge.IGST)
	t.TotalCGST = out.Taxable.CGST.Add(out.ZeroRated.CGST).Add(in.ReverseCharge.CGST)
	t.TotalSGST = out.Taxable.SGST.Add(out.ZeroRated.SGST).Add(in.ReverseCharge.SGST)
	t.TotalCess = out.Taxable.Cess.Add(out.ZeroRated.Cess)

	// Amount subtraction clamps at zero, so a credit surplus yields a
	// nil liability rather than a refund figure.
	t.NetTaxLiability = t.TotalOutwardTax.
		Add(t.TotalInwardTax).
		Add(t.TotalITCReversed).
		Sub(t.TotalEligibleITC)

	return t
}
