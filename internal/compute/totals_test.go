package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstbook/internal/domain"
)

func emptyDoc() *domain.ReturnDocument {
	return domain.NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "Acme", domain.ReturnPeriod{Month: 4, Year: 2025})
}

func TestComputeTotalsSingleOutwardLine(t *testing.T) {
	doc := emptyDoc()
	doc.OutwardSupplies.Taxable = domain.TaxableEntry{
		TaxableValue: domain.NewAmount("100000"),
		TaxEntry:     domain.TaxEntry{IGST: domain.NewAmount("18000")},
	}

	got := ComputeTotals(doc)

	assert.Equal(t, "18000", got.TotalOutwardTax.String())
	assert.True(t, got.TotalInwardTax.IsZero())
	assert.True(t, got.TotalEligibleITC.IsZero())
	assert.True(t, got.TotalITCReversed.IsZero())
	assert.Equal(t, "18000", got.TotalIGST.String())
	assert.Equal(t, "18000", got.NetTaxLiability.String())
}

func TestComputeTotalsCreditExceedsLiability(t *testing.T) {
	doc := emptyDoc()
	doc.OutwardSupplies.Taxable = domain.TaxableEntry{
		TaxableValue: domain.NewAmount("100000"),
		TaxEntry:     domain.TaxEntry{IGST: domain.NewAmount("18000")},
	}
	doc.EligibleITC.InwardSupplies = domain.TaxEntry{IGST: domain.NewAmount("12000")}
	doc.EligibleITC.ImportGoods = domain.TaxEntry{IGST: domain.NewAmount("8000")}

	got := ComputeTotals(doc)

	assert.Equal(t, "20000", got.TotalEligibleITC.String())
	// Surplus credit clamps to zero, never a negative liability.
	assert.True(t, got.NetTaxLiability.IsZero())
}

func TestComputeTotalsOutwardCountsTaxableAndZeroRatedOnly(t *testing.T) {
	doc := emptyDoc()
	doc.OutwardSupplies.Taxable = domain.TaxableEntry{TaxEntry: domain.TaxEntry{CGST: domain.NewAmount("500"), SGST: domain.NewAmount("500")}}
	doc.OutwardSupplies.ZeroRated = domain.TaxableEntry{TaxEntry: domain.TaxEntry{IGST: domain.NewAmount("1000")}}
	// Nil-rated and exempt lines never contribute tax even if filled in.
	doc.OutwardSupplies.NilExempt = domain.TaxableEntry{TaxEntry: domain.TaxEntry{IGST: domain.NewAmount("999")}}

	got := ComputeTotals(doc)

	assert.Equal(t, "2000", got.TotalOutwardTax.String())
	assert.Equal(t, "1000", got.TotalIGST.String())
	assert.Equal(t, "500", got.TotalCGST.String())
	assert.Equal(t, "500", got.TotalSGST.String())
}

func TestComputeTotalsInwardReverseChargeOnly(t *testing.T) {
	doc := emptyDoc()
	doc.InwardSupplies.ReverseCharge = domain.TaxableEntry{TaxEntry: domain.TaxEntry{
		IGST: domain.NewAmount("3000"),
		Cess: domain.NewAmount("200"),
	}}
	doc.InwardSupplies.ImportGoods = domain.TaxableEntry{TaxEntry: domain.TaxEntry{IGST: domain.NewAmount("4000")}}

	got := ComputeTotals(doc)

	assert.Equal(t, "3000", got.TotalInwardTax.String())
	assert.Equal(t, "3000", got.TotalIGST.String())
	// Cess on reverse-charge inward stays out of the cess total.
	assert.True(t, got.TotalCess.IsZero())
}

func TestComputeTotalsITCReversedRaisesLiability(t *testing.T) {
	doc := emptyDoc()
	doc.OutwardSupplies.Taxable = domain.TaxableEntry{TaxEntry: domain.TaxEntry{IGST: domain.NewAmount("10000")}}
	doc.EligibleITC.Others = domain.TaxEntry{IGST: domain.NewAmount("4000"), Cess: domain.NewAmount("100")}
	doc.ITCReversed.Rules = domain.TaxEntry{IGST: domain.NewAmount("1500")}

	got := ComputeTotals(doc)

	assert.Equal(t, "4100", got.TotalEligibleITC.String())
	assert.Equal(t, "1500", got.TotalITCReversed.String())
	// 10000 + 1500 - 4100
	assert.Equal(t, "7400", got.NetTaxLiability.String())
}

func TestComputeTotalsDeterministic(t *testing.T) {
	doc := emptyDoc()
	doc.OutwardSupplies.Taxable = domain.TaxableEntry{TaxEntry: domain.TaxEntry{IGST: domain.NewAmount("18000"), Cess: domain.NewAmount("250")}}
	doc.EligibleITC.InwardReverseCharge = domain.TaxEntry{SGST: domain.NewAmount("700")}

	first := ComputeTotals(doc)
	second := ComputeTotals(doc)

	assert.Equal(t, first, second)
}
