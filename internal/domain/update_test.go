package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutwardSupply(t *testing.T) {
	doc := *NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "Acme", ReturnPeriod{Month: 4, Year: 2025})

	entry := TaxableEntry{
		TaxableValue: NewAmount("100000"),
		TaxEntry: TaxEntry{
			IGST: NewAmount("18000"),
		},
	}

	got, err := SetOutwardSupply{Slot: OutwardTaxable, Entry: entry}.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, entry, got.OutwardSupplies.Taxable)

	// Apply is pure: the input document is untouched.
	assert.True(t, doc.OutwardSupplies.Taxable.TaxableValue.IsZero())
}

func TestSetOutwardSupplyUnknownSlot(t *testing.T) {
	doc := *NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "", ReturnPeriod{Month: 4, Year: 2025})

	_, err := SetOutwardSupply{Slot: OutwardSlot("bogus")}.Apply(doc)
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSetBasicInfoPreservesFilingArtifacts(t *testing.T) {
	doc := *NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "", ReturnPeriod{Month: 4, Year: 2025})
	doc.BasicInfo.ARN = "AB20250520123456"
	doc.BasicInfo.AckDate = "2025-05-20"

	got, err := SetBasicInfo{GSTIN: "29ABCDE1234F1Z5", LegalName: "Acme Traders Pvt Ltd", TradeName: "Acme"}.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders Pvt Ltd", got.BasicInfo.LegalName)
	assert.Equal(t, "AB20250520123456", got.BasicInfo.ARN)
	assert.Equal(t, "2025-05-20", got.BasicInfo.AckDate)
}

func TestSetEligibleITCSlots(t *testing.T) {
	doc := *NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "", ReturnPeriod{Month: 4, Year: 2025})
	entry := TaxEntry{IGST: NewAmount("5000"), Cess: NewAmount("100")}

	for _, slot := range []ITCSlot{ITCImportGoods, ITCImportServices, ITCInwardSupplies, ITCInwardReverseCharge, ITCOthers} {
		got, err := SetEligibleITC{Slot: slot, Entry: entry}.Apply(doc)
		require.NoError(t, err, "slot %s", slot)
		assert.NotEqual(t, doc.EligibleITC, got.EligibleITC, "slot %s", slot)
	}

	_, err := SetEligibleITC{Slot: ITCSlot("nope"), Entry: entry}.Apply(doc)
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSetTaxPaid(t *testing.T) {
	doc := *NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "", ReturnPeriod{Month: 4, Year: 2025})
	entry := TaxPaymentEntry{Tax: NewAmount("18000"), Interest: NewAmount("120")}

	got, err := SetTaxPaid{Head: HeadIGST, Entry: entry}.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, entry, got.TaxPaid.IGST)

	_, err = SetTaxPaid{Head: TaxHead("vat")}.Apply(doc)
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestTaxEntryHelpers(t *testing.T) {
	e := TaxEntry{
		IGST: NewAmount("100"),
		CGST: NewAmount("50"),
		SGST: NewAmount("50"),
		Cess: NewAmount("10"),
	}
	assert.Equal(t, "200", e.TaxSum().String())
	assert.Equal(t, "210", e.Total().String())
}
