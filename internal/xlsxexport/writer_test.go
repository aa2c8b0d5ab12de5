package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstbook/internal/compute"
	"gstbook/internal/domain"
)

func TestWriteSummary(t *testing.T) {
	doc := domain.NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "Acme", domain.ReturnPeriod{Month: 4, Year: 2025})
	doc.OutwardSupplies.Taxable = domain.TaxableEntry{
		TaxableValue: domain.NewAmount("100000"),
		TaxEntry:     domain.TaxEntry{IGST: domain.NewAmount("18000")},
	}
	totals := compute.ComputeTotals(doc)

	data, err := WriteSummary(doc, totals)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.Contains(t, flat, "29ABCDE1234F1Z5")
	assert.Contains(t, flat, "Acme Traders")
	assert.Contains(t, flat, "042025")
	assert.Contains(t, flat, "18000.00")
}

func TestWriteSummaryIncludesARNWhenFiled(t *testing.T) {
	doc := domain.NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "", domain.ReturnPeriod{Month: 4, Year: 2025})
	doc.Status = domain.StatusSubmitted
	doc.BasicInfo.ARN = "AB20250520123456"
	doc.BasicInfo.AckDate = "2025-05-20"

	data, err := WriteSummary(doc, compute.ComputeTotals(doc))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.Contains(t, flat, "AB20250520123456")
}
