// Package xlsxexport renders a return document as an XLSX workbook in
// the layout accountants expect from the portal's summary sheet.
package xlsxexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"gstbook/internal/compute"
	"gstbook/internal/domain"
)

const sheetName = "GSTR-3B"

// WriteSummary renders doc and its totals into an XLSX workbook and
// returns the encoded bytes.
func WriteSummary(doc *domain.ReturnDocument, totals compute.Totals) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsxexport: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsxexport: %w", err)
	}

	row := 1
	setRow := func(cells ...interface{}) {
		for i, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	setRow("Form GSTR-3B")
	setRow("GSTIN", doc.BasicInfo.GSTIN)
	setRow("Legal name", doc.BasicInfo.LegalName)
	setRow("Trade name", doc.BasicInfo.TradeName)
	setRow("Period", doc.Period.String())
	setRow("Status", string(doc.Status))
	if doc.BasicInfo.ARN != "" {
		setRow("ARN", doc.BasicInfo.ARN)
		setRow("Acknowledgement date", doc.BasicInfo.AckDate)
	}
	row++

	setRow("3.1 Outward supplies and inward supplies liable to reverse charge")
	setRow("Nature of supply", "Taxable value", "IGST", "CGST", "SGST", "Cess")
	taxableRow := func(label string, e domain.TaxableEntry) {
		setRow(label, e.TaxableValue.StringFixed(), e.IGST.StringFixed(), e.CGST.StringFixed(), e.SGST.StringFixed(), e.Cess.StringFixed())
	}
	taxableRow("Outward taxable supplies (other than zero rated, nil rated and exempted)", doc.OutwardSupplies.Taxable)
	taxableRow("Outward taxable supplies (zero rated)", doc.OutwardSupplies.ZeroRated)
	taxableRow("Other outward supplies (nil rated, exempted)", doc.OutwardSupplies.NilExempt)
	taxableRow("Inward supplies (liable to reverse charge)", doc.InwardSupplies.ReverseCharge)
	row++

	setRow("4. Eligible ITC")
	setRow("Details", "", "IGST", "CGST", "SGST", "Cess")
	itcRow := func(label string, e domain.TaxEntry) {
		setRow(label, "", e.IGST.StringFixed(), e.CGST.StringFixed(), e.SGST.StringFixed(), e.Cess.StringFixed())
	}
	itcRow("Import of goods", doc.EligibleITC.ImportGoods)
	itcRow("Import of services", doc.EligibleITC.ImportServices)
	itcRow("Inward supplies liable to reverse charge", doc.EligibleITC.InwardReverseCharge)
	itcRow("All other ITC", doc.EligibleITC.InwardSupplies)
	itcRow("Others", doc.EligibleITC.Others)
	itcRow("ITC reversed (as per rules)", doc.ITCReversed.Rules)
	itcRow("ITC reversed (others)", doc.ITCReversed.Others)
	row++

	setRow("Summary")
	setRow("Total outward tax", totals.TotalOutwardTax.StringFixed())
	setRow("Total inward tax (reverse charge)", totals.TotalInwardTax.StringFixed())
	setRow("Total eligible ITC", totals.TotalEligibleITC.StringFixed())
	setRow("Total ITC reversed", totals.TotalITCReversed.StringFixed())
	setRow("Net tax liability", totals.NetTaxLiability.StringFixed())

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsxexport: %w", err)
	}
	return buf.Bytes(), nil
}
