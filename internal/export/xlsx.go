// Package export renders one ledger month into an XLSX workbook.
package export

import (
	"fmt"

	"feona/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// MonthXLSX builds a workbook with one sheet named after the month
// label: a bold header row, one row per transaction, and a closing sum
// row.
func MonthXLSX(label string, txs []ledger.Transaction, sum decimal.Decimal) ([]byte, error) {
	xlsx := excelize.NewFile()

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())

	_ = xlsx.SetColWidth(sheet, "A", "A", 12)
	_ = xlsx.SetColWidth(sheet, "B", "B", 12)
	_ = xlsx.SetColWidth(sheet, "C", "C", 50)
	_ = xlsx.SetColWidth(sheet, "D", "D", 10)

	bold, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	_ = xlsx.SetCellValue(sheet, "A1", "Date")
	_ = xlsx.SetCellValue(sheet, "B1", "Amount")
	_ = xlsx.SetCellValue(sheet, "C1", "Description")
	_ = xlsx.SetCellValue(sheet, "D1", "Repeat")
	_ = xlsx.SetCellStyle(sheet, "A1", "D1", bold)

	row := 2

	for i := range txs {
		_ = xlsx.SetCellValue(sheet, cell('A', row), txs[i].Date.Format(ledger.DateFormat))
		_ = xlsx.SetCellValue(sheet, cell('B', row), txs[i].Amount.InexactFloat64())
		_ = xlsx.SetCellValue(sheet, cell('C', row), txs[i].Description)
		_ = xlsx.SetCellValue(sheet, cell('D', row), txs[i].Repeat.String())
		row++
	}

	_ = xlsx.SetCellValue(sheet, cell('A', row), "Sum")
	_ = xlsx.SetCellValue(sheet, cell('B', row), sum.InexactFloat64())
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), bold)

	if err := xlsx.SetSheetName(sheet, label); err != nil {
		return nil, fmt.Errorf("failed to name sheet %v: %w", label, err)
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}
