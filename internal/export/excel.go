// Package export writes the catalog as an XLSX inventory report.
package export

import (
	"fmt"

	"grocery-pos/internal/core"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet holding the inventory report.
const SheetName = "Inventory"

// WriteInventory writes one row per item to an XLSX workbook at path.
func WriteInventory(items []core.Item, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "NAME", "CATEGORY", "PRICE", "DISCOUNT %", "FINAL PRICE", "QTY"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(SheetName, "A1", "G1", style)

	for row, it := range items {
		values := []interface{}{
			it.ID,
			it.Name,
			it.Category.Label(),
			it.Price.InexactFloat64(),
			it.Category.DiscountPercent().IntPart(),
			it.FinalPrice().InexactFloat64(),
			it.Quantity,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(SheetName, cell, v)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 8)
	_ = f.SetColWidth(SheetName, "B", "C", 25)
	_ = f.SetColWidth(SheetName, "D", "G", 14)
	_ = f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving file: %v", err)
	}
	return nil
}
