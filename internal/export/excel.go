package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/peopleops/employee-registry/internal/domain"
)

const sheetName = "Employees"

var headers = []string{"Employee ID", "Name", "Age", "Department"}

// BuildEmployeeWorkbook renders the employee records into a single-sheet
// xlsx workbook, one row per record in listing order.
func BuildEmployeeWorkbook(employees []domain.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", h, err)
		}
	}

	for row, e := range employees {
		values := []interface{}{e.EmployeeID, e.Name, e.Age, e.Department.String()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 24); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
