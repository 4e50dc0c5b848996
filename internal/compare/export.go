package compare

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"bschool-portal/models"
)

// ExportFilename - фиксированное имя скачиваемого файла сравнения.
const ExportFilename = "bschool-comparison.xlsx"

const exportSheet = "Comparison"

// BuildWorkbook renders the comparison of the given schools into a workbook:
// a title, a generation timestamp, a header row of short names, then the
// fixed row sequence from BuildRows.
func BuildWorkbook(schools []models.School, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(exportSheet, "A1", "B-School Comparison")
	f.SetCellValue(exportSheet, "A2", fmt.Sprintf("Generated on: %s", generatedAt.Format("02 Jan 2006")))

	const headerRow = 4
	f.SetCellValue(exportSheet, fmt.Sprintf("A%d", headerRow), "Criteria")
	for i, school := range schools {
		name := school.ShortName
		if name == "" {
			name = school.Name
		}
		cell, err := excelize.CoordinatesToCellName(i+2, headerRow)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(exportSheet, cell, name)
	}

	for r, row := range BuildRows(schools) {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", headerRow+1+r), row.Label)
		for c, value := range row.Values {
			cell, err := excelize.CoordinatesToCellName(c+2, headerRow+1+r)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(exportSheet, cell, value)
		}
	}

	return f, nil
}
