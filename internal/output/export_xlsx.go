package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aldwyck/titansim/internal/model"
	"github.com/aldwyck/titansim/internal/study"
)

var xlsxHeader = []string{"Rank", "Variation", "Successes", "Trials", "Success Rate %", "Retained"}

// ExportXLSX writes the study result as an xlsx workbook, one sheet per
// encounter tier, rankings descending.
func ExportXLSX(path string, s *study.Study, res *study.Result) error {
	f := buildWorkbook(s, res)
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving xlsx %q: %w", path, err)
	}
	return nil
}

func buildWorkbook(s *study.Study, res *study.Result) *excelize.File {
	f := excelize.NewFile()

	for i, tier := range res.Tiers {
		sheet := fmt.Sprintf("Tier %d - %s", i+1, tier.Encounter.Name)
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			f.NewSheet(sheet)
		}

		for col, h := range xlsxHeader {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for row, sc := range tier.Scores {
			values := []any{
				row + 1,
				sc.Variation.Identifier,
				sc.Successes,
				sc.Trials,
				model.RoundTo2(sc.Rate() * 100),
				row < tier.Retained,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}
		f.SetColWidth(sheet, "B", "B", 60)
	}

	return f
}
