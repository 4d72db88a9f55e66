package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX extracts the active sheet as markdown-formatted text cells.
func ReadXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	plain, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rows := make([][]string, 0, len(plain))
	for r, cells := range plain {
		row := make([]string, len(cells))
		for c := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			row[c] = cellText(f, sheet, cell, cells[c])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellText prefers rich text runs; otherwise the plain value, with any
// whole-cell font decoration applied.
func cellText(f *excelize.File, sheet, cell, plain string) string {
	runs, err := f.GetCellRichText(sheet, cell)
	if err == nil && len(runs) > 0 {
		return runsToMarkdown(runs)
	}
	if plain == "" {
		return ""
	}

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return plain
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return plain
	}
	return decorate(plain, style.Font)
}
