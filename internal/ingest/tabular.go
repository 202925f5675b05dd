package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aethernet/internal/models"

	"github.com/xuri/excelize/v2"
)

// extractExcel emits one unit per worksheet, rendered as a human-readable
// grid under a header naming the worksheet. Worksheets are never chunked.
func extractExcel(path string) ([]models.TextUnit, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	filename := filepath.Base(path)
	sheets := f.GetSheetList()
	units := make([]models.TextUnit, 0, len(sheets))
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read worksheet %s: %w", sheet, err)
		}
		units = append(units, models.TextUnit{
			Content:  fmt.Sprintf("Worksheet: %s\n\n%s", sheet, renderGrid(rows)),
			Source:   path,
			Type:     models.UnitExcel,
			Filename: filename,
			Location: fmt.Sprintf("sheet %s", sheet),
		})
	}
	return units, nil
}

// extractCSV emits one unit for the whole file in the same rendering style.
func extractCSV(path string) ([]models.TextUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	filename := filepath.Base(path)
	return []models.TextUnit{{
		Content:  fmt.Sprintf("CSV File: %s\n\n%s", filename, renderGrid(rows)),
		Source:   path,
		Type:     models.UnitCSV,
		Filename: filename,
	}}, nil
}

// renderGrid pads every column to its widest cell so rows line up when read
// as plain text.
func renderGrid(rows [][]string) string {
	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(cell))))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
