package ingest

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"aethernet/internal/models"

	"github.com/ledongthuc/pdf"
)

// extractPDF emits one unit per page of text and, independently, one unit per
// page whose positioned text forms table-like rows. Page text and table units
// carry distinct type tags so the chunker treats them differently.
func extractPDF(path string) ([]models.TextUnit, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	filename := filepath.Base(path)
	units := make([]models.TextUnit, 0, r.NumPage())
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("ingest: pdf %s page %d text extraction failed: %v", path, pageNum, err)
		} else if strings.TrimSpace(text) != "" {
			units = append(units, models.TextUnit{
				Content:  text,
				Source:   path,
				Type:     models.UnitPDF,
				Filename: filename,
				Location: fmt.Sprintf("page %d", pageNum),
			})
		}

		table, err := extractPageTable(page)
		if err != nil {
			log.Printf("ingest: pdf %s page %d table extraction failed: %v", path, pageNum, err)
			continue
		}
		if table != "" {
			units = append(units, models.TextUnit{
				Content:  table,
				Source:   path,
				Type:     models.UnitPDFTable,
				Filename: filename,
				Location: fmt.Sprintf("page %d table", pageNum),
			})
		}
	}
	return units, nil
}

// extractPageTable renders a page's positioned text as tab-separated rows.
// Pages with fewer than two multi-cell rows are not considered tables.
func extractPageTable(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("get text rows: %w", err)
	}
	lines := make([]string, 0, len(rows))
	multiCell := 0
	for _, row := range rows {
		cells := make([]string, 0, len(row.Content))
		for _, word := range row.Content {
			s := strings.TrimSpace(word.S)
			if s != "" {
				cells = append(cells, s)
			}
		}
		if len(cells) == 0 {
			continue
		}
		if len(cells) > 1 {
			multiCell++
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	if multiCell < 2 {
		return "", nil
	}
	return "Table:\n" + strings.Join(lines, "\n"), nil
}
