package ingest

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"aethernet/internal/models"
	"aethernet/internal/util"
)

type extractFunc func(path string) ([]models.TextUnit, error)

// Stats reports the outcome of a directory pass. Files whose extension is not
// in the dispatch map are ignored entirely and appear in neither count.
type Stats struct {
	Processed int
	Skipped   int
}

// Ingestor converts a directory of heterogeneous office documents into a
// uniform sequence of text units. The extension map is closed: supporting a
// new format means registering a new extractor here, nothing else changes.
type Ingestor struct {
	extractors map[string]extractFunc
}

func New() *Ingestor {
	return &Ingestor{
		extractors: map[string]extractFunc{
			".pdf":  extractPDF,
			".docx": extractDocx,
			".xlsx": extractExcel,
			".xls":  extractExcel,
			".csv":  extractCSV,
			".ppt":  extractSlides,
			".pptx": extractSlides,
			".txt":  extractPlainText,
			".md":   extractPlainText,
			".html": extractPlainText,
			".htm":  extractPlainText,
		},
	}
}

// ProcessDirectory walks root and extracts every recognized file. A corrupt
// or unreadable file is logged and skipped; it never aborts the batch.
func (in *Ingestor) ProcessDirectory(root string) ([]models.TextUnit, Stats, error) {
	var units []models.TextUnit
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fn, ok := in.extractors[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		extracted, exErr := extract(fn, path)
		if exErr != nil {
			log.Printf("ingest: skipping %s: %v", path, exErr)
			stats.Skipped++
			return nil
		}
		kept := keepNonEmpty(extracted)
		if len(kept) == 0 {
			log.Printf("ingest: %s produced no content", path)
			stats.Skipped++
			return nil
		}
		units = append(units, kept...)
		stats.Processed++
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("walk %s: %w", root, err)
	}
	return units, stats, nil
}

// extract contains extractor failures, including panics: the pdf library
// panics on some malformed files and that must not take down the batch.
func extract(fn extractFunc, path string) (units []models.TextUnit, err error) {
	defer func() {
		if r := recover(); r != nil {
			units = nil
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return fn(path)
}

// keepNonEmpty sanitizes unit content and drops anything empty after trim.
func keepNonEmpty(units []models.TextUnit) []models.TextUnit {
	out := make([]models.TextUnit, 0, len(units))
	for _, u := range units {
		u.Content = util.SanitizeText(u.Content)
		if u.Content == "" {
			continue
		}
		out = append(out, u)
	}
	return out
}
