package ingest

import (
	"archive/zip"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"aethernet/internal/models"
)

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractSlides concatenates per-slide shape texts, each slide prefixed with
// its index, into one unit per deck. Slide text lives in ppt/slides/slideN.xml
// as <a:p> paragraphs of <a:t> runs. Legacy binary .ppt files are not zip
// archives and fail here; the walker contains that per-file.
func extractSlides(path string) ([]models.TextUnit, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open slide archive: %w", err)
	}
	defer zr.Close()

	type slidePart struct {
		num  int
		file *zip.File
	}
	parts := make([]slidePart, 0, len(zr.File))
	for _, f := range zr.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{num: n, file: f})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].num < parts[j].num })

	slides := make([]string, 0, len(parts))
	for _, part := range parts {
		rc, err := part.file.Open()
		if err != nil {
			return nil, fmt.Errorf("open slide %d: %w", part.num, err)
		}
		paragraphs, err := collectParagraphs(rc, "p", "t")
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse slide %d: %w", part.num, err)
		}
		if len(paragraphs) == 0 {
			continue
		}
		slides = append(slides, fmt.Sprintf("Slide %d:\n%s", part.num, strings.Join(paragraphs, "\n")))
	}

	return []models.TextUnit{{
		Content:  strings.Join(slides, "\n\n"),
		Source:   path,
		Type:     models.UnitPPT,
		Filename: filepath.Base(path),
	}}, nil
}
