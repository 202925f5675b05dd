package ingest

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"aethernet/internal/models"
)

// extractDocx concatenates all paragraph texts into one unit. A .docx file is
// a zip archive; document text lives in word/document.xml as <w:p> paragraphs
// of <w:t> runs.
func extractDocx(path string) ([]models.TextUnit, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}
	defer zr.Close()

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return nil, fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("document.xml not found in %s", path)
	}
	defer doc.Close()

	paragraphs, err := collectParagraphs(doc, "p", "t")
	if err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}
	return []models.TextUnit{{
		Content:  strings.Join(paragraphs, "\n"),
		Source:   path,
		Type:     models.UnitDocx,
		Filename: filepath.Base(path),
	}}, nil
}

// collectParagraphs streams an OOXML part and gathers the text of every
// <paraTag> element's <textTag> runs, one string per non-empty paragraph.
func collectParagraphs(r io.Reader, paraTag, textTag string) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		out     []string
		current strings.Builder
		inPara  bool
		inText  bool
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			out = append(out, s)
		}
		current.Reset()
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case paraTag:
				if inPara {
					flush()
				}
				inPara = true
			case textTag:
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case paraTag:
				flush()
				inPara = false
			case textTag:
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if inPara {
		flush()
	}
	return out, nil
}
