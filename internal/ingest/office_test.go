package ingest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aethernet/internal/models"

	"github.com/xuri/excelize/v2"
)

func writeZip(t *testing.T, path string, parts map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func TestExtractDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.docx")
	writeZip(t, path, map[string]string{
		"word/document.xml": `<w:document xmlns:w="x"><w:body>
<w:p><w:r><w:t>Welcome to the company.</w:t></w:r></w:p>
<w:p><w:r><w:t>Badge pickup is on floor 2.</w:t></w:r></w:p>
</w:body></w:document>`,
	})

	units, err := extractDocx(path)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("docx must yield one unit, got %d", len(units))
	}
	if units[0].Type != models.UnitDocx {
		t.Fatalf("unexpected type %s", units[0].Type)
	}
	want := "Welcome to the company.\nBadge pickup is on floor 2."
	if units[0].Content != want {
		t.Fatalf("unexpected content: %q", units[0].Content)
	}
}

func TestExtractSlides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kickoff.pptx")
	writeZip(t, path, map[string]string{
		"ppt/slides/slide2.xml": `<p:sld xmlns:a="y"><a:p><a:r><a:t>Roadmap</a:t></a:r></a:p></p:sld>`,
		"ppt/slides/slide1.xml": `<p:sld xmlns:a="y"><a:p><a:r><a:t>Team intro</a:t></a:r></a:p></p:sld>`,
	})

	units, err := extractSlides(path)
	if err != nil {
		t.Fatalf("extract slides: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("deck must yield one unit, got %d", len(units))
	}
	content := units[0].Content
	if !strings.Contains(content, "Slide 1:\nTeam intro") || !strings.Contains(content, "Slide 2:\nRoadmap") {
		t.Fatalf("slide prefixes missing: %q", content)
	}
	if strings.Index(content, "Slide 1:") > strings.Index(content, "Slide 2:") {
		t.Fatalf("slides out of order: %q", content)
	}
}

func TestExtractExcelPerWorksheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	wb := excelize.NewFile()
	if err := wb.SetSheetName("Sheet1", "Q1"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := wb.NewSheet("Q2"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	_ = wb.SetCellValue("Q1", "A1", "team")
	_ = wb.SetCellValue("Q1", "B1", "amount")
	_ = wb.SetCellValue("Q1", "A2", "platform")
	_ = wb.SetCellValue("Q1", "B2", 1200)
	_ = wb.SetCellValue("Q2", "A1", "placeholder")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	_ = wb.Close()

	units, err := extractExcel(path)
	if err != nil {
		t.Fatalf("extract excel: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected one unit per worksheet, got %d", len(units))
	}
	first := units[0]
	if first.Type != models.UnitExcel {
		t.Fatalf("unexpected type %s", first.Type)
	}
	if !strings.HasPrefix(first.Content, "Worksheet: Q1") {
		t.Fatalf("worksheet header missing: %q", first.Content)
	}
	if !strings.Contains(first.Content, "platform") || !strings.Contains(first.Content, "1200") {
		t.Fatalf("grid cells missing: %q", first.Content)
	}
	if first.Location != "sheet Q1" {
		t.Fatalf("unexpected location %q", first.Location)
	}
}
