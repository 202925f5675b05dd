package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aethernet/internal/models"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestProcessDirectoryPlainTextAndCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policy.txt", []byte("Employees are reimbursed within 30 days."))
	writeFile(t, dir, "budget.csv", []byte("team,amount\nplatform,1200\ndesign,800\n"))

	units, stats, err := New().ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("process directory: %v", err)
	}
	if stats.Processed != 2 || stats.Skipped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}

	byName := map[string]models.TextUnit{}
	for _, u := range units {
		byName[u.Filename] = u
	}
	if byName["policy.txt"].Type != models.UnitText {
		t.Fatalf("policy.txt type = %s", byName["policy.txt"].Type)
	}
	csvUnit := byName["budget.csv"]
	if csvUnit.Type != models.UnitCSV {
		t.Fatalf("budget.csv type = %s", csvUnit.Type)
	}
	if !strings.HasPrefix(csvUnit.Content, "CSV File: budget.csv") {
		t.Fatalf("csv header missing: %q", csvUnit.Content)
	}
	if !strings.Contains(csvUnit.Content, "platform") || !strings.Contains(csvUnit.Content, "1200") {
		t.Fatalf("csv grid missing cells: %q", csvUnit.Content)
	}
}

func TestProcessDirectoryIgnoresUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "archive.bin", []byte{0x01, 0x02, 0x03})
	writeFile(t, dir, "notes.txt", []byte("hello"))

	units, stats, err := New().ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("process directory: %v", err)
	}
	if stats.Processed != 1 || stats.Skipped != 0 {
		t.Fatalf("unknown extension must not be counted: %+v", stats)
	}
	if len(units) != 1 || units[0].Filename != "notes.txt" {
		t.Fatalf("unexpected units: %+v", units)
	}
}

func TestProcessDirectoryContainsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	// Not a zip archive, so the docx extractor fails; the batch must continue.
	writeFile(t, dir, "broken.docx", []byte("this is not a zip"))
	writeFile(t, dir, "ok.txt", []byte("still here"))

	units, stats, err := New().ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("process directory: %v", err)
	}
	if stats.Processed != 1 || stats.Skipped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(units) != 1 || units[0].Filename != "ok.txt" {
		t.Fatalf("corrupt file leaked units: %+v", units)
	}
}

func TestProcessDirectoryDropsEmptyExtraction(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blank.txt", []byte("   \n\t  "))

	units, stats, err := New().ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("process directory: %v", err)
	}
	if len(units) != 0 {
		t.Fatalf("empty extraction must not emit units: %+v", units)
	}
	if stats.Processed != 0 || stats.Skipped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDecodeTextGBK(t *testing.T) {
	// "中文" in GBK: D6 D0 CE C4. Invalid as UTF-8.
	raw := []byte{0xD6, 0xD0, 0xCE, 0xC4}
	got, err := decodeText(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "中文" {
		t.Fatalf("expected GBK decode, got %q", got)
	}
}

func TestDecodeTextUTF8Passthrough(t *testing.T) {
	got, err := decodeText([]byte("código"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "código" {
		t.Fatalf("utf-8 input altered: %q", got)
	}
}

func TestRenderGridAligned(t *testing.T) {
	rows := [][]string{
		{"team", "amount"},
		{"platform", "1200"},
	}
	got := renderGrid(rows)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "team    ") {
		t.Fatalf("first column not padded: %q", lines[0])
	}
	if !strings.Contains(lines[1], "platform  1200") {
		t.Fatalf("row misrendered: %q", lines[1])
	}
}

func TestCollectParagraphs(t *testing.T) {
	doc := `<w:document xmlns:w="x"><w:body>
<w:p><w:r><w:t>First </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:t>Second</w:t></w:r></w:p>
</w:body></w:document>`
	got, err := collectParagraphs(strings.NewReader(doc), "p", "t")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 2 || got[0] != "First paragraph" || got[1] != "Second" {
		t.Fatalf("unexpected paragraphs: %#v", got)
	}
}
