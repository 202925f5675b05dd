package models

import "time"

// UnitType tags where a TextUnit came from and drives downstream chunking.
type UnitType string

const (
	UnitText     UnitType = "text"
	UnitPDF      UnitType = "pdf"
	UnitPDFTable UnitType = "pdf_table"
	UnitDocx     UnitType = "docx"
	UnitPPT      UnitType = "ppt"
	UnitExcel    UnitType = "excel"
	UnitCSV      UnitType = "csv"
)

// Tabular reports whether units of this type must be kept whole:
// splitting a rendered table destroys row/column coherence.
func (t UnitType) Tabular() bool {
	return t == UnitExcel || t == UnitCSV || t == UnitPDFTable
}

// TextUnit is one logically coherent extraction: a PDF page, a worksheet,
// a whole docx, a slide deck. Content is never empty after trimming.
type TextUnit struct {
	Content  string   `json:"content"`
	Source   string   `json:"source"`
	Type     UnitType `json:"type"`
	Filename string   `json:"filename"`
	Location string   `json:"location,omitempty"`
}

// Chunk is the unit of retrieval: a bounded slice of a TextUnit carrying the
// unit's metadata and its position within the unit.
type Chunk struct {
	ChunkID  string   `json:"chunk_id"`
	Content  string   `json:"content"`
	Source   string   `json:"source"`
	Type     UnitType `json:"type"`
	Filename string   `json:"filename"`
	Location string   `json:"location,omitempty"`
	Index    int      `json:"index"`
}

// RetrievedChunk is a search hit ranked by vector distance (smaller is closer).
type RetrievedChunk struct {
	Chunk    Chunk   `json:"chunk"`
	Distance float64 `json:"distance"`
}

// Profile is per-conversation user state supplied by the front-end.
type Profile struct {
	Role      string    `json:"role"`
	Interests string    `json:"interests"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Answer is the envelope returned for every query. Sources holds deduplicated
// document filenames for grounded answers and stays empty otherwise.
type Answer struct {
	Text      string   `json:"answer"`
	AgentName string   `json:"agent_name"`
	Sources   []string `json:"sources"`
}
