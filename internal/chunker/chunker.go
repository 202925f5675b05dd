package chunker

import (
	"fmt"

	"aethernet/internal/models"
	"aethernet/internal/util"
)

const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 200
)

// Chunker splits text units into bounded overlapping windows. Tabular units
// (spreadsheet worksheets, CSV files, extracted PDF tables) are passed through
// whole regardless of length.
type Chunker struct {
	size    int
	overlap int
}

func New(size, overlap int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultOverlap
		if overlap >= size {
			overlap = 0
		}
	}
	return &Chunker{size: size, overlap: overlap}
}

// Split turns one TextUnit into ordered chunks. The window operates on runes
// so multi-byte characters are never cut in the middle; adjacent windows share
// an overlap-sized boundary region except possibly the final short tail.
func (c *Chunker) Split(unit models.TextUnit) []models.Chunk {
	if unit.Type.Tabular() {
		return []models.Chunk{c.chunk(unit, 0, unit.Content)}
	}

	runes := []rune(unit.Content)
	if len(runes) <= c.size {
		return []models.Chunk{c.chunk(unit, 0, unit.Content)}
	}

	step := c.size - c.overlap
	out := make([]models.Chunk, 0, len(runes)/step+1)
	idx := 0
	for i := 0; i < len(runes); i += step {
		end := i + c.size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, c.chunk(unit, idx, string(runes[i:end])))
		idx++
		if end == len(runes) {
			break
		}
	}
	return out
}

// SplitAll preserves unit order and window order within each unit.
func (c *Chunker) SplitAll(units []models.TextUnit) []models.Chunk {
	out := make([]models.Chunk, 0, len(units))
	for _, u := range units {
		out = append(out, c.Split(u)...)
	}
	return out
}

func (c *Chunker) chunk(unit models.TextUnit, idx int, content string) models.Chunk {
	contentHash := util.SHA256Hex([]byte(content))
	id := util.SHA256Hex([]byte(fmt.Sprintf("%s:%s:%d:%s", unit.Source, unit.Location, idx, contentHash)))
	return models.Chunk{
		ChunkID:  id,
		Content:  content,
		Source:   unit.Source,
		Type:     unit.Type,
		Filename: unit.Filename,
		Location: unit.Location,
		Index:    idx,
	}
}
