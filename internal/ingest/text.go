package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"aethernet/internal/models"
	"aethernet/internal/util"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Decode order mirrors the corpus this system was built for: UTF-8 first,
// then the CJK legacy encodings, then Latin-1 as the permissive fallback.
var textDecoders = []struct {
	name string
	enc  encoding.Encoding
}{
	{"gbk", simplifiedchinese.GBK},
	{"gb18030", simplifiedchinese.GB18030},
	{"latin-1", charmap.ISO8859_1},
}

// extractPlainText emits one unit for the whole file under the first encoding
// that decodes it without error.
func extractPlainText(path string) ([]models.TextUnit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	content, err := decodeText(raw)
	if err != nil {
		return nil, err
	}
	return []models.TextUnit{{
		Content:  content,
		Source:   path,
		Type:     models.UnitText,
		Filename: filepath.Base(path),
	}}, nil
}

func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, d := range textDecoders {
		decoded, err := d.enc.NewDecoder().Bytes(raw)
		// The x/text decoders substitute U+FFFD instead of failing outright;
		// treat a substitution as a failed decode and move on.
		if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		return string(decoded), nil
	}
	return "", util.ErrUndecodableText
}
