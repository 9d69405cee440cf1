// Package massfile persists Mass records as JSON files, one per date. It is
// the external persistence collaborator; the core only defines the record.
package massfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrparsing/suggerimento-canti/internal/domain/mass"
)

// Writer writes records into Dir, creating it on first use.
type Writer struct {
	Dir string
}

// Write serializes rec to "messa_YYYYMMDD.json" under Dir and returns the
// full path. Italian text and the embedded anchor tags are written verbatim,
// without HTML escaping.
func (w *Writer) Write(rec *mass.Record, date time.Time) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	path := filepath.Join(w.Dir, fmt.Sprintf("messa_%s.json", date.Format("20060102")))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}
	return path, nil
}
