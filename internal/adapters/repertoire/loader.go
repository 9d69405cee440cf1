// Package repertoire loads the hymn repertoire file. The file is a JSON
// document with a single "canti" array; the record format is the external
// collaborator contract, the index build owns all normalization.
package repertoire

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mrparsing/suggerimento-canti/internal/domain/hymnal"
)

type repertoireFile struct {
	Canti []hymnal.RawEntry `json:"canti"`
}

// Load reads and decodes the repertoire at path.
func Load(path string) ([]hymnal.RawEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read repertoire: %w", err)
	}
	var f repertoireFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode repertoire %s: %w", path, err)
	}
	return f.Canti, nil
}
