package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// EntryImport defines a single price book entry in the import file. The
// file itself is a plain JSON array of these.
type EntryImport struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	SFBCode     string  `json:"sfb_code,omitempty"`
	Kind        string  `json:"kind,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
}

// LoadPriceBookFile reads and parses a price book import file from disk.
func LoadPriceBookFile(path string) ([]EntryImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParsePriceBookFile(data)
}

// ParsePriceBookFile parses raw JSON import data.
func ParsePriceBookFile(data []byte) ([]EntryImport, error) {
	var entries []EntryImport
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return entries, nil
}
