// Package stabu generates starter budgets from JSON chapter templates
// following the Dutch STABU work-section classification.
package stabu

import (
	"encoding/json"
	"fmt"
	"os"
)

// TemplateSchema is the top-level JSON template structure.
type TemplateSchema struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description,omitempty"`
	VATRate     *float64        `json:"vat_rate,omitempty"`
	Chapters    []ChapterConfig `json:"chapters"`
}

type ChapterConfig struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Posts       []PostConfig `json:"posts,omitempty"`
}

// PostConfig is one line under a chapter. A post with "text" set renders
// as a remark row without quantity or price.
type PostConfig struct {
	Code      string  `json:"code,omitempty"`
	Name      string  `json:"name,omitempty"`
	Text      string  `json:"text,omitempty"`
	SFBCode   string  `json:"sfb_code,omitempty"`
	Kind      string  `json:"kind,omitempty"`
	Quantity  float64 `json:"quantity,omitempty"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

// LoadSchema reads and parses a template JSON file.
func LoadSchema(path string) (*TemplateSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema parses raw template JSON.
func ParseSchema(data []byte) (*TemplateSchema, error) {
	var schema TemplateSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &schema, nil
}
