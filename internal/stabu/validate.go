package stabu

import "fmt"

// ValidateSchema checks a TemplateSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *TemplateSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("template id is required"))
	}
	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if len(schema.Chapters) == 0 {
		errs = append(errs, fmt.Errorf("at least one chapter is required"))
	}
	if schema.VATRate != nil && (*schema.VATRate < 0 || *schema.VATRate > 100) {
		errs = append(errs, fmt.Errorf("vat_rate must be between 0 and 100"))
	}

	codes := map[string]bool{}
	for i, ch := range schema.Chapters {
		if ch.Code == "" {
			errs = append(errs, fmt.Errorf("chapter[%d]: code is required", i))
		}
		if ch.Name == "" {
			errs = append(errs, fmt.Errorf("chapter[%d]: name is required", i))
		}
		if codes[ch.Code] {
			errs = append(errs, fmt.Errorf("chapter[%d]: duplicate code %q", i, ch.Code))
		}
		codes[ch.Code] = true

		for j, p := range ch.Posts {
			if p.Text != "" {
				continue
			}
			if p.Name == "" {
				errs = append(errs, fmt.Errorf("chapter[%d] post[%d]: name or text is required", i, j))
			}
			if p.Quantity < 0 {
				errs = append(errs, fmt.Errorf("chapter[%d] post[%d]: quantity must not be negative", i, j))
			}
			if p.UnitPrice < 0 {
				errs = append(errs, fmt.Errorf("chapter[%d] post[%d]: unit_price must not be negative", i, j))
			}
		}
	}

	return errs
}
