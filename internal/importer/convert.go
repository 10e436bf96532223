package importer

import (
	"fmt"
	"strings"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// ConvertEntries validates and converts import entries into domain form.
// IDs and timestamps are filled in by the price book service on insert.
func ConvertEntries(entries []EntryImport) ([]*domain.PriceBookEntry, error) {
	if errs := ValidateEntries(entries); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted := make([]*domain.PriceBookEntry, len(entries))
	for i, e := range entries {
		converted[i] = &domain.PriceBookEntry{
			Code:        e.Code,
			Name:        e.Name,
			Description: e.Description,
			SFBCode:     e.SFBCode,
			Kind:        domain.ParseQuantityKind(e.Kind),
			UnitPrice:   e.UnitPrice,
		}
	}
	return converted, nil
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = "  - " + err.Error()
	}
	return fmt.Errorf("import validation failed (%d errors):\n%s", len(errs), strings.Join(msgs, "\n"))
}
