package importer

import (
	"fmt"
	"strings"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// validKinds accepts the short kind names and the full IFC class names,
// matching what ParseQuantityKind understands.
var validKinds = func() map[string]bool {
	m := map[string]bool{"": true}
	for _, k := range domain.AllQuantityKinds {
		m[strings.ToLower(string(k))] = true
		m[strings.ToLower(strings.TrimPrefix(string(k), "IfcQuantity"))] = true
	}
	return m
}()

// ValidateEntries checks import entries before conversion. Returns a slice
// of all validation errors found.
func ValidateEntries(entries []EntryImport) []error {
	var errs []error

	if len(entries) == 0 {
		errs = append(errs, fmt.Errorf("import file contains no entries"))
	}

	seen := make(map[string]bool)
	for i, e := range entries {
		prefix := fmt.Sprintf("entry %d", i+1)
		if e.Code != "" {
			prefix = fmt.Sprintf("entry %q", e.Code)
		}

		if e.Code == "" {
			errs = append(errs, fmt.Errorf("%s: code is required", prefix))
		} else if seen[e.Code] {
			errs = append(errs, fmt.Errorf("%s: duplicate code", prefix))
		}
		seen[e.Code] = true

		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if e.UnitPrice < 0 {
			errs = append(errs, fmt.Errorf("%s: unit_price must not be negative", prefix))
		}
		if !validKinds[strings.ToLower(e.Kind)] {
			errs = append(errs, fmt.Errorf("%s: unknown kind %q", prefix, e.Kind))
		}
	}

	return errs
}
