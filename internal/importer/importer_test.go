package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

func sampleEntries() []EntryImport {
	return []EntryImport{
		{Code: "12.01.01", Name: "Ontgraven bouwput", Kind: "volume", UnitPrice: 12.50},
		{Code: "22.10.01", Name: "Metselwerk buitenspouwblad", Kind: "area", UnitPrice: 86.50, SFBCode: "21.22"},
	}
}

func TestParsePriceBookFile(t *testing.T) {
	data := `[{"code": "12.01.01", "name": "Ontgraven", "kind": "volume", "unit_price": 12.5}]`

	entries, err := ParsePriceBookFile([]byte(data))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "12.01.01", entries[0].Code)
	assert.InDelta(t, 12.5, entries[0].UnitPrice, 1e-9)
}

func TestParsePriceBookFile_BadJSON(t *testing.T) {
	_, err := ParsePriceBookFile([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestLoadPriceBookFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prijzen.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"code": "x", "name": "y", "unit_price": 1}]`), 0o644))

	entries, err := LoadPriceBookFile(path)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadPriceBookFile_Missing(t *testing.T) {
	_, err := LoadPriceBookFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidateEntries_Valid(t *testing.T) {
	assert.Empty(t, ValidateEntries(sampleEntries()))
}

func TestValidateEntries_CatchesErrors(t *testing.T) {
	entries := []EntryImport{
		{Code: "", Name: "Naamloos", UnitPrice: 1},
		{Code: "12.01", Name: "", UnitPrice: -5, Kind: "furlong"},
		{Code: "12.01", Name: "Dubbel", UnitPrice: 1},
	}

	errs := ValidateEntries(entries)

	require.Len(t, errs, 5)
	assert.ErrorContains(t, errs[0], "code is required")
	assert.ErrorContains(t, errs[1], "name is required")
	assert.ErrorContains(t, errs[2], "unit_price must not be negative")
	assert.ErrorContains(t, errs[3], `unknown kind "furlong"`)
	assert.ErrorContains(t, errs[4], "duplicate code")
}

func TestValidateEntries_EmptyFile(t *testing.T) {
	errs := ValidateEntries(nil)

	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "no entries")
}

func TestConvertEntries(t *testing.T) {
	converted, err := ConvertEntries(sampleEntries())

	require.NoError(t, err)
	require.Len(t, converted, 2)
	assert.Equal(t, domain.QuantityVolume, converted[0].Kind)
	assert.Equal(t, domain.QuantityArea, converted[1].Kind)
	assert.Equal(t, "21.22", converted[1].SFBCode)
	assert.Empty(t, converted[0].ID)
}

func TestConvertEntries_DefaultsKindToCount(t *testing.T) {
	converted, err := ConvertEntries([]EntryImport{{Code: "x", Name: "y", UnitPrice: 1}})

	require.NoError(t, err)
	assert.Equal(t, domain.QuantityCount, converted[0].Kind)
}

func TestConvertEntries_InvalidInput(t *testing.T) {
	_, err := ConvertEntries([]EntryImport{{Code: "", Name: "", UnitPrice: -1}})

	require.Error(t, err)
	assert.ErrorContains(t, err, "import validation failed (3 errors)")
}
