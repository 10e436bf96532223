package stabu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

func minimalSchema() *TemplateSchema {
	return &TemplateSchema{
		ID:   "test",
		Name: "Testsjabloon",
		Chapters: []ChapterConfig{
			{
				Code: "12",
				Name: "Grondwerk",
				Posts: []PostConfig{
					{Name: "Ontgraven", Kind: "volume", Quantity: 85, UnitPrice: 12.50},
					{Text: "Inclusief afvoer"},
				},
			},
		},
	}
}

func TestValidateSchema_Minimal(t *testing.T) {
	assert.Empty(t, ValidateSchema(minimalSchema()))
}

func TestValidateSchema_CatchesErrors(t *testing.T) {
	bad := &TemplateSchema{
		Chapters: []ChapterConfig{
			{Code: "12", Name: "Grondwerk"},
			{Code: "12", Name: "Dubbel"},
			{Code: "20", Posts: []PostConfig{{Quantity: -1}}},
		},
	}

	errs := ValidateSchema(bad)

	require.NotEmpty(t, errs)
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	assert.Contains(t, msgs, "template id is required")
	assert.Contains(t, msgs, `chapter[1]: duplicate code "12"`)
	assert.Contains(t, msgs, "chapter[2]: name is required")
	assert.Contains(t, msgs, "chapter[2] post[0]: name or text is required")
	assert.Contains(t, msgs, "chapter[2] post[0]: quantity must not be negative")
}

func TestExecute_BuildsTree(t *testing.T) {
	schedule, err := Execute(minimalSchema(), "")

	require.NoError(t, err)
	assert.Equal(t, "Testsjabloon", schedule.Name)
	require.Len(t, schedule.Items, 1)

	chapter := schedule.Items[0]
	assert.Equal(t, "12", chapter.Identification)
	require.Len(t, chapter.Children, 2)

	post := chapter.Children[0]
	assert.Equal(t, "12.01", post.Identification)
	assert.Equal(t, domain.QuantityVolume, post.Value.Kind)
	assert.InDelta(t, 1062.50, post.Subtotal(), 0.001)
	assert.True(t, chapter.Children[1].IsTextOnly)
}

func TestExecute_ScheduleNameOverride(t *testing.T) {
	schedule, err := Execute(minimalSchema(), "Villa Zuiderzand")

	require.NoError(t, err)
	assert.Equal(t, "Villa Zuiderzand", schedule.Name)
}

func TestExecute_InvalidSchema(t *testing.T) {
	_, err := Execute(&TemplateSchema{}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template validation failed")
}

func TestLoadSchema_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eigen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"id": "eigen", "name": "Eigen sjabloon",
		"chapters": [{"code": "12", "name": "Grondwerk"}]
	}`), 0644))

	schema, err := LoadSchema(path)

	require.NoError(t, err)
	assert.Equal(t, "eigen", schema.ID)
	assert.Empty(t, ValidateSchema(schema))
}

func TestLoadSchema_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kapot.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadSchema(path)

	assert.Error(t, err)
}

func TestBuiltins_LoadAndValidate(t *testing.T) {
	names := BuiltinNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "woning")

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			schema, err := LoadBuiltin(name)
			require.NoError(t, err)
			assert.Empty(t, ValidateSchema(schema))
			require.NotEmpty(t, schema.Chapters)
		})
	}
}

func TestNewWoningBegroting(t *testing.T) {
	schedule, err := NewWoningBegroting("Nieuwbouw Kerkstraat 12")

	require.NoError(t, err)
	assert.Equal(t, "Nieuwbouw Kerkstraat 12", schedule.Name)
	assert.InDelta(t, 21, schedule.VATRate, 0.001)
	assert.GreaterOrEqual(t, schedule.ChapterCount(), 10)
	assert.Positive(t, schedule.Subtotal())

	grondwerk := schedule.FindByIdentification("12")
	require.NotNil(t, grondwerk)
	assert.Equal(t, "Grondwerk", grondwerk.Name)
}

func TestLoadBuiltin_Unknown(t *testing.T) {
	_, err := LoadBuiltin("kantoorpand")

	assert.Error(t, err)
}
