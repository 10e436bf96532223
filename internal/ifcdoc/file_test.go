package ifcdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_NewDocument(t *testing.T) {
	h := NewHandler()
	doc := h.New("")

	assert.Equal(t, SchemaVersion, doc.Schema)
	assert.Equal(t, "Bouwkosten Begroting", doc.Project.Name)
	assert.Empty(t, h.Path())
	assert.True(t, h.IsModified())
}

func TestHandler_SaveEnforcesExtension(t *testing.T) {
	h := NewHandler()
	h.New("Woning")

	dir := t.TempDir()
	written, err := h.Save(filepath.Join(dir, "begroting.json"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "begroting.ifcjson"), written)
	assert.False(t, h.IsModified())
	_, statErr := os.Stat(written)
	assert.NoError(t, statErr)
}

func TestHandler_SaveWithoutDocument(t *testing.T) {
	h := NewHandler()
	_, err := h.Save("x.ifcjson")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document")
}

func TestHandler_SaveWithoutPath(t *testing.T) {
	h := NewHandler()
	h.New("Woning")
	_, err := h.Save("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file path")
}

func TestHandler_OpenRoundTrip(t *testing.T) {
	h := NewHandler()
	doc := h.New("Woning")
	doc.CostSchedules = append(doc.CostSchedules, EncodeSchedule(sampleSchedule()))
	doc.SaveProjectData(ProjectData{ClientName: "Fam. Jansen", ContractorKvK: "12345678"})

	path, err := h.Save(filepath.Join(t.TempDir(), "begroting.ifcjson"))
	require.NoError(t, err)

	h2 := NewHandler()
	loaded, err := h2.Open(path)
	require.NoError(t, err)
	require.Len(t, loaded.CostSchedules, 1)
	assert.False(t, h2.IsModified())
	assert.Equal(t, path, h2.Path())

	data := loaded.LoadProjectData()
	assert.Equal(t, "Fam. Jansen", data.ClientName)
	assert.Equal(t, "12345678", data.ContractorKvK)

	schedule := DecodeSchedule(loaded.CostSchedules[0])
	assert.Equal(t, "Woning Catalogus", schedule.Name)
	assert.InDelta(t, 1062.5+3720, schedule.Subtotal(), 1e-9)
}

func TestHandler_OpenMissingFile(t *testing.T) {
	h := NewHandler()
	_, err := h.Open(filepath.Join(t.TempDir(), "bestaat-niet.ifcjson"))
	require.Error(t, err)
}

func TestHandler_Close(t *testing.T) {
	h := NewHandler()
	h.New("Woning")
	h.Close()

	assert.Nil(t, h.Document())
	assert.Empty(t, h.Path())
	assert.False(t, h.IsModified())
}
