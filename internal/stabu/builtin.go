package stabu

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

//go:embed templates/*.json
var builtinFS embed.FS

// BuiltinNames lists the embedded template names, sorted.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "templates")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		names = append(names, name[:len(name)-len(path.Ext(name))])
	}
	sort.Strings(names)
	return names
}

// LoadBuiltin returns an embedded template by name ("woning").
func LoadBuiltin(name string) (*TemplateSchema, error) {
	data, err := builtinFS.ReadFile("templates/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in template %q", name)
	}
	return ParseSchema(data)
}

// NewWoningBegroting builds the standard residential starter budget.
func NewWoningBegroting(scheduleName string) (*domain.CostSchedule, error) {
	schema, err := LoadBuiltin("woning")
	if err != nil {
		return nil, err
	}
	return Execute(schema, scheduleName)
}
