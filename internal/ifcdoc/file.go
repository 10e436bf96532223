package ifcdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExtension is enforced on every save.
const FileExtension = ".ifcjson"

// Handler owns the lifecycle of one interchange document: new, open,
// save, close, plus the modified flag the editor shows in its title. The
// cost tree itself never sees a file path.
type Handler struct {
	doc      *Document
	path     string
	modified bool
}

// NewHandler returns a handler with no document loaded.
func NewHandler() *Handler {
	return &Handler{}
}

// Document returns the current document, or nil when none is loaded.
func (h *Handler) Document() *Document {
	return h.doc
}

// Path returns the file path of the current document; empty for a new
// unsaved document.
func (h *Handler) Path() string {
	return h.path
}

// IsModified reports whether the document changed since the last save.
func (h *Handler) IsModified() bool {
	return h.modified
}

// MarkModified flags the document as changed.
func (h *Handler) MarkModified() {
	h.modified = true
}

// New creates a fresh document with the basic project structure and no
// file path yet.
func (h *Handler) New(projectName string) *Document {
	if projectName == "" {
		projectName = "Bouwkosten Begroting"
	}
	h.doc = &Document{
		Schema:  SchemaVersion,
		Project: ProjectRecord{Name: projectName},
	}
	h.path = ""
	h.modified = true
	return h.doc
}

// Open reads an existing document from disk.
func (h *Handler) Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	h.doc = &doc
	h.path = path
	h.modified = false
	return h.doc, nil
}

// Save writes the document. A non-empty path performs "save as"; the
// recorded path is reused otherwise. The file extension is enforced.
// Returns the path actually written.
func (h *Handler) Save(path string) (string, error) {
	if h.doc == nil {
		return "", fmt.Errorf("no document to save")
	}
	if path != "" {
		h.path = path
	}
	if h.path == "" {
		return "", fmt.Errorf("no file path given")
	}
	if !strings.EqualFold(filepath.Ext(h.path), FileExtension) {
		h.path = strings.TrimSuffix(h.path, filepath.Ext(h.path)) + FileExtension
	}

	data, err := json.MarshalIndent(h.doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}
	h.modified = false
	return h.path, nil
}

// Close drops the current document and path.
func (h *Handler) Close() {
	h.doc = nil
	h.path = ""
	h.modified = false
}
