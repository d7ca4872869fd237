// Package importer reads task lists from JSON files, validates them as a
// whole and converts them into domain tasks.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ImportSchema is the top-level JSON structure for a task import.
type ImportSchema struct {
	Tasks []TaskImport `json:"tasks"`
}

// TaskImport is one task in the import file. Due takes YYYY-MM-DD or
// RFC 3339. An empty ID is assigned on conversion.
type TaskImport struct {
	ID               string `json:"id,omitempty"`
	Course           string `json:"course"`
	Title            string `json:"title"`
	Due              string `json:"due"`
	Effort           string `json:"effort"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// LoadImportSchema reads and parses a task import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseImportSchema(f)
}

// ParseImportSchema decodes an import document. Unknown fields are rejected
// so that typos surface instead of silently dropping data.
func ParseImportSchema(r io.Reader) (*ImportSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
