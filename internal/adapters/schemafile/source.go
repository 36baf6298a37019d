// Package schemafile loads schema elements from a YAML or JSON document.
package schemafile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/laramig/internal/models"
	"github.com/example/laramig/internal/ports/secondary"
)

// document is the on-disk layout:
//
//	views:
//	  - kind: entity
//	    model:
//	      name: users
//	      columns:
//	        - {name: id, type: BIGINT}
//	tables:
//	  - name: posts
//	    columns: [...]
//
// Entries under tables are entity views. A view without a kind is an entity view.
type document struct {
	Views  []models.Element `yaml:"views" json:"views"`
	Tables []models.Table   `yaml:"tables" json:"tables"`
}

// Source implements secondary.SchemaSource for a schema file.
type Source struct {
	path string
}

// NewSource creates a Source reading path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Describe returns the file path.
func (s *Source) Describe() string {
	return s.path
}

// LoadElements reads and decodes the file. Views come first, then tables.
func (s *Source) LoadElements(ctx context.Context) ([]models.Element, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	doc, err := decode(data, strings.ToLower(filepath.Ext(s.path)) == ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", s.path, err)
	}

	return doc.elements(), nil
}

// parse decodes a YAML document from data.
func parse(data []byte) ([]models.Element, error) {
	doc, err := decode(data, false)
	if err != nil {
		return nil, err
	}
	return doc.elements(), nil
}

func decode(data []byte, isJSON bool) (*document, error) {
	var doc document
	if isJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}

	// An empty document decodes to io.EOF, which just means no elements.
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &doc, nil
}

func (d *document) elements() []models.Element {
	elements := make([]models.Element, 0, len(d.Views)+len(d.Tables))
	for _, v := range d.Views {
		if v.Kind == "" && v.Table != nil {
			v.Kind = models.KindEntityView
		}
		elements = append(elements, v)
	}
	for _, t := range d.Tables {
		elements = append(elements, models.EntityView(t))
	}
	return elements
}

var _ secondary.SchemaSource = (*Source)(nil)
