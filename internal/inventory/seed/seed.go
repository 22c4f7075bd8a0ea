package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
)

// File is the YAML layout of a seed fixture.
type File struct {
	Projects []domain.Draft `yaml:"projects"`
}

// LoadFile reads and validates a seed fixture. An empty path yields no drafts.
func LoadFile(path string) ([]domain.Draft, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(bytes.NewReader(b))
}

// Parse decodes a fixture and normalizes and validates every draft the same way the API does.
func Parse(r io.Reader) ([]domain.Draft, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make([]domain.Draft, 0, len(f.Projects))
	for i, d := range f.Projects {
		d = d.Normalize()
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("seed project #%d (%q): %w", i+1, d.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}
