// Package seed loads employee rosters used to pre-populate the registry.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/locvowork/employee_registry/internal/service"
)

// Roster is the layout of a seed file:
//
//	employees:
//	  - {id: 1, name: Alice, age: 40, role: manager, salary: 1000}
type Roster struct {
	Employees []service.HireRequest `yaml:"employees"`
}

// LoadRoster reads a YAML roster file.
func LoadRoster(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	roster, err := DecodeRoster(f)
	if err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}
	return roster, nil
}

// DecodeRoster parses a roster from r. An empty document yields an empty roster.
func DecodeRoster(r io.Reader) (*Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &roster, nil
}
