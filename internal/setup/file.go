package setup

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a setup file: an optional save name followed
// by the record groups.
//
//	name: Monza qualifying
//	driver:
//	  name: Alice
//	  age: 28
//	  experience: Pro
//	wheels:
//	  tire_compound: Soft
//	  tire_pressure: 18
//	...
type File struct {
	Name   string `yaml:"name,omitempty"`
	Record `yaml:",inline"`
}

// ParseFile decodes a setup file. Unknown keys are an error.
func ParseFile(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode setup file: %w", err)
	}
	f.Name = NormalizeText(f.Name)
	f.Record = f.Record.Normalize()
	return f, nil
}

// LoadFile reads and decodes the setup file at path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read setup file: %w", err)
	}
	return ParseFile(data)
}
