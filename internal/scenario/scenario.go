// Package scenario loads YAML descriptions of vector split jobs.
package scenario

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Scenario describes one split job: the input layer, how the splitting
// polygon is obtained, and the optional mark directive for the output.
type Scenario struct {
	Name     string      `yaml:"name"`
	Input    string      `yaml:"input"`    // source layer shapefile
	Splitter string      `yaml:"splitter"` // polygon layer shapefile, dissolved before use
	CRS      string      `yaml:"crs"`
	Mark     *MarkConfig `yaml:"mark,omitempty"`
	Output   string      `yaml:"output"`
}

// MarkConfig names the integer field tagging inside/outside parts.
type MarkConfig struct {
	Field string `yaml:"field"`
	Value int    `yaml:"value"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "scenario: read %s", path)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrapf(err, "scenario: parse %s", path)
	}
	if s.Input == "" || s.Splitter == "" {
		return nil, eris.Errorf("scenario: %s must set input and splitter", path)
	}
	if s.Mark != nil && s.Mark.Field == "" {
		return nil, eris.Errorf("scenario: %s mark requires a field name", path)
	}
	return &s, nil
}
