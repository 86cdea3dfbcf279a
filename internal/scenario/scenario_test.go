package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
name: flood-split
input: roads.shp
splitter: flood_zone.shp
crs: EPSG:4326
mark:
  field: affected
  value: 1
output: roads_split.shp
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flood-split", s.Name)
	assert.Equal(t, "roads.shp", s.Input)
	assert.Equal(t, "flood_zone.shp", s.Splitter)
	require.NotNil(t, s.Mark)
	assert.Equal(t, "affected", s.Mark.Field)
	assert.Equal(t, 1, s.Mark.Value)
	assert.Equal(t, "roads_split.shp", s.Output)
}

func TestLoadWithoutMark(t *testing.T) {
	path := writeScenario(t, `
input: roads.shp
splitter: flood_zone.shp
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, s.Mark)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing input", content: "splitter: a.shp\n"},
		{name: "missing splitter", content: "input: a.shp\n"},
		{name: "mark without field", content: "input: a.shp\nsplitter: b.shp\nmark:\n  value: 1\n"},
		{name: "malformed yaml", content: ":\n  - ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
