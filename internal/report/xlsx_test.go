package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/geosafe/impact-cli/internal/postprocessor"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	results := []postprocessor.Result{
		{Name: "Total", Value: 1000},
		{Name: "Weekly hygiene packs", Value: 397, Metadata: map[string]string{"description": "Females hygiene packs for weekly use"}},
	}

	require.NoError(t, WriteXLSX(path, "flood", results))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	sheet := f.Sheets[0]
	assert.Equal(t, "flood", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "Indicator", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Total", sheet.Rows[1].Cells[0].Value)

	v, err := sheet.Rows[1].Cells[1].Int()
	require.NoError(t, err)
	assert.Equal(t, 1000, v)

	assert.Equal(t, "Females hygiene packs for weekly use", sheet.Rows[2].Cells[2].Value)
}

func TestWriteXLSXDefaultSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, "", nil))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	assert.Equal(t, "Indicators", f.Sheets[0].Name)
}
