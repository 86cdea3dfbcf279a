// Package report renders assessment results as spreadsheet workbooks.
package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/geosafe/impact-cli/internal/postprocessor"
)

// WriteXLSX writes one indicator per row (name, value, description) to an
// XLSX workbook at path.
func WriteXLSX(path, sheetName string, results []postprocessor.Result) error {
	if sheetName == "" {
		sheetName = "Indicators"
	}
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrapf(err, "report: add sheet %s", sheetName)
	}

	header := sheet.AddRow()
	for _, h := range []string{"Indicator", "Value", "Description"} {
		header.AddCell().Value = h
	}

	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().Value = r.Name
		row.AddCell().SetInt(r.Value)
		row.AddCell().Value = r.Metadata["description"]
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}
	return nil
}
