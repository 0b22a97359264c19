// Package export holds the one-shot output flows: the static HTML map and
// the XLSX data table. Neither is part of the reactive pipeline; both are
// plain batch transforms over the loaded dataset.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
)

const tableSheet = "TB Burden"

// WriteTableXLSX writes the aggregated country table as a workbook. Means
// arrive unrounded and are written as-is; display rounding is left to the
// spreadsheet.
func WriteTableXLSX(w io.Writer, rows []stats.CountryRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(tableSheet)
	if err != nil {
		return fmt.Errorf("fail to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("fail to drop default sheet: %w", err)
	}

	headers := []string{
		"Country", "Region",
		"Mean prevalence per 100k", "Mean mortality per 100k", "Mean incidence per 100k",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(tableSheet, cell, h); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		values := []any{row.Country, row.Region, cellValue(row.Prevalence), cellValue(row.Mortality), cellValue(row.Incidence)}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(tableSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func cellValue(v *float64) any {
	if v == nil {
		return "N/A"
	}
	return *v
}
