// Package report renders the derived analytics into an Excel workbook for
// offline review: a scoreboard sheet plus monthly miles, per-hotel nights,
// and per-destination visit breakdowns.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/gilby125/travellog/analytics"
	"github.com/xuri/excelize/v2"
)

// Data is everything the workbook renders.
type Data struct {
	Summary      analytics.Summary
	MonthlyMiles map[string]int
	HotelNights  map[string]int
	Visits       map[string]int
}

// Write renders the workbook to w as xlsx.
func Write(w io.Writer, data Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummary(f, data.Summary); err != nil {
		return err
	}
	if err := writeCounts(f, "Monthly Miles", "Month", "Miles", data.MonthlyMiles); err != nil {
		return err
	}
	if err := writeCounts(f, "Hotels", "Hotel", "Nights", data.HotelNights); err != nil {
		return err
	}
	if err := writeCounts(f, "Destinations", "Destination", "Visits", data.Visits); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("report: dropping default sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: writing workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, summary analytics.Summary) error {
	const sheet = "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("report: creating %s sheet: %w", sheet, err)
	}
	f.SetActiveSheet(index)

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Miles", summary.TotalMiles},
		{"Flights", summary.Flights},
		{"Hotel Nights", summary.HotelNights},
		{"Unique Destinations", summary.UniqueDestinations},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("report: writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// writeCounts writes one key/value breakdown sheet, keys sorted for a
// stable layout.
func writeCounts(f *excelize.File, sheet, keyHeader, valueHeader string, counts map[string]int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("report: creating %s sheet: %w", sheet, err)
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	header := []interface{}{keyHeader, valueHeader}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("report: writing %s header: %w", sheet, err)
	}
	for i, k := range keys {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{k, counts[k]}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("report: writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
