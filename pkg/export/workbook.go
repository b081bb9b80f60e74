package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/facilityplanner/pkg/analytics"
)

const (
	scenarioSheet    = "Scenario"
	scheduleSheet    = "Schedule"
	competitorsSheet = "Competitors"
)

// WriteWorkbook writes the evaluation as an .xlsx workbook with one sheet
// each for the scenario, the schedule and the competitor matrix.
func WriteWorkbook(e *analytics.Evaluation, reportID string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scenarioSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeScenario(f, e, reportID, bold); err != nil {
		return err
	}
	if err := writeSchedule(f, e, bold); err != nil {
		return err
	}
	if err := writeCompetitors(f, e, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeScenario(f *excelize.File, e *analytics.Evaluation, reportID string, bold int) error {
	s := e.Scenario
	rows := [][]any{
		{"Facility Economics", ""},
		{"Report ID", reportID},
		{"Facility", e.Facility.Name},
		{"City Tier", e.Facility.CityTier.Label()},
		{"Market Position", e.Facility.MarketPosition.Label()},
		{"Size (sq ft)", e.Facility.SizeSqFt},
		{"Benchmark Fee (INR)", e.BenchmarkFeeINR},
		{"Capacity (members)", e.Capacity},
		{"Member Count", s.MemberCount},
		{"Monthly Fee (INR)", s.MonthlyFeeINR},
		{"Add-on Spend (INR)", s.AddOnSpendINR},
		{"Membership Revenue", s.MembershipRevenue},
		{"Ancillary Revenue", s.AncillaryRevenue},
		{"Total Revenue", s.TotalRevenue},
		{"Rent Cost", s.RentCostINR},
		{"Gross Margin", s.GrossMargin},
		{"Classification", Title(string(s.Classification))},
		{"Break-even Members", e.BreakEvenMembers},
	}
	if err := setRows(f, scenarioSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(scenarioSheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("styling %s: %w", scenarioSheet, err)
	}
	return f.SetColWidth(scenarioSheet, "A", "A", 24)
}

func writeSchedule(f *excelize.File, e *analytics.Evaluation, bold int) error {
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return fmt.Errorf("creating %s sheet: %w", scheduleSheet, err)
	}
	rows := [][]any{{"Slot", "Start", "Finish", "Segment", "Policy", "Minutes", "Utilization", "Expected Occupancy"}}
	for _, slot := range e.Schedule.Slots {
		rows = append(rows, []any{
			slot.Name, slot.Start, slot.Finish, slot.Segment, Title(string(slot.Policy)),
			slot.DurationMinutes, slot.Utilization, slot.ExpectedOccupancy,
		})
	}
	if err := setRows(f, scheduleSheet, rows); err != nil {
		return err
	}
	return f.SetCellStyle(scheduleSheet, "A1", "H1", bold)
}

func writeCompetitors(f *excelize.File, e *analytics.Evaluation, bold int) error {
	if _, err := f.NewSheet(competitorsSheet); err != nil {
		return fmt.Errorf("creating %s sheet: %w", competitorsSheet, err)
	}
	rows := [][]any{{"Brand", "Position", "Monthly Fee (INR)", "Pool", "Women Only Hrs", "Primary Focus"}}
	for _, c := range e.Competitors {
		rows = append(rows, []any{c.Brand, c.Segment, c.MonthlyFeeINR, c.Pool, c.WomenOnlyHours, c.PrimaryFocus})
	}
	if err := setRows(f, competitorsSheet, rows); err != nil {
		return err
	}
	return f.SetCellStyle(competitorsSheet, "A1", "F1", bold)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}
