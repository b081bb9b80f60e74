package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ChicagoDave/facilityplanner/pkg/analytics"
	"github.com/ChicagoDave/facilityplanner/pkg/revenue"
)

// WritePDF writes a one-page feasibility summary.
func WritePDF(e *analytics.Evaluation, reportID string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(180, 10, "Facility Feasibility (Monthly)")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(180, 6, "Report ID: "+reportID)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(180, 8, "Concept")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, kv := range [][2]string{
		{"Facility", e.Facility.Name},
		{"City tier", e.Facility.CityTier.Label()},
		{"Market position", e.Facility.MarketPosition.Label()},
		{"Size", fmt.Sprintf("%.0f sq ft", e.Facility.SizeSqFt)},
		{"Capacity guidance", fmt.Sprintf("%d active members", e.Capacity)},
		{"Benchmark fee", PlainINR(float64(e.BenchmarkFeeINR))},
	} {
		pdf.CellFormat(60, 6, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(120, 6, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	s := e.Scenario
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(180, 8, "Revenue vs Rent")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 7, "Line", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 7, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range []struct {
		label string
		v     float64
	}{
		{fmt.Sprintf("Membership (%d x %s)", s.MemberCount, PlainINR(s.MonthlyFeeINR)), s.MembershipRevenue},
		{fmt.Sprintf("Add-on spend (%d x %s)", s.MemberCount, PlainINR(s.AddOnSpendINR)), s.AncillaryRevenue},
		{"Total revenue", s.TotalRevenue},
		{"Rent", s.RentCostINR},
		{"Gross margin (pre-staff/ops)", s.GrossMargin},
	} {
		pdf.CellFormat(90, 7, line.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, PlainINR(line.v), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	if s.Classification == revenue.Deficit {
		pdf.SetTextColor(180, 0, 0)
		pdf.MultiCell(180, 6, fmt.Sprintf("Deficit: rent exceeds revenue. Break-even needs %d members at this price.", e.BreakEvenMembers), "", "L", false)
	} else {
		pdf.SetTextColor(0, 120, 0)
		pdf.MultiCell(180, 6, fmt.Sprintf("Positive gross margin. Keep staff/ops costs under %s.", PlainINR(e.OpsBudgetINR)), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if e.Schedule != nil && len(e.Schedule.Slots) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(180, 8, "Schedule")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for _, slot := range e.Schedule.Slots {
			pdf.CellFormat(30, 6, slot.Start+"-"+slot.Finish, "1", 0, "L", false, 0, "")
			pdf.CellFormat(110, 6, slot.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("~%d members", slot.ExpectedOccupancy), "1", 1, "R", false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
