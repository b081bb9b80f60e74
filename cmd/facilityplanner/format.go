package main

import (
	"fmt"

	"github.com/ChicagoDave/facilityplanner/pkg/analytics"
	"github.com/ChicagoDave/facilityplanner/pkg/export"
	"github.com/ChicagoDave/facilityplanner/pkg/revenue"
	"github.com/ChicagoDave/facilityplanner/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printEvaluation(e *analytics.Evaluation) {
	f := e.Facility
	title := f.Name
	if title == "" {
		title = "Facility Economics"
	}
	fmt.Println(title)
	fmt.Println("===================================")
	fmt.Printf("  City tier:              %s\n", f.CityTier.Label())
	fmt.Printf("  Market position:        %s\n", f.MarketPosition.Label())
	fmt.Printf("  Size:                   %.0f sq ft\n", f.SizeSqFt)
	fmt.Printf("  Benchmark fee:          %s / month\n", export.FormatINR(float64(e.BenchmarkFeeINR)))
	fmt.Printf("  Capacity guidance:      %d members (range %d-%d)\n", e.Capacity, e.MemberRangeMin, e.MemberRangeMax)
	fmt.Println()

	printScenario(e.Scenario)

	fmt.Println()
	if e.BreakEvenReachable {
		fmt.Printf("  Break-even members:     %d\n", e.BreakEvenMembers)
	} else {
		fmt.Println("  Break-even members:     unreachable at this fee")
	}
	if e.Scenario.Classification == revenue.Positive {
		fmt.Printf("  Ops budget (50%% margin): %s\n", export.FormatINR(e.OpsBudgetINR))
	}

	fmt.Println()
	printSchedule(e)

	fmt.Println()
	printCompetitors(e)
}

func printScenario(s revenue.Scenario) {
	fmt.Println("Monthly Scenario")
	fmt.Println("----------------")
	fmt.Printf("  Members:                %d\n", s.MemberCount)
	fmt.Printf("  Monthly fee:            %s\n", export.FormatINR(s.MonthlyFeeINR))
	fmt.Printf("  Add-on spend:           %s\n", export.FormatINR(s.AddOnSpendINR))
	fmt.Printf("  Membership revenue:     %s (%s)\n", export.FormatINR(s.MembershipRevenue), compactINR(s.MembershipRevenue))
	fmt.Printf("  Ancillary revenue:      %s (%s)\n", export.FormatINR(s.AncillaryRevenue), compactINR(s.AncillaryRevenue))
	fmt.Printf("  Total revenue:          %s (%s)\n", export.FormatINR(s.TotalRevenue), compactINR(s.TotalRevenue))
	fmt.Printf("  Rent:                   %s (%s)\n", export.FormatINR(s.RentCostINR), compactINR(s.RentCostINR))
	fmt.Printf("  Gross margin:           %s (%s)\n", export.FormatINR(s.GrossMargin), compactINR(s.GrossMargin))
	fmt.Printf("  Result:                 %s\n", s.Classification)
}

func printSchedule(e *analytics.Evaluation) {
	p := e.Schedule
	if p == nil || len(p.Slots) == 0 {
		fmt.Println("No schedule.")
		return
	}

	fmt.Println("Daily Schedule")
	fmt.Println("--------------")
	fmt.Printf("%-40s %-11s %-16s %6s %9s\n", "Block", "Time", "Policy", "Util", "Occupancy")
	fmt.Printf("%-40s %-11s %-16s %6s %9s\n",
		"----------------------------------------", "-----------", "----------------", "------", "---------")
	for _, s := range p.Slots {
		fmt.Printf("%-40s %-11s %-16s %5.0f%% %9d\n",
			truncate(s.Name, 40), s.Start+"-"+s.Finish, s.Policy, s.Utilization*100, s.ExpectedOccupancy)
	}
	fmt.Println()
	fmt.Printf("  Open minutes:           %d\n", p.OpenMinutes)
	fmt.Printf("  Weighted utilization:   %.1f%%\n", p.WeightedUtilization*100)
	fmt.Printf("  Peak slot:              %s\n", p.PeakSlot)

	for _, s := range p.Slots {
		if s.Advice != "" {
			fmt.Printf("  * %s: %s\n", s.Name, s.Advice)
		}
	}
}

func printCompetitors(e *analytics.Evaluation) {
	fmt.Println("Competitive Benchmark")
	fmt.Println("---------------------")
	fmt.Printf("%-22s %-22s %12s\n", "Brand", "Segment", "Monthly fee")
	for _, c := range e.Competitors {
		fmt.Printf("%-22s %-22s %12s\n", truncate(c.Brand, 22), truncate(c.Segment, 22), export.FormatINR(float64(c.MonthlyFeeINR)))
	}
	if e.PoolGap {
		fmt.Println()
		fmt.Println("  * Market gap: a clean mid-range pool sits between YMCA and David Lloyd.")
	}
}

// compactINR renders an amount in lakh/crore units.
func compactINR(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1_00_00_000:
		return fmt.Sprintf("%s%.2f Cr", sign, v/1_00_00_000)
	case v >= 1_00_000:
		return fmt.Sprintf("%s%.2f L", sign, v/1_00_000)
	case v >= 1_000:
		return fmt.Sprintf("%s%.0fK", sign, v/1_000)
	}
	return fmt.Sprintf("%s%.0f", sign, v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
