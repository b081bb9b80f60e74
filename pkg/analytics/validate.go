package analytics

import (
	"fmt"

	"github.com/ChicagoDave/facilityplanner/pkg/market"
	"github.com/ChicagoDave/facilityplanner/pkg/revenue"
	"github.com/ChicagoDave/facilityplanner/pkg/validation"
)

// validateAnalytical attaches findings about the evaluated scenario.
// None of them change the numbers.
func validateAnalytical(e *Evaluation, report *validation.Report) {
	validateMemberLoad(e, report)
	validateMargin(e, report)
	validateFeeVsBenchmark(e, report)
	validatePoolGap(e, report)
}

func validateMemberLoad(e *Evaluation, report *validation.Report) {
	members := e.Scenario.MemberCount
	switch {
	case members > e.MemberRangeMax:
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("member count %d is beyond the explorable range (2x capacity of %d)", members, e.Capacity),
			SpecPath:    "scenario.member_count",
			ActualValue: members,
			Expected:    fmt.Sprintf("<= %d", e.MemberRangeMax),
			Suggestions: []string{
				"Increase facility.size_sqft",
				"Treat this scenario as a stress test only",
			},
		})
	case members > e.Capacity:
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("member count %d exceeds capacity guidance of %d active members", members, e.Capacity),
			SpecPath:    "scenario.member_count",
			ActualValue: members,
			Expected:    fmt.Sprintf("<= %d", e.Capacity),
		})
	}
}

func validateMargin(e *Evaluation, report *validation.Report) {
	s := e.Scenario
	if s.Classification == revenue.Deficit {
		suggestions := []string{"Increase member density or raise prices"}
		if e.BreakEvenReachable {
			suggestions = append(suggestions,
				fmt.Sprintf("Break-even needs at least %d members at this fee and add-on spend", e.BreakEvenMembers))
		}
		report.AddWarning(validation.Result{
			Level:        validation.LevelAnalytical,
			Message:      fmt.Sprintf("estimated rent %.0f exceeds revenue %.0f", s.RentCostINR, s.TotalRevenue),
			SpecPath:     "scenario",
			ActualValue:  s.GrossMargin,
			Expected:     ">= 0 gross margin",
			ConflictWith: "facility.size_sqft",
			Suggestions:  suggestions,
		})
		return
	}
	report.AddInfo(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("positive gross margin %.0f; keep staff and operations costs under %.0f", s.GrossMargin, e.OpsBudgetINR),
		SpecPath:    "scenario",
		ActualValue: s.GrossMargin,
	})
}

func validateFeeVsBenchmark(e *Evaluation, report *validation.Report) {
	fee := e.Scenario.MonthlyFeeINR
	bench := float64(e.BenchmarkFeeINR)
	if fee < bench*0.5 || fee > bench*2 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("monthly fee %.0f is far from the %s benchmark of %d", fee, e.Facility.MarketPosition.Label(), e.BenchmarkFeeINR),
			SpecPath:    "scenario.monthly_fee_inr",
			ActualValue: fee,
			Expected:    fmt.Sprintf("%.0f-%.0f", bench*0.5, bench*2),
		})
	}
}

func validatePoolGap(e *Evaluation, report *validation.Report) {
	if !e.PoolGap {
		return
	}
	report.AddInfo(validation.Result{
		Level: validation.LevelAnalytical,
		Message: fmt.Sprintf("a clean mid-range pool facility at %d-%d/month is an under-served niche between budget and luxury pools",
			market.PoolNicheMinINR, market.PoolNicheMaxINR),
		SpecPath:    "facility.amenities",
		ActualValue: e.Scenario.MonthlyFeeINR,
	})
}
