// Package analytics runs the one-way evaluation pipeline for a facility
// project: benchmark fee, capacity, revenue scenario, schedule and market
// position, with analytical findings on the result.
package analytics

import (
	"math"

	"github.com/ChicagoDave/facilityplanner/pkg/market"
	"github.com/ChicagoDave/facilityplanner/pkg/pricing"
	"github.com/ChicagoDave/facilityplanner/pkg/revenue"
	"github.com/ChicagoDave/facilityplanner/pkg/schedule"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
	"github.com/ChicagoDave/facilityplanner/pkg/validation"
)

// Options supplies replaceable reference data. Zero values use the built-ins.
type Options struct {
	Table       pricing.Table
	Competitors []market.Competitor
}

// Evaluation is everything derived from one facility project.
type Evaluation struct {
	Facility spec.FacilityConcept `json:"facility"`

	BenchmarkFeeINR int     `json:"benchmark_fee_inr"`
	Capacity        int     `json:"capacity"`
	MemberRangeMin  int     `json:"member_range_min"`
	MemberRangeMax  int     `json:"member_range_max"`
	DefaultAddOnINR float64 `json:"default_add_on_inr"`

	Scenario           revenue.Scenario `json:"scenario"`
	BreakEvenMembers   int              `json:"break_even_members"`
	BreakEvenReachable bool             `json:"break_even_reachable"`
	OpsBudgetINR       float64          `json:"ops_budget_inr"`

	Schedule    *schedule.Plan      `json:"schedule"`
	Competitors []market.Competitor `json:"competitors"`
	Standing    market.Standing     `json:"standing"`
	PoolGap     bool                `json:"pool_gap"`
}

// Resolve evaluates s. Scenario overrides in s replace the benchmark
// defaults; each default is computed fresh on every call.
// A non-nil error means an input was out of domain and nothing was computed
// past that point.
func Resolve(s *spec.FacilitySpec, opts Options) (*Evaluation, *validation.Report, error) {
	report := validation.NewReport()
	table := opts.Table
	if table == nil {
		table = pricing.DefaultTable()
	}
	competitors := opts.Competitors
	if competitors == nil {
		competitors = market.DefaultCompetitors()
	}
	f := s.Facility

	// 1. Pricing
	fee, err := table.BaseFee(f.CityTier, f.MarketPosition)
	if err != nil {
		return nil, report, err
	}
	addOn, err := pricing.DefaultAddOnSpend(f.MarketPosition)
	if err != nil {
		return nil, report, err
	}

	// 2. Capacity
	capacity, err := revenue.EstimateCapacity(f.SizeSqFt)
	if err != nil {
		return nil, report, err
	}
	lo, hi := revenue.MemberRange(capacity)

	// 3. Scenario inputs, falling back to defaults
	members := revenue.DefaultMemberCount(capacity)
	if s.Scenario.MemberCount != nil {
		members = *s.Scenario.MemberCount
	}
	monthlyFee := float64(fee)
	if s.Scenario.MonthlyFeeINR != nil {
		monthlyFee = *s.Scenario.MonthlyFeeINR
	}
	scenarioAddOn := addOn
	if s.Scenario.AddOnSpendINR != nil {
		scenarioAddOn = *s.Scenario.AddOnSpendINR
	}

	// 4. Revenue
	scenario, err := revenue.Simulate(f, members, monthlyFee, scenarioAddOn)
	if err != nil {
		return nil, report, err
	}
	breakEven, reachable, err := revenue.BreakEvenMembers(f, monthlyFee, scenarioAddOn)
	if err != nil {
		return nil, report, err
	}

	// 5. Schedule
	plan, err := schedule.Build(schedule.FromSpec(s.Schedule), capacity, f)
	if err != nil {
		return nil, report, err
	}

	// 6. Market
	conceptFee := wholeRupees(monthlyFee)
	eval := &Evaluation{
		Facility:           f,
		BenchmarkFeeINR:    fee,
		Capacity:           capacity,
		MemberRangeMin:     lo,
		MemberRangeMax:     hi,
		DefaultAddOnINR:    addOn,
		Scenario:           scenario,
		BreakEvenMembers:   breakEven,
		BreakEvenReachable: reachable,
		OpsBudgetINR:       scenario.OpsBudget(),
		Schedule:           plan,
		Competitors:        market.Matrix(competitors, f, conceptFee),
		Standing:           market.Locate(competitors, conceptFee),
		PoolGap:            market.PoolGap(f, conceptFee),
	}

	// 7. Analytical validation
	validateAnalytical(eval, report)

	return eval, report, nil
}

// wholeRupees rounds a fee to the nearest rupee for comparison with the
// whole-rupee competitor fees.
func wholeRupees(fee float64) int {
	r := math.Round(fee)
	if r >= math.MaxInt {
		return math.MaxInt
	}
	return int(r)
}
