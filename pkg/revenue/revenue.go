// Package revenue derives member capacity from floor area and simulates
// monthly revenue against rent.
package revenue

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

// Classification is the sign of the gross margin.
type Classification string

const (
	Positive Classification = "positive"
	Deficit  Classification = "deficit"
)

// Classify returns Deficit for a negative margin and Positive otherwise.
func Classify(grossMargin float64) Classification {
	if grossMargin < 0 {
		return Deficit
	}
	return Positive
}

// Scenario is one simulated month.
type Scenario struct {
	MemberCount   int     `json:"member_count"`
	MonthlyFeeINR float64 `json:"monthly_fee_inr"`
	AddOnSpendINR float64 `json:"add_on_spend_inr"`

	MembershipRevenue float64        `json:"membership_revenue"`
	AncillaryRevenue  float64        `json:"ancillary_revenue"`
	TotalRevenue      float64        `json:"total_revenue"`
	RentCostINR       float64        `json:"rent_cost_inr"`
	GrossMargin       float64        `json:"gross_margin"`
	Classification    Classification `json:"classification"`
}

// EstimateCapacity returns floor(sizeSqFt * 0.15), a soft upper-bound
// guidance on active members. sizeSqFt must be positive.
func EstimateCapacity(sizeSqFt float64) (int, error) {
	if err := spec.ValidateSize(sizeSqFt); err != nil {
		return 0, err
	}
	// Scale through the integer rate so exact multiples do not floor one short.
	capacity := math.Floor(sizeSqFt * MembersPer100SqFt / 100)
	if capacity >= MaxCapacity {
		return 0, &spec.InvalidParameterError{
			Field:    "facility.size_sqft",
			Value:    sizeSqFt,
			Expected: fmt.Sprintf("<= %.0f", MaxSizeSqFt),
		}
	}
	return int(capacity), nil
}

// RentRatePerSqFt is the monthly commercial rent per sq ft for a tier.
// Tier2 and Tier3 share one rate.
func RentRatePerSqFt(tier spec.CityTier) (float64, error) {
	if err := tier.Validate(); err != nil {
		return 0, err
	}
	if tier == spec.Tier1 {
		return Tier1RentPerSqFt, nil
	}
	return OtherRentPerSqFt, nil
}

// RentCost is the facility's monthly rent.
func RentCost(facility spec.FacilityConcept) (float64, error) {
	if err := spec.ValidateSize(facility.SizeSqFt); err != nil {
		return 0, err
	}
	rate, err := RentRatePerSqFt(facility.CityTier)
	if err != nil {
		return 0, err
	}
	return facility.SizeSqFt * rate, nil
}

// Simulate computes revenue, rent and gross margin for one month. All inputs
// are validated before anything is computed. Member counts above capacity
// are accepted.
func Simulate(facility spec.FacilityConcept, memberCount int, monthlyFeeINR, addOnSpendINR float64) (Scenario, error) {
	if err := facility.Validate(); err != nil {
		return Scenario{}, err
	}
	if memberCount < 0 {
		return Scenario{}, &spec.InvalidParameterError{
			Field:    "scenario.member_count",
			Value:    memberCount,
			Expected: ">= 0",
		}
	}
	if err := spec.NonNegative("scenario.monthly_fee_inr", monthlyFeeINR); err != nil {
		return Scenario{}, err
	}
	if err := spec.NonNegative("scenario.add_on_spend_inr", addOnSpendINR); err != nil {
		return Scenario{}, err
	}

	rent, err := RentCost(facility)
	if err != nil {
		return Scenario{}, err
	}

	members := float64(memberCount)
	membership := members * monthlyFeeINR
	ancillary := members * addOnSpendINR
	total := membership + ancillary
	margin := total - rent

	return Scenario{
		MemberCount:       memberCount,
		MonthlyFeeINR:     monthlyFeeINR,
		AddOnSpendINR:     addOnSpendINR,
		MembershipRevenue: membership,
		AncillaryRevenue:  ancillary,
		TotalRevenue:      total,
		RentCostINR:       rent,
		GrossMargin:       margin,
		Classification:    Classify(margin),
	}, nil
}

// OpsBudget is the most a positive-margin scenario should spend on staff
// and operations. It is zero for a deficit.
func (s Scenario) OpsBudget() float64 {
	if s.GrossMargin <= 0 {
		return 0
	}
	return s.GrossMargin * OpsShareOfMargin
}
