package revenue

import (
	"math"

	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

// DefaultMemberCount is the target member count suggested for a capacity.
func DefaultMemberCount(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(float64(capacity) * DefaultFillRatio)
}

// MemberRange is the explorable member range for what-if analysis.
func MemberRange(capacity int) (lo, hi int) {
	if capacity <= 0 {
		return 0, 0
	}
	return 0, capacity * SoftCapMultiplier
}

// BreakEvenMembers returns the smallest member count whose total revenue
// covers rent. ok is false when per-member revenue is zero and rent is not,
// or when the count would not fit in an int.
func BreakEvenMembers(facility spec.FacilityConcept, monthlyFeeINR, addOnSpendINR float64) (members int, ok bool, err error) {
	if err := facility.Validate(); err != nil {
		return 0, false, err
	}
	if err := spec.NonNegative("scenario.monthly_fee_inr", monthlyFeeINR); err != nil {
		return 0, false, err
	}
	if err := spec.NonNegative("scenario.add_on_spend_inr", addOnSpendINR); err != nil {
		return 0, false, err
	}

	rent, err := RentCost(facility)
	if err != nil {
		return 0, false, err
	}
	perMember := monthlyFeeINR + addOnSpendINR
	if perMember == 0 {
		return 0, rent == 0, nil
	}
	quotient := math.Ceil(rent / perMember)
	if math.IsInf(quotient, 0) || quotient >= math.MaxInt {
		return 0, false, nil
	}
	return int(quotient), true, nil
}
