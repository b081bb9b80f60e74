package schedule

import "github.com/ChicagoDave/facilityplanner/pkg/spec"

// Policy is how a time slot is sold.
type Policy string

const (
	PolicyOpen            Policy = "open"             // general member access
	PolicyRestricted      Policy = "restricted"       // women-only or seniors
	PolicyDiscounted      Policy = "discounted"       // off-peak pricing, maintenance window
	PolicyPaidCoaching    Policy = "paid_coaching"    // paid junior batches, not free member time
	PolicyBookingRequired Policy = "booking_required" // app slot booking to cap crowding
)

// Policies lists every policy in table order.
var Policies = []Policy{PolicyOpen, PolicyRestricted, PolicyDiscounted, PolicyPaidCoaching, PolicyBookingRequired}

// Utilization is the expected share of capacity in use during a slot.
var Utilization = map[Policy]float64{
	PolicyOpen:            0.60,
	PolicyRestricted:      0.45,
	PolicyDiscounted:      0.20,
	PolicyPaidCoaching:    0.75,
	PolicyBookingRequired: 0.95,
}

// Validate fails for a policy outside the table.
func (p Policy) Validate(field string) *spec.InvalidParameterError {
	if _, ok := Utilization[p]; ok {
		return nil
	}
	return &spec.InvalidParameterError{
		Field:    field,
		Value:    string(p),
		Expected: "one of open, restricted, discounted, paid_coaching, booking_required",
	}
}

// advice returns operator guidance for a slot. hasCourt is true when the
// concept has a pool or a squash/badminton court.
func advice(p Policy, hasCourt bool) string {
	switch p {
	case PolicyPaidCoaching:
		if hasCourt {
			return "Do not give this slot to adult members for free; run paid kids coaching batches on the pool/courts. This pays the rent."
		}
		return "Run paid junior coaching batches in this slot rather than free member time."
	case PolicyRestricted:
		return "Prime time for homemakers; a women-only slot captures a demographic competitors ignore."
	case PolicyBookingRequired:
		return "Use app slot booking for the peak hour to prevent overcrowding."
	case PolicyDiscounted:
		return "Offer off-peak discounts and schedule maintenance here."
	}
	return ""
}
