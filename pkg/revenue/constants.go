package revenue

import "math"

// Rule-of-thumb planning constants for Indian fitness facilities.
const (
	MembersPer100SqFt = 15.0 // active member capacity per 100 sq ft (0.15 per sq ft)

	Tier1RentPerSqFt = 150.0 // INR/sq ft/month, metro commercial
	OtherRentPerSqFt = 80.0  // INR/sq ft/month, Tier2 and Tier3 alike

	DefaultFillRatio  = 0.8 // default target members as a share of capacity
	SoftCapMultiplier = 2   // explorable member range is [0, 2*capacity]

	OpsShareOfMargin = 0.5 // staff/ops costs should stay under this share of gross margin
)

// Capacity must stay below MaxCapacity so the explorable range [0, 2*capacity]
// fits in an int.
const (
	MaxCapacity = math.MaxInt / SoftCapMultiplier
	MaxSizeSqFt = MaxCapacity * 100 / MembersPer100SqFt
)
