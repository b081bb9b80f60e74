package spec

import (
	"math"
	"strings"
)

// CityTier is the coarse urban classification used as a rent and price proxy.
type CityTier string

const (
	Tier1 CityTier = "tier1" // metro: Mumbai, Delhi, Bengaluru
	Tier2 CityTier = "tier2" // large city: Pune, Ahmedabad, Hyderabad
	Tier3 CityTier = "tier3"
)

// CityTiers lists every tier from cheapest to most expensive market.
var CityTiers = []CityTier{Tier3, Tier2, Tier1}

// Validate fails for anything outside the three defined tiers.
func (t CityTier) Validate() *InvalidParameterError {
	switch t {
	case Tier1, Tier2, Tier3:
		return nil
	}
	return &InvalidParameterError{
		Field:    "facility.city_tier",
		Value:    string(t),
		Expected: domain(CityTiers),
	}
}

// Label is the display name of the tier.
func (t CityTier) Label() string {
	switch t {
	case Tier1:
		return "Tier 1 (Mumbai/Delhi/Blr)"
	case Tier2:
		return "Tier 2 (Pune/Ahd/Hyd)"
	case Tier3:
		return "Tier 3"
	}
	return string(t)
}

// Position is the pricing segment strategy. The values are ordered.
type Position string

const (
	Budget    Position = "budget"
	MidMarket Position = "mid_market"
	Premium   Position = "premium"
)

// Positions lists every position in ascending order.
var Positions = []Position{Budget, MidMarket, Premium}

// Rank returns 0, 1 or 2 for Budget, MidMarket and Premium, and -1 otherwise.
func (p Position) Rank() int {
	for i, x := range Positions {
		if x == p {
			return i
		}
	}
	return -1
}

// Validate fails for anything outside the three defined positions.
func (p Position) Validate() *InvalidParameterError {
	if p.Rank() >= 0 {
		return nil
	}
	return &InvalidParameterError{
		Field:    "facility.market_position",
		Value:    string(p),
		Expected: domain(Positions),
	}
}

// Label is the display name of the position.
func (p Position) Label() string {
	switch p {
	case Budget:
		return "Budget (YMCA style)"
	case MidMarket:
		return "Mid-Market (Gold's style)"
	case Premium:
		return "Premium (David Lloyd style)"
	}
	return string(p)
}

// Amenity is a facility feature flag. Amenities are recorded for display only.
type Amenity string

const (
	Pool              Amenity = "pool"
	Gym               Amenity = "gym"
	SquashOrBadminton Amenity = "squash_badminton"
	Studio            Amenity = "studio"
)

// Amenities lists every known amenity.
var Amenities = []Amenity{Pool, Gym, SquashOrBadminton, Studio}

// Validate fails for an unknown amenity.
func (a Amenity) Validate() *InvalidParameterError {
	for _, x := range Amenities {
		if x == a {
			return nil
		}
	}
	return &InvalidParameterError{
		Field:    "facility.amenities",
		Value:    string(a),
		Expected: domain(Amenities),
	}
}

// ValidateSize enforces sizeSqFt > 0.
func ValidateSize(sizeSqFt float64) *InvalidParameterError {
	if math.IsNaN(sizeSqFt) || math.IsInf(sizeSqFt, 0) || sizeSqFt <= 0 {
		return &InvalidParameterError{
			Field:    "facility.size_sqft",
			Value:    sizeSqFt,
			Expected: "> 0",
		}
	}
	return nil
}

// NonNegative enforces v >= 0 for a finite v.
func NonNegative(field string, v float64) *InvalidParameterError {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return &InvalidParameterError{Field: field, Value: v, Expected: ">= 0"}
	}
	return nil
}

func domain[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "one of " + strings.Join(parts, ", ")
}
