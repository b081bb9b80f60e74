package spec

import "fmt"

// FacilitySpec is the top-level project file for a proposed facility.
type FacilitySpec struct {
	SpecVersion string          `yaml:"spec_version" json:"spec_version"`
	Facility    FacilityConcept `yaml:"facility" json:"facility"`
	Scenario    ScenarioInputs  `yaml:"scenario" json:"scenario"`
	Schedule    []ScheduleBlock `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}

// FacilityConcept is the operator's proposed facility.
type FacilityConcept struct {
	Name           string    `yaml:"name" json:"name"`
	CityTier       CityTier  `yaml:"city_tier" json:"city_tier"`
	MarketPosition Position  `yaml:"market_position" json:"market_position"`
	SizeSqFt       float64   `yaml:"size_sqft" json:"size_sqft"`
	Amenities      []Amenity `yaml:"amenities" json:"amenities"`
}

// HasAmenity reports whether the concept lists a.
func (f FacilityConcept) HasAmenity(a Amenity) bool {
	for _, x := range f.Amenities {
		if x == a {
			return true
		}
	}
	return false
}

// Validate checks tier, position, size and amenity flags.
// It returns the first violation found.
func (f FacilityConcept) Validate() error {
	if err := f.CityTier.Validate(); err != nil {
		return err
	}
	if err := f.MarketPosition.Validate(); err != nil {
		return err
	}
	if err := ValidateSize(f.SizeSqFt); err != nil {
		return err
	}
	for i, a := range f.Amenities {
		if err := a.Validate(); err != nil {
			err.Field = fmt.Sprintf("facility.amenities[%d]", i)
			return err
		}
	}
	return nil
}

// ScenarioInputs are the optional what-if overrides. Nil means "use the default".
type ScenarioInputs struct {
	MemberCount   *int     `yaml:"member_count,omitempty" json:"member_count,omitempty"`
	MonthlyFeeINR *float64 `yaml:"monthly_fee_inr,omitempty" json:"monthly_fee_inr,omitempty"`
	AddOnSpendINR *float64 `yaml:"add_on_spend_inr,omitempty" json:"add_on_spend_inr,omitempty"`
}

// ScheduleBlock is a project-file override of one operating time slot.
type ScheduleBlock struct {
	Name    string `yaml:"name" json:"name"`
	Start   string `yaml:"start" json:"start"`
	Finish  string `yaml:"finish" json:"finish"`
	Segment string `yaml:"segment" json:"segment"`
	Policy  string `yaml:"policy" json:"policy"`
}
