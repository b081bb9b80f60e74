package validation

import (
	"fmt"

	"github.com/ChicagoDave/facilityplanner/pkg/schedule"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

// ValidateSchema performs Level 1 (schema) validation on a parsed FacilitySpec.
// It checks every field before any computation and reports all violations,
// not just the first.
func ValidateSchema(s *spec.FacilitySpec) *Report {
	r := NewReport()

	validateVersion(s, r)
	validateFacility(s, r)
	validateScenario(s, r)
	validateSchedule(s, r)

	return r
}

func validateVersion(s *spec.FacilitySpec, r *Report) {
	if s.SpecVersion == "" {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "spec_version is not set",
			SpecPath: "spec_version",
			Expected: "e.g. 0.1.0",
		})
	}
}

func validateFacility(s *spec.FacilitySpec, r *Report) {
	f := s.Facility

	if err := f.CityTier.Validate(); err != nil {
		r.AddError(FromError(LevelSchema, err))
	}
	if err := f.MarketPosition.Validate(); err != nil {
		r.AddError(FromError(LevelSchema, err))
	}
	if err := spec.ValidateSize(f.SizeSqFt); err != nil {
		res := FromError(LevelSchema, err)
		res.Suggestions = []string{"Set facility.size_sqft to the usable floor area in square feet"}
		r.AddError(res)
	}

	seen := make(map[spec.Amenity]bool, len(f.Amenities))
	for i, a := range f.Amenities {
		if err := a.Validate(); err != nil {
			err.Field = fmt.Sprintf("facility.amenities[%d]", i)
			r.AddError(FromError(LevelSchema, err))
			continue
		}
		if seen[a] {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("amenity %q is listed more than once", a),
				SpecPath:    fmt.Sprintf("facility.amenities[%d]", i),
				ActualValue: string(a),
			})
		}
		seen[a] = true
	}
}

func validateScenario(s *spec.FacilitySpec, r *Report) {
	sc := s.Scenario

	if sc.MemberCount != nil && *sc.MemberCount < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "member_count must be non-negative",
			SpecPath:    "scenario.member_count",
			ActualValue: *sc.MemberCount,
			Expected:    ">= 0",
		})
	}
	if sc.MonthlyFeeINR != nil {
		if err := spec.NonNegative("scenario.monthly_fee_inr", *sc.MonthlyFeeINR); err != nil {
			r.AddError(FromError(LevelSchema, err))
		}
	}
	if sc.AddOnSpendINR != nil {
		if err := spec.NonNegative("scenario.add_on_spend_inr", *sc.AddOnSpendINR); err != nil {
			r.AddError(FromError(LevelSchema, err))
		}
	}
}

func validateSchedule(s *spec.FacilitySpec, r *Report) {
	if len(s.Schedule) == 0 {
		return
	}
	if err := schedule.Validate(schedule.FromSpec(s.Schedule)); err != nil {
		r.AddError(FromError(LevelSchema, err))
	}
}
