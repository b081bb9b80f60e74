// Package market compares a facility concept against known competitors.
package market

import (
	"sort"

	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

// Competitor is one benchmark brand.
type Competitor struct {
	Brand          string `json:"brand" yaml:"brand"`
	Segment        string `json:"segment" yaml:"segment"`
	MonthlyFeeINR  int    `json:"monthly_fee_inr" yaml:"monthly_fee_inr"`
	Pool           string `json:"pool" yaml:"pool"`
	WomenOnlyHours string `json:"women_only_hours" yaml:"women_only_hours"`
	PrimaryFocus   string `json:"primary_focus" yaml:"primary_focus"`
}

// ConceptBrand labels the operator's own row in a matrix.
const ConceptBrand = "Your Concept"

// Pool niche: a clean mid-range pool facility is rare between YMCA and David Lloyd.
const (
	PoolNicheMinINR = 3000
	PoolNicheMaxINR = 4000
)

// DefaultCompetitors returns the research benchmark rows.
func DefaultCompetitors() []Competitor {
	return []Competitor{
		{Brand: "David Lloyd (Pune)", Segment: "Premium Family", MonthlyFeeINR: 7000, Pool: "Yes (Heated)", WomenOnlyHours: "No", PrimaryFocus: "Family/Kids"},
		{Brand: "YMCA (Mumbai)", Segment: "Budget Community", MonthlyFeeINR: 1500, Pool: "Yes (Basic)", WomenOnlyHours: "Yes", PrimaryFocus: "Community/Sports"},
		{Brand: "Cult.fit (Fitso)", Segment: "Tech/Flexi", MonthlyFeeINR: 2500, Pool: "Yes (Partner)", WomenOnlyHours: "No", PrimaryFocus: "Young Pros"},
		{Brand: "The Club (Mumbai)", Segment: "Luxury Private", MonthlyFeeINR: 12000, Pool: "Yes (Resort)", WomenOnlyHours: "No", PrimaryFocus: "Elite Networking"},
	}
}

// Matrix appends the concept as a final row priced at fee.
func Matrix(competitors []Competitor, concept spec.FacilityConcept, fee int) []Competitor {
	rows := make([]Competitor, 0, len(competitors)+1)
	rows = append(rows, competitors...)

	pool := "No"
	if concept.HasAmenity(spec.Pool) {
		pool = "Yes"
	}
	return append(rows, Competitor{
		Brand:          ConceptBrand,
		Segment:        concept.MarketPosition.Label(),
		MonthlyFeeINR:  fee,
		Pool:           pool,
		WomenOnlyHours: "TBD",
		PrimaryFocus:   "Start-up",
	})
}

// Standing locates a fee among competitors.
type Standing struct {
	Cheaper    *Competitor `json:"nearest_cheaper,omitempty"`
	Dearer     *Competitor `json:"nearest_dearer,omitempty"`
	Percentile float64     `json:"percentile"` // share of competitors priced strictly below fee
}

// Locate finds the nearest cheaper and dearer competitors to fee.
// Competitors priced exactly at fee count as neither.
func Locate(competitors []Competitor, fee int) Standing {
	sorted := make([]Competitor, len(competitors))
	copy(sorted, competitors)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MonthlyFeeINR < sorted[j].MonthlyFeeINR })

	var st Standing
	below := 0
	for i := range sorted {
		c := sorted[i]
		switch {
		case c.MonthlyFeeINR < fee:
			below++
			st.Cheaper = &c
		case c.MonthlyFeeINR > fee && st.Dearer == nil:
			st.Dearer = &c
		}
	}
	if len(sorted) > 0 {
		st.Percentile = float64(below) / float64(len(sorted))
	}
	return st
}

// PoolGap reports whether a pool concept lands in the under-served
// mid-range pool niche.
func PoolGap(concept spec.FacilityConcept, fee int) bool {
	return concept.HasAmenity(spec.Pool) && fee >= PoolNicheMinINR && fee <= PoolNicheMaxINR
}
