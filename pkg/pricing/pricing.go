// Package pricing maps a facility's city tier and market position to a
// benchmark monthly membership fee.
package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

// Table is a benchmark fee table keyed by tier, then position.
type Table map[spec.CityTier]map[spec.Position]int

// DefaultTable returns a copy of the built-in benchmark table.
func DefaultTable() Table {
	return benchmark.Clone()
}

// EstimateBaseFee returns the built-in benchmark monthly fee for (tier, position).
func EstimateBaseFee(tier spec.CityTier, position spec.Position) (int, error) {
	return benchmark.BaseFee(tier, position)
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for tier, row := range t {
		cp := make(map[spec.Position]int, len(row))
		for position, fee := range row {
			cp[position] = fee
		}
		out[tier] = cp
	}
	return out
}

// BaseFee looks up the fee for (tier, position). Out-of-domain inputs
// and missing cells are errors; nothing falls through to zero.
func (t Table) BaseFee(tier spec.CityTier, position spec.Position) (int, error) {
	if err := tier.Validate(); err != nil {
		return 0, err
	}
	if err := position.Validate(); err != nil {
		return 0, err
	}
	fee, ok := t[tier][position]
	if !ok {
		return 0, fmt.Errorf("benchmark table has no entry for %s/%s", tier, position)
	}
	return fee, nil
}

// Validate checks that the table covers all nine cells with positive fees,
// that fees never decrease as position rises within a tier, and never
// decrease from Tier3 to Tier2 to Tier1 within a position.
func (t Table) Validate() error {
	for tier := range t {
		if err := tier.Validate(); err != nil {
			err.Field = "benchmark"
			return err
		}
		for position := range t[tier] {
			if err := position.Validate(); err != nil {
				err.Field = fmt.Sprintf("benchmark.%s", tier)
				return err
			}
		}
	}

	for _, tier := range spec.CityTiers {
		for _, position := range spec.Positions {
			fee, ok := t[tier][position]
			if !ok {
				return fmt.Errorf("benchmark table is missing %s/%s", tier, position)
			}
			if fee <= 0 {
				return &spec.InvalidParameterError{
					Field:    fmt.Sprintf("benchmark.%s.%s", tier, position),
					Value:    fee,
					Expected: "> 0",
				}
			}
		}
	}

	for _, tier := range spec.CityTiers {
		for i := 1; i < len(spec.Positions); i++ {
			lo, hi := spec.Positions[i-1], spec.Positions[i]
			if t[tier][hi] < t[tier][lo] {
				return fmt.Errorf("benchmark %s: %s fee %d is below %s fee %d",
					tier, hi, t[tier][hi], lo, t[tier][lo])
			}
		}
	}
	for _, position := range spec.Positions {
		for i := 1; i < len(spec.CityTiers); i++ {
			lo, hi := spec.CityTiers[i-1], spec.CityTiers[i]
			if t[hi][position] < t[lo][position] {
				return fmt.Errorf("benchmark %s: %s fee %d is below %s fee %d",
					position, hi, t[hi][position], lo, t[lo][position])
			}
		}
	}
	return nil
}

// Rows flattens the table in tier then position order, cheapest first.
func (t Table) Rows() []Row {
	rows := make([]Row, 0, len(spec.CityTiers)*len(spec.Positions))
	for _, tier := range spec.CityTiers {
		for _, position := range spec.Positions {
			rows = append(rows, Row{Tier: tier, Position: position, BaseMonthlyFeeINR: t[tier][position]})
		}
	}
	return rows
}

// Row is one cell of the benchmark table.
type Row struct {
	Tier              spec.CityTier `json:"city_tier"`
	Position          spec.Position `json:"market_position"`
	BaseMonthlyFeeINR int           `json:"base_monthly_fee_inr"`
}

// LoadTable reads a replacement benchmark table from YAML and validates it.
//
//	tier1: {budget: 1500, mid_market: 3500, premium: 8000}
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark file: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing benchmark YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("benchmark %s: %w", path, err)
	}
	return t, nil
}

// DefaultAddOnSpend is the per-member add-on spend assumed for a position:
// 500 INR for Premium, 100 INR otherwise.
func DefaultAddOnSpend(position spec.Position) (float64, error) {
	if err := position.Validate(); err != nil {
		return 0, err
	}
	if position == spec.Premium {
		return PremiumAddOnSpendINR, nil
	}
	return StandardAddOnSpendINR, nil
}
