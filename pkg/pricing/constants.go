package pricing

import "github.com/ChicagoDave/facilityplanner/pkg/spec"

// Benchmark monthly membership fees in INR, from Indian market data.
// Rows are city tiers, columns are market positions. Never mutated;
// DefaultTable hands out copies.
var benchmark = Table{
	spec.Tier1: {spec.Budget: 1500, spec.MidMarket: 3500, spec.Premium: 8000},
	spec.Tier2: {spec.Budget: 1000, spec.MidMarket: 2500, spec.Premium: 5500},
	spec.Tier3: {spec.Budget: 800, spec.MidMarket: 1800, spec.Premium: 3500},
}

// Average monthly add-on spend (coaching, F&B) per member in INR.
const (
	PremiumAddOnSpendINR  = 500.0
	StandardAddOnSpendINR = 100.0
)
