package revenue

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/facilityplanner/pkg/pricing"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

func tier1Facility() spec.FacilityConcept {
	return spec.FacilityConcept{
		Name:           "Andheri Aquatics",
		CityTier:       spec.Tier1,
		MarketPosition: spec.MidMarket,
		SizeSqFt:       5000,
		Amenities:      []spec.Amenity{spec.Pool, spec.Gym},
	}
}

func TestEstimateCapacity(t *testing.T) {
	got, err := EstimateCapacity(5000)
	require.NoError(t, err)
	assert.Equal(t, 750, got)

	for size, want := range map[float64]int{20: 3, 100: 15, 1000: 150, 2500: 375, 10000: 1500, 6.9: 1} {
		got, err := EstimateCapacity(size)
		require.NoError(t, err)
		assert.Equal(t, want, got, "size %v", size)
	}
}

func TestEstimateCapacitySmallSize(t *testing.T) {
	got, err := EstimateCapacity(0.001)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestEstimateCapacityInvalid(t *testing.T) {
	for _, size := range []float64{0, -1, -5000, math.NaN()} {
		_, err := EstimateCapacity(size)
		assert.True(t, errors.Is(err, spec.ErrInvalidParameter), "size %v", size)
	}
}

func TestEstimateCapacityTooLarge(t *testing.T) {
	for _, size := range []float64{1e20, math.MaxFloat64} {
		_, err := EstimateCapacity(size)
		var ipe *spec.InvalidParameterError
		require.ErrorAs(t, err, &ipe, "size %v", size)
		assert.Equal(t, "facility.size_sqft", ipe.Field)
	}

	// The largest accepted sizes still give a usable range.
	got, err := EstimateCapacity(1e18)
	require.NoError(t, err)
	assert.Positive(t, got)
	lo, hi := MemberRange(got)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2*got, hi)
	assert.Positive(t, hi)
}

func TestEstimateCapacityMonotonic(t *testing.T) {
	prev := 0
	for size := 1.0; size <= 20000; size += 37.5 {
		got, err := EstimateCapacity(size)
		require.NoError(t, err)
		if got < prev {
			t.Fatalf("capacity(%v) = %d, below capacity of smaller size %d", size, got, prev)
		}
		prev = got
	}
}

func TestRentRatePerSqFt(t *testing.T) {
	tests := map[spec.CityTier]float64{spec.Tier1: 150, spec.Tier2: 80, spec.Tier3: 80}
	for tier, want := range tests {
		got, err := RentRatePerSqFt(tier)
		require.NoError(t, err)
		assert.Equal(t, want, got, tier)
	}

	_, err := RentRatePerSqFt("Tier 1 (Mumbai/Delhi/Blr)")
	assert.Error(t, err)
}

func TestSimulatePositiveMargin(t *testing.T) {
	s, err := Simulate(tier1Facility(), 600, 3500, 100)
	require.NoError(t, err)

	assert.Equal(t, 2_100_000.0, s.MembershipRevenue)
	assert.Equal(t, 60_000.0, s.AncillaryRevenue)
	assert.Equal(t, 2_160_000.0, s.TotalRevenue)
	assert.Equal(t, 750_000.0, s.RentCostINR)
	assert.Equal(t, 1_410_000.0, s.GrossMargin)
	assert.Equal(t, Positive, s.Classification)
	assert.Equal(t, 705_000.0, s.OpsBudget())
}

func TestSimulateDeficit(t *testing.T) {
	s, err := Simulate(tier1Facility(), 50, 800, 100)
	require.NoError(t, err)

	assert.Equal(t, 750_000.0, s.RentCostINR)
	assert.Less(t, s.TotalRevenue, s.RentCostINR)
	assert.Equal(t, Deficit, s.Classification)
	assert.Zero(t, s.OpsBudget())
}

func TestSimulateIdentities(t *testing.T) {
	f := tier1Facility()
	f.CityTier = spec.Tier3
	f.SizeSqFt = 3333.5

	a, err := Simulate(f, 1234, 1800.5, 250)
	require.NoError(t, err)
	b, err := Simulate(f, 1234, 1800.5, 250)
	require.NoError(t, err)

	assert.Equal(t, a, b, "simulate must be deterministic")
	assert.Equal(t, a.MembershipRevenue+a.AncillaryRevenue, a.TotalRevenue)
	assert.Equal(t, a.TotalRevenue-a.RentCostINR, a.GrossMargin)
	assert.Equal(t, 3333.5*80, a.RentCostINR)
}

func TestSimulateBeyondCapacity(t *testing.T) {
	capacity, err := EstimateCapacity(5000)
	require.NoError(t, err)

	s, err := Simulate(tier1Facility(), capacity*3, 3500, 100)
	require.NoError(t, err)
	assert.Equal(t, capacity*3, s.MemberCount)
}

func TestSimulateZeroMargin(t *testing.T) {
	f := tier1Facility()
	f.SizeSqFt = 100 // rent 15,000
	s, err := Simulate(f, 10, 1400, 100)
	require.NoError(t, err)
	assert.Zero(t, s.GrossMargin)
	assert.Equal(t, Positive, s.Classification)
}

func TestSimulateInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*spec.FacilityConcept)
		members int
		fee     float64
		addOn   float64
		field   string
	}{
		{"negative members", nil, -1, 3500, 100, "scenario.member_count"},
		{"negative fee", nil, 10, -1, 100, "scenario.monthly_fee_inr"},
		{"negative add-on", nil, 10, 3500, -0.5, "scenario.add_on_spend_inr"},
		{"bad tier", func(f *spec.FacilityConcept) { f.CityTier = "metro" }, 10, 3500, 100, "facility.city_tier"},
		{"bad position", func(f *spec.FacilityConcept) { f.MarketPosition = "Premium" }, 10, 3500, 100, "facility.market_position"},
		{"zero size", func(f *spec.FacilityConcept) { f.SizeSqFt = 0 }, 10, 3500, 100, "facility.size_sqft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tier1Facility()
			if tt.mutate != nil {
				tt.mutate(&f)
			}
			s, err := Simulate(f, tt.members, tt.fee, tt.addOn)
			var ipe *spec.InvalidParameterError
			require.True(t, errors.As(err, &ipe), "got %v", err)
			assert.Equal(t, tt.field, ipe.Field)
			assert.Equal(t, Scenario{}, s)
		})
	}
}

func TestBenchmarkFeeRoundTrip(t *testing.T) {
	f := tier1Facility()
	fee, err := pricing.EstimateBaseFee(f.CityTier, f.MarketPosition)
	require.NoError(t, err)

	s, err := Simulate(f, 600, float64(fee), 100)
	require.NoError(t, err)
	assert.Equal(t, float64(600*fee), s.MembershipRevenue)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Deficit, Classify(-0.01))
	assert.Equal(t, Positive, Classify(0))
	assert.Equal(t, Positive, Classify(1))
}

func TestDefaultMemberCountAndRange(t *testing.T) {
	assert.Equal(t, 600, DefaultMemberCount(750))
	assert.Equal(t, 0, DefaultMemberCount(0))

	lo, hi := MemberRange(750)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 1500, hi)
}

func TestBreakEvenMembers(t *testing.T) {
	f := tier1Facility()
	n, ok, err := BreakEvenMembers(f, 3500, 100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 209, n) // 750000 / 3600 = 208.33

	s, err := Simulate(f, n, 3500, 100)
	require.NoError(t, err)
	assert.Equal(t, Positive, s.Classification)
	s, err = Simulate(f, n-1, 3500, 100)
	require.NoError(t, err)
	assert.Equal(t, Deficit, s.Classification)

	_, ok, err = BreakEvenMembers(f, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = BreakEvenMembers(f, -1, 0)
	assert.Error(t, err)
}

func TestBreakEvenMembersOutOfRange(t *testing.T) {
	f := tier1Facility()
	n, ok, err := BreakEvenMembers(f, 1e-300, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, n)

	f.SizeSqFt = 1e18
	n, ok, err = BreakEvenMembers(f, 0.0001, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}
