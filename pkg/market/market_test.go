package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

func concept(amenities ...spec.Amenity) spec.FacilityConcept {
	return spec.FacilityConcept{CityTier: spec.Tier1, MarketPosition: spec.MidMarket, SizeSqFt: 5000, Amenities: amenities}
}

func TestMatrixAppendsConcept(t *testing.T) {
	comps := DefaultCompetitors()
	rows := Matrix(comps, concept(spec.Pool), 3500)

	require.Len(t, rows, len(comps)+1)
	last := rows[len(rows)-1]
	assert.Equal(t, ConceptBrand, last.Brand)
	assert.Equal(t, 3500, last.MonthlyFeeINR)
	assert.Equal(t, "Yes", last.Pool)
	assert.Equal(t, "Mid-Market (Gold's style)", last.Segment)
	assert.Len(t, comps, 4, "input slice must not grow")

	rows = Matrix(comps, concept(spec.Gym), 3500)
	assert.Equal(t, "No", rows[len(rows)-1].Pool)
}

func TestLocate(t *testing.T) {
	st := Locate(DefaultCompetitors(), 3500)
	require.NotNil(t, st.Cheaper)
	require.NotNil(t, st.Dearer)
	assert.Equal(t, "Cult.fit (Fitso)", st.Cheaper.Brand)
	assert.Equal(t, "David Lloyd (Pune)", st.Dearer.Brand)
	assert.Equal(t, 0.5, st.Percentile)

	st = Locate(DefaultCompetitors(), 800)
	assert.Nil(t, st.Cheaper)
	assert.Equal(t, "YMCA (Mumbai)", st.Dearer.Brand)
	assert.Zero(t, st.Percentile)

	st = Locate(DefaultCompetitors(), 20000)
	assert.Nil(t, st.Dearer)
	assert.Equal(t, "The Club (Mumbai)", st.Cheaper.Brand)
	assert.Equal(t, 1.0, st.Percentile)

	st = Locate(DefaultCompetitors(), 7000)
	assert.Equal(t, "Cult.fit (Fitso)", st.Cheaper.Brand)
	assert.Equal(t, "The Club (Mumbai)", st.Dearer.Brand)

	assert.Equal(t, Standing{}, Locate(nil, 1000))
}

func TestPoolGap(t *testing.T) {
	assert.True(t, PoolGap(concept(spec.Pool), 3500))
	assert.True(t, PoolGap(concept(spec.Pool), 3000))
	assert.True(t, PoolGap(concept(spec.Pool), 4000))
	assert.False(t, PoolGap(concept(spec.Pool), 8000))
	assert.False(t, PoolGap(concept(spec.Gym), 3500))
}
