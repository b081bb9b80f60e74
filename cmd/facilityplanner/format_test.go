package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChicagoDave/facilityplanner/pkg/pricing"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

func TestCompactINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{75_000, "75K"},
		{21_60_000, "21.60 L"},
		{2_10_00_000, "2.10 Cr"},
		{-1_60_000, "-1.60 L"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, compactINR(tc.in), "compactINR(%v)", tc.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Peak Post~", truncate("Peak Post-Work Rush", 10))
}

func TestRunSimulateRejectsUnknownTier(t *testing.T) {
	a := &app{table: pricing.DefaultTable()}
	err := a.runSimulate(simulateInput{tier: "tier9", position: "budget", size: 100})
	assert.ErrorIs(t, err, spec.ErrInvalidParameter)
}
