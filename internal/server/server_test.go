package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/facilityplanner/pkg/analytics"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

const defaultProject = "../../examples/default-facility"

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestFee(t *testing.T) {
	h := New(Options{ProjectPath: defaultProject}).Handler()

	rec := do(t, h, http.MethodGet, "/api/fee?tier=tier1&position=mid_market", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, 3500.0, body["base_monthly_fee_inr"])
	assert.Equal(t, 100.0, body["default_add_on_inr"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = do(t, h, http.MethodGet, "/api/fee?tier=tier3&position=budget", nil)
	assert.Equal(t, 800.0, decode(t, rec)["base_monthly_fee_inr"])
}

func TestFeeInvalid(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/fee?tier=tier1&position=luxury", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "facility.market_position", body["field"])
	assert.Equal(t, "luxury", body["value"])
}

func TestCapacity(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/capacity?size_sqft=5000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, 750.0, body["max_members"])
	assert.Equal(t, 600.0, body["default_member_count"])
	assert.Equal(t, []any{0.0, 1500.0}, body["member_range"])

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/capacity?size_sqft=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/capacity?size_sqft=big", nil).Code)
}

func TestSimulate(t *testing.T) {
	h := New(Options{}).Handler()

	req := map[string]any{
		"facility": spec.FacilityConcept{
			CityTier: spec.Tier1, MarketPosition: spec.MidMarket, SizeSqFt: 5000,
		},
		"member_count":     600,
		"monthly_fee_inr":  3500,
		"add_on_spend_inr": 100,
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)

	rec := do(t, h, http.MethodPost, "/api/simulate", data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, 2_160_000.0, body["total_revenue"])
	assert.Equal(t, 750_000.0, body["rent_cost_inr"])
	assert.Equal(t, 1_410_000.0, body["gross_margin"])
	assert.Equal(t, "positive", body["classification"])
}

func TestSimulateDefaultsFee(t *testing.T) {
	h := New(Options{}).Handler()

	data := []byte(`{"facility":{"city_tier":"tier1","market_position":"mid_market","size_sqft":5000},"member_count":50}`)
	rec := do(t, h, http.MethodPost, "/api/simulate", data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, 3500.0, body["monthly_fee_inr"])
	assert.Equal(t, 100.0, body["add_on_spend_inr"])
}

func TestSimulateInvalid(t *testing.T) {
	h := New(Options{}).Handler()

	data := []byte(`{"facility":{"city_tier":"tier1","market_position":"mid_market","size_sqft":5000},"member_count":-3,"monthly_fee_inr":3500,"add_on_spend_inr":100}`)
	rec := do(t, h, http.MethodPost, "/api/simulate", data)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "scenario.member_count", decode(t, rec)["field"])

	rec = do(t, h, http.MethodPost, "/api/simulate", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluation(t *testing.T) {
	h := New(Options{ProjectPath: defaultProject}).Handler()

	rec := do(t, h, http.MethodGet, "/api/evaluation", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)

	eval := body["evaluation"].(map[string]any)
	assert.Equal(t, 3500.0, eval["benchmark_fee_inr"])
	assert.Equal(t, 750.0, eval["capacity"])
	scenario := eval["scenario"].(map[string]any)
	assert.Equal(t, 1_410_000.0, scenario["gross_margin"])

	report := body["validation"].(map[string]any)
	assert.Equal(t, true, report["valid"])
}

func TestValidationInvalidProject(t *testing.T) {
	dir := t.TempDir()
	yaml := "spec_version: \"0.1.0\"\nfacility:\n  city_tier: tier5\n  market_position: budget\n  size_sqft: -10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, spec.ProjectFile), []byte(yaml), 0o644))
	h := New(Options{ProjectPath: dir}).Handler()

	rec := do(t, h, http.MethodGet, "/api/validation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Len(t, body["errors"], 2)

	rec = do(t, h, http.MethodGet, "/api/evaluation", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMissingProject(t *testing.T) {
	h := New(Options{ProjectPath: "/nonexistent"}).Handler()
	rec := do(t, h, http.MethodGet, "/api/evaluation", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestScheduleAndCompetitors(t *testing.T) {
	h := New(Options{ProjectPath: defaultProject}).Handler()

	rec := do(t, h, http.MethodGet, "/api/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	plan := decode(t, rec)["schedule"].(map[string]any)
	assert.Len(t, plan["slots"], 5)

	rec = do(t, h, http.MethodGet, "/api/competitors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["competitors"], 5)
	assert.Equal(t, true, body["pool_gap"])
}

func TestExports(t *testing.T) {
	h := New(Options{ProjectPath: defaultProject}).Handler()

	rec := do(t, h, http.MethodGet, "/api/export/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = do(t, h, http.MethodGet, "/api/export/xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestExportFailureIsNotPartial(t *testing.T) {
	srv := New(Options{ProjectPath: defaultProject})
	failing := func(_ *analytics.Evaluation, _ string, w io.Writer) error {
		_, _ = w.Write([]byte("PK partial"))
		return errors.New("disk full")
	}
	srv.writeWorkbook = failing
	srv.writePDF = failing
	h := srv.Handler()

	for _, target := range []string{"/api/export/xlsx", "/api/export/pdf"} {
		rec := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.Empty(t, rec.Header().Get("Content-Disposition"), target)
		assert.Contains(t, decode(t, rec)["error"], "disk full", target)
	}
}

func TestBenchmarkAndIndex(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/benchmark", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["rows"], 9)

	rec = do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Facility Planner")
}

func TestRequestIDPropagates(t *testing.T) {
	h := New(Options{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/benchmark", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
