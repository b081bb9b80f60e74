// Package server exposes the facility economics model over HTTP.
// Every request is evaluated independently; the project file is re-read
// each time and no results are kept between requests.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChicagoDave/facilityplanner/pkg/analytics"
	"github.com/ChicagoDave/facilityplanner/pkg/export"
	"github.com/ChicagoDave/facilityplanner/pkg/pricing"
	"github.com/ChicagoDave/facilityplanner/pkg/revenue"
	"github.com/ChicagoDave/facilityplanner/pkg/schedule"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
	"github.com/ChicagoDave/facilityplanner/pkg/validation"
)

const requestIDHeader = "X-Request-ID"

// Options configures a Server.
type Options struct {
	ProjectPath string
	Port        int
	Table       pricing.Table // nil uses the built-in benchmark
	CORSOrigins []string
	Logger      *zap.Logger
}

// Server is the local server backing the interactive dashboard.
type Server struct {
	opts Options
	log  *zap.Logger

	writeWorkbook exportFunc
	writePDF      exportFunc
}

type exportFunc func(e *analytics.Evaluation, reportID string, w io.Writer) error

// New creates a server for the given project directory.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Table == nil {
		opts.Table = pricing.DefaultTable()
	}
	return &Server{
		opts:          opts,
		log:           log,
		writeWorkbook: export.WriteWorkbook,
		writePDF:      export.WritePDF,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.opts.Port)
	s.log.Info("facility planner server starting",
		zap.String("url", "http://localhost"+addr),
		zap.String("project", s.opts.ProjectPath))
	return http.ListenAndServe(addr, s.Handler())
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	corsCfg := cors.DefaultConfig()
	if len(s.opts.CORSOrigins) == 0 || (len(s.opts.CORSOrigins) == 1 && s.opts.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.opts.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	api.GET("/benchmark", s.handleBenchmark)
	api.GET("/fee", s.handleFee)
	api.GET("/capacity", s.handleCapacity)
	api.POST("/simulate", s.handleSimulate)
	api.GET("/evaluation", s.handleEvaluation)
	api.GET("/validation", s.handleValidation)
	api.GET("/schedule", s.handleSchedule)
	api.GET("/competitors", s.handleCompetitors)
	api.GET("/export/xlsx", s.handleExportXLSX)
	api.GET("/export/pdf", s.handleExportPDF)
	r.GET("/", s.handleIndex)

	return r
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// fail writes err as JSON. Invalid parameters are the caller's fault.
func (s *Server) fail(c *gin.Context, err error) {
	var ipe *spec.InvalidParameterError
	if errors.As(err, &ipe) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    ipe.Error(),
			"field":    ipe.Field,
			"value":    ipe.Value,
			"expected": ipe.Expected,
		})
		return
	}
	s.log.Error("request failed", zap.String("request_id", c.GetString("request_id")), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html><head><title>Facility Planner</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Indian Sports Facility Planner</h1>
<p>Dashboard not yet embedded. The JSON API is under <code>/api</code>.</p>
</div>
</body></html>`))
}

func (s *Server) handleBenchmark(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": s.opts.Table.Rows()})
}

func (s *Server) handleFee(c *gin.Context) {
	tier := spec.CityTier(c.Query("tier"))
	position := spec.Position(c.Query("position"))
	fee, err := s.opts.Table.BaseFee(tier, position)
	if err != nil {
		s.fail(c, err)
		return
	}
	addOn, err := pricing.DefaultAddOnSpend(position)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"city_tier":            tier,
		"market_position":      position,
		"base_monthly_fee_inr": fee,
		"default_add_on_inr":   addOn,
	})
}

func (s *Server) handleCapacity(c *gin.Context) {
	raw := c.Query("size_sqft")
	size, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.fail(c, &spec.InvalidParameterError{Field: "size_sqft", Value: raw, Expected: "a number > 0"})
		return
	}
	capacity, err := revenue.EstimateCapacity(size)
	if err != nil {
		s.fail(c, err)
		return
	}
	lo, hi := revenue.MemberRange(capacity)
	c.JSON(http.StatusOK, gin.H{
		"size_sqft":            size,
		"max_members":          capacity,
		"default_member_count": revenue.DefaultMemberCount(capacity),
		"member_range":         []int{lo, hi},
	})
}

// simulateRequest mirrors Simulate's arguments. Missing fee and add-on
// fall back to the benchmark defaults for the facility.
type simulateRequest struct {
	Facility      spec.FacilityConcept `json:"facility"`
	MemberCount   int                  `json:"member_count"`
	MonthlyFeeINR *float64             `json:"monthly_fee_inr"`
	AddOnSpendINR *float64             `json:"add_on_spend_inr"`
}

func (s *Server) handleSimulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("decoding request: %v", err)})
		return
	}

	fee := req.MonthlyFeeINR
	if fee == nil {
		base, err := s.opts.Table.BaseFee(req.Facility.CityTier, req.Facility.MarketPosition)
		if err != nil {
			s.fail(c, err)
			return
		}
		v := float64(base)
		fee = &v
	}
	addOn := req.AddOnSpendINR
	if addOn == nil {
		v, err := pricing.DefaultAddOnSpend(req.Facility.MarketPosition)
		if err != nil {
			s.fail(c, err)
			return
		}
		addOn = &v
	}

	scenario, err := revenue.Simulate(req.Facility, req.MemberCount, *fee, *addOn)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, scenario)
}

// evaluate loads and resolves the project fresh for this request.
func (s *Server) evaluate(c *gin.Context) (*analytics.Evaluation, *validation.Report, bool) {
	facility, err := spec.LoadProject(s.opts.ProjectPath)
	if err != nil {
		s.fail(c, err)
		return nil, nil, false
	}
	report := validation.ValidateSchema(facility)
	if !report.Valid {
		c.JSON(http.StatusUnprocessableEntity, report)
		return nil, report, false
	}
	eval, analyticsReport, err := analytics.Resolve(facility, analytics.Options{Table: s.opts.Table})
	if err != nil {
		s.fail(c, err)
		return nil, nil, false
	}
	report.Merge(analyticsReport)
	return eval, report, true
}

func (s *Server) handleEvaluation(c *gin.Context) {
	eval, report, ok := s.evaluate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluation": eval, "validation": report})
}

func (s *Server) handleValidation(c *gin.Context) {
	facility, err := spec.LoadProject(s.opts.ProjectPath)
	if err != nil {
		s.fail(c, err)
		return
	}
	report := validation.ValidateSchema(facility)
	if report.Valid {
		_, analyticsReport, err := analytics.Resolve(facility, analytics.Options{Table: s.opts.Table})
		if err != nil {
			report.AddError(validation.FromError(validation.LevelAnalytical, err))
		}
		report.Merge(analyticsReport)
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleSchedule(c *gin.Context) {
	eval, _, ok := s.evaluate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": eval.Schedule, "policies": schedule.Utilization})
}

func (s *Server) handleCompetitors(c *gin.Context) {
	eval, _, ok := s.evaluate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"competitors": eval.Competitors,
		"standing":    eval.Standing,
		"pool_gap":    eval.PoolGap,
	})
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	s.export(c, s.writeWorkbook, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "facility.xlsx")
}

func (s *Server) handleExportPDF(c *gin.Context) {
	s.export(c, s.writePDF, "application/pdf", "facility.pdf")
}

// export renders the whole document before writing any of the response.
func (s *Server) export(c *gin.Context, write exportFunc, contentType, filename string) {
	eval, _, ok := s.evaluate(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := write(eval, c.GetString("request_id"), &buf); err != nil {
		s.fail(c, fmt.Errorf("exporting %s: %w", filename, err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
