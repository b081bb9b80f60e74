package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChicagoDave/facilityplanner/pkg/analytics"
	"github.com/ChicagoDave/facilityplanner/pkg/export"
	"github.com/ChicagoDave/facilityplanner/pkg/pricing"
	"github.com/ChicagoDave/facilityplanner/pkg/revenue"
	"github.com/ChicagoDave/facilityplanner/pkg/spec"
	"github.com/ChicagoDave/facilityplanner/pkg/validation"
)

// loadAndValidate loads the project and runs schema validation.
func (a *app) loadAndValidate(projectPath string) (*spec.FacilitySpec, *validation.Report, error) {
	facility, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	a.log.Debug("loaded project", zap.String("path", projectPath), zap.String("facility", facility.Facility.Name))
	return facility, validation.ValidateSchema(facility), nil
}

// resolve loads, validates and evaluates a project. Schema errors are
// printed and returned as an error.
func (a *app) resolve(projectPath string) (*analytics.Evaluation, *validation.Report, error) {
	facility, schemaReport, err := a.loadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return nil, nil, fmt.Errorf("spec has validation errors; fix before evaluating")
	}

	eval, analyticsReport, err := analytics.Resolve(facility, analytics.Options{Table: a.table})
	if err != nil {
		return nil, nil, err
	}
	schemaReport.Merge(analyticsReport)
	return eval, schemaReport, nil
}

func (a *app) runValidate(projectPath string) error {
	facility, report, err := a.loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	if report.Valid {
		_, analyticsReport, err := analytics.Resolve(facility, analytics.Options{Table: a.table})
		if err != nil {
			report.AddError(validation.FromError(validation.LevelAnalytical, err))
		}
		report.Merge(analyticsReport)
	}

	printValidationReport(report)

	if !report.Valid {
		return fmt.Errorf("%s is invalid: %s", projectPath, report.Summary)
	}
	return nil
}

func (a *app) runFee(tier, position string) error {
	fee, err := a.table.BaseFee(spec.CityTier(tier), spec.Position(position))
	if err != nil {
		return err
	}
	addOn, err := pricing.DefaultAddOnSpend(spec.Position(position))
	if err != nil {
		return err
	}
	fmt.Printf("%s, %s\n", spec.CityTier(tier).Label(), spec.Position(position).Label())
	fmt.Printf("  Benchmark monthly fee:  %s\n", export.FormatINR(float64(fee)))
	fmt.Printf("  Default add-on spend:   %s\n", export.FormatINR(addOn))
	return nil
}

func (a *app) runCapacity(size float64) error {
	capacity, err := revenue.EstimateCapacity(size)
	if err != nil {
		return err
	}
	_, hi := revenue.MemberRange(capacity)
	fmt.Printf("Facility size:          %.0f sq ft\n", size)
	fmt.Printf("Capacity guidance:      %d active members\n", capacity)
	fmt.Printf("Suggested target:       %d members\n", revenue.DefaultMemberCount(capacity))
	fmt.Printf("Explorable range:       0-%d members\n", hi)
	return nil
}

type simulateInput struct {
	tier, position string
	size           float64
	members        int
	fee, addOn     float64

	membersSet, feeSet, addOnSet bool
}

func (a *app) runSimulate(in simulateInput) error {
	facility := spec.FacilityConcept{
		CityTier:       spec.CityTier(in.tier),
		MarketPosition: spec.Position(in.position),
		SizeSqFt:       in.size,
	}

	fee := in.fee
	if !in.feeSet {
		base, err := a.table.BaseFee(facility.CityTier, facility.MarketPosition)
		if err != nil {
			return err
		}
		fee = float64(base)
	}
	addOn := in.addOn
	if !in.addOnSet {
		v, err := pricing.DefaultAddOnSpend(facility.MarketPosition)
		if err != nil {
			return err
		}
		addOn = v
	}
	members := in.members
	if !in.membersSet {
		capacity, err := revenue.EstimateCapacity(facility.SizeSqFt)
		if err != nil {
			return err
		}
		members = revenue.DefaultMemberCount(capacity)
	}

	scenario, err := revenue.Simulate(facility, members, fee, addOn)
	if err != nil {
		return err
	}
	printScenario(scenario)
	return nil
}

func (a *app) runEvaluate(projectPath string, asJSON bool) error {
	eval, report, err := a.resolve(projectPath)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"evaluation": eval,
			"validation": report,
		})
	}

	printEvaluation(eval)
	if len(report.Warnings) > 0 || len(report.Info) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func (a *app) runSchedule(projectPath string) error {
	eval, _, err := a.resolve(projectPath)
	if err != nil {
		return err
	}
	printSchedule(eval)
	return nil
}

func (a *app) runExport(projectPath, xlsxPath, pdfPath string) error {
	if xlsxPath == "" && pdfPath == "" {
		return fmt.Errorf("nothing to export: pass --xlsx and/or --pdf")
	}
	eval, _, err := a.resolve(projectPath)
	if err != nil {
		return err
	}
	reportID := uuid.NewString()

	if xlsxPath != "" {
		if err := writeFile(xlsxPath, func(f *os.File) error { return export.WriteWorkbook(eval, reportID, f) }); err != nil {
			return err
		}
		a.log.Info("wrote workbook", zap.String("path", xlsxPath), zap.String("report_id", reportID))
	}
	if pdfPath != "" {
		if err := writeFile(pdfPath, func(f *os.File) error { return export.WritePDF(eval, reportID, f) }); err != nil {
			return err
		}
		a.log.Info("wrote pdf", zap.String("path", pdfPath), zap.String("report_id", reportID))
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
