package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ChicagoDave/facilityplanner/internal/config"
	"github.com/ChicagoDave/facilityplanner/internal/logger"
	"github.com/ChicagoDave/facilityplanner/internal/server"
	"github.com/ChicagoDave/facilityplanner/pkg/pricing"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	table pricing.Table

	logLevel      string
	logFormat     string
	benchmarkFile string
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "facilityplanner",
		Short:         "Indian sports facility pricing, capacity and revenue planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&a.benchmarkFile, "benchmark", "", "YAML file replacing the built-in fee table")

	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(feeCmd(a))
	rootCmd.AddCommand(capacityCmd(a))
	rootCmd.AddCommand(simulateCmd(a))
	rootCmd.AddCommand(evaluateCmd(a))
	rootCmd.AddCommand(scheduleCmd(a))
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(serveCmd(a))

	err := rootCmd.Execute()
	if a.log != nil {
		if err != nil {
			a.log.Error("command failed", zap.Error(err))
		}
		_ = a.log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.benchmarkFile != "" {
		cfg.BenchmarkFile = a.benchmarkFile
	}
	a.cfg = cfg

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "facilityplanner")
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("command", cmd.Name()))

	a.table = pricing.DefaultTable()
	if cfg.BenchmarkFile != "" {
		table, err := pricing.LoadTable(cfg.BenchmarkFile)
		if err != nil {
			return err
		}
		a.table = table
		a.log.Debug("using benchmark table", zap.String("file", cfg.BenchmarkFile))
	}
	return nil
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a facility project without running the simulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runValidate(args[0])
		},
	}
}

func feeCmd(a *app) *cobra.Command {
	var tier, position string

	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Look up the benchmark monthly fee for a tier and position",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runFee(tier, position)
		},
	}
	cmd.Flags().StringVar(&tier, "tier", "tier1", "city tier (tier1, tier2, tier3)")
	cmd.Flags().StringVar(&position, "position", "mid_market", "market position (budget, mid_market, premium)")
	return cmd
}

func capacityCmd(a *app) *cobra.Command {
	var size float64

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Estimate active member capacity from floor area",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runCapacity(size)
		},
	}
	cmd.Flags().Float64Var(&size, "size", 5000, "facility size in sq ft")
	return cmd
}

func simulateCmd(a *app) *cobra.Command {
	var in simulateInput

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate monthly revenue, rent and gross margin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.feeSet = cmd.Flags().Changed("fee")
			in.addOnSet = cmd.Flags().Changed("add-on")
			in.membersSet = cmd.Flags().Changed("members")
			return a.runSimulate(in)
		},
	}
	cmd.Flags().StringVar(&in.tier, "tier", "tier1", "city tier (tier1, tier2, tier3)")
	cmd.Flags().StringVar(&in.position, "position", "mid_market", "market position (budget, mid_market, premium)")
	cmd.Flags().Float64Var(&in.size, "size", 5000, "facility size in sq ft")
	cmd.Flags().IntVar(&in.members, "members", 0, "member count (default 80% of capacity)")
	cmd.Flags().Float64Var(&in.fee, "fee", 0, "monthly fee in INR (default benchmark fee)")
	cmd.Flags().Float64Var(&in.addOn, "add-on", 0, "average monthly add-on spend per member in INR (default by position)")
	return cmd
}

func evaluateCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "evaluate [project-path]",
		Short: "Run the full pricing, capacity, revenue, schedule and market evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runEvaluate(args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the evaluation as JSON")
	return cmd
}

func scheduleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [project-path]",
		Short: "Show the time-slot plan and expected utilization",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runSchedule(args[0])
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var xlsxPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Write the evaluation as an Excel workbook and/or PDF report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runExport(args[0], xlsxPath, pdfPath)
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "workbook output path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF output path")
	return cmd
}

func serveCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dashboard API server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Server.Port
			}
			srv := server.New(server.Options{
				ProjectPath: args[0],
				Port:        port,
				Table:       a.table,
				CORSOrigins: a.cfg.Server.CORSOrigins,
				Logger:      logger.Hostname(a.log),
			})
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
