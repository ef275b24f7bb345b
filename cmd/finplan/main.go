package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/finplan/financial-simulator/internal/calculation"
	"github.com/finplan/financial-simulator/internal/config"
	"github.com/finplan/financial-simulator/internal/domain"
	"github.com/finplan/financial-simulator/internal/output"
)

var (
	inputFile    string
	outputFormat string
	debugMode    bool
)

// stdLogger adapts the standard library logger to the engine's interface.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finplan",
		Short: "Temporal financial simulation engine",
		Long: `finplan runs deterministic financial simulations from a YAML plan:
debt amortization, cash-flow scheduling, compounding growth, multi-decade
life projection, monthly forecasting and purchase installments.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "plan file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console",
		"output format (console, json, csv)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newSectionCmd("debt", "Run only the debt payoff section", func(p *domain.Plan) bool { return p.DebtPayoff != nil },
		func(p *domain.Plan) *domain.Plan { return &domain.Plan{DebtPayoff: p.DebtPayoff} }))
	rootCmd.AddCommand(newSectionCmd("schedule", "Run only the payment schedule section", func(p *domain.Plan) bool { return p.PaymentSchedule != nil },
		func(p *domain.Plan) *domain.Plan { return &domain.Plan{PaymentSchedule: p.PaymentSchedule} }))
	rootCmd.AddCommand(newSectionCmd("growth", "Run only the growth projection section", func(p *domain.Plan) bool { return p.Growth != nil },
		func(p *domain.Plan) *domain.Plan { return &domain.Plan{Growth: p.Growth} }))
	rootCmd.AddCommand(newSectionCmd("life", "Run only the life projection section", func(p *domain.Plan) bool { return p.Life != nil },
		func(p *domain.Plan) *domain.Plan { return &domain.Plan{Life: p.Life} }))
	rootCmd.AddCommand(newSectionCmd("forecast", "Run only the cash flow forecast section", func(p *domain.Plan) bool { return p.Forecast != nil },
		func(p *domain.Plan) *domain.Plan { return &domain.Plan{Forecast: p.Forecast} }))
	rootCmd.AddCommand(newSectionCmd("emi", "Run only the purchase installment section", func(p *domain.Plan) bool { return p.EMI != nil },
		func(p *domain.Plan) *domain.Plan { return &domain.Plan{EMI: p.EMI} }))
	rootCmd.AddCommand(newExampleCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every section present in the plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan()
			if err != nil {
				return err
			}
			return runPlan(cmd.Context(), plan)
		},
	}
}

func newSectionCmd(name, short string, present func(*domain.Plan) bool, slice func(*domain.Plan) *domain.Plan) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan()
			if err != nil {
				return err
			}
			if !present(plan) {
				return fmt.Errorf("plan file has no %s section", name)
			}
			return runPlan(cmd.Context(), slice(plan))
		},
	}
}

func newExampleCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example plan file exercising every section",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := config.NewInputParser().CreateExamplePlan()
			if err := output.SavePlan(plan, outFile); err != nil {
				return fmt.Errorf("failed to write example plan: %w", err)
			}
			fmt.Printf("Example plan written to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "example_plan.yaml", "destination file")
	return cmd
}

func loadPlan() (*domain.Plan, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("--input is required (generate one with 'finplan example')")
	}
	return config.NewInputParser().LoadFromFile(inputFile)
}

func runPlan(ctx context.Context, plan *domain.Plan) error {
	if ctx == nil {
		ctx = context.Background()
	}

	engine := calculation.NewEngine()
	if debugMode {
		engine.Debug = true
		engine.SetLogger(stdLogger{})
	}

	report, err := engine.RunPlan(ctx, plan)
	if err != nil {
		return err
	}
	return output.GenerateReport(report, outputFormat)
}
