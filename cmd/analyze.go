package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/modalscan/configs"
	"github.com/modalkit/modalscan/internal/app"
)

var (
	// Analyze command flags
	analyzeSetFile      string
	analyzeOutputFile   string
	analyzeFMin         float64
	analyzeFMax         float64
	analyzeLevel        float64
	analyzeTolerance    float64
	analyzeMinSupport   int
	analyzeWindow       float64
	analyzeIncludePeaks bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze --set <measurement-set>",
	Short: "Detect peaks and cluster consensus mode frequencies",
	Long: `Run the full survey analysis on a measurement set.

Every channel's curve is band-filtered to [f_min, f_max], local peaks
(positive and negative) crossing the magnitude level are detected, and the
peak frequencies of all channels are clustered into consensus mode
frequencies. Clusters with fewer than min-support member peaks are discarded
as noise.

Examples:
  # Analyze with defaults from the config file
  modalscan analyze --set survey.yaml

  # Narrow the band and raise the peak threshold
  modalscan analyze --set survey.yaml --f-min 5 --f-max 60 --level 0.02

  # Require peaks from at least 6 curves per mode, emit JSON
  modalscan analyze --set survey.yaml --min-support 6 -o json

  # Include the per-channel peak lists in the report
  modalscan analyze --set survey.yaml --include-peaks`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeSetFile, "set", "s", "",
		"measurement set file (YAML or JSON, required)")
	analyzeCmd.Flags().StringVar(&analyzeOutputFile, "out", "",
		"write the report to a file instead of stdout")
	analyzeCmd.Flags().Float64Var(&analyzeFMin, "f-min", 0,
		"lower analysis band bound [Hz]")
	analyzeCmd.Flags().Float64Var(&analyzeFMax, "f-max", 0,
		"upper analysis band bound [Hz]")
	analyzeCmd.Flags().Float64Var(&analyzeLevel, "level", 0,
		"peak magnitude threshold on |imag|")
	analyzeCmd.Flags().Float64Var(&analyzeTolerance, "tolerance", 0,
		"clustering tolerance [Hz]")
	analyzeCmd.Flags().IntVar(&analyzeMinSupport, "min-support", 0,
		"minimum peaks per cluster")
	analyzeCmd.Flags().Float64Var(&analyzeWindow, "window", 0,
		"value lookup half-width [Hz]")
	analyzeCmd.Flags().BoolVar(&analyzeIncludePeaks, "include-peaks", false,
		"include per-channel peak lists in the report")

	analyzeCmd.MarkFlagRequired("set")
}

// applyAnalysisFlags overrides config values with explicitly set flags
func applyAnalysisFlags(cmd *cobra.Command, cfg *configs.Config) {
	if cmd.Flags().Changed("f-min") {
		cfg.Analysis.FMin = analyzeFMin
	}
	if cmd.Flags().Changed("f-max") {
		cfg.Analysis.FMax = analyzeFMax
	}
	if cmd.Flags().Changed("level") {
		cfg.Analysis.Level = analyzeLevel
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Analysis.Tolerance = analyzeTolerance
	}
	if cmd.Flags().Changed("min-support") {
		cfg.Analysis.MinSupport = analyzeMinSupport
	}
	if cmd.Flags().Changed("window") {
		cfg.Analysis.Window = analyzeWindow
	}
	if cmd.Flags().Changed("include-peaks") {
		cfg.Output.IncludePeaks = analyzeIncludePeaks
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}
	applyAnalysisFlags(cmd, cfg)

	ctx := newContext(cfg, analyzeSetFile, analyzeOutputFile)

	surveyApp, err := app.NewSurveyApp(ctx)
	if err != nil {
		return err
	}

	result, err := surveyApp.Run()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return surveyApp.WriteResult(result)
}
