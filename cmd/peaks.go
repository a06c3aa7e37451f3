package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/modalscan/internal/app"
	"github.com/modalkit/modalscan/internal/survey"
	"github.com/modalkit/modalscan/pkg/frf"
)

var (
	// Peaks command flags
	peaksSetFile    string
	peaksOutputFile string
	peaksChannel    string
	peaksFMin       float64
	peaksFMax       float64
	peaksLevel      float64
)

// peaksCmd represents the peaks command
var peaksCmd = &cobra.Command{
	Use:   "peaks --set <measurement-set>",
	Short: "List detected peaks per channel",
	Long: `List the local extrema detected on each channel's band-filtered curve.

This is the per-curve view behind the analysis: every peak that crosses the
magnitude level is printed with its frequency and imaginary-part value, before
any cross-channel clustering. Useful for tuning the level and tolerance
parameters against a single noisy channel.

Examples:
  # Peaks of every channel in the set
  modalscan peaks --set survey.yaml

  # Only corner 2, X excitation, y axis
  modalscan peaks --set survey.yaml --channel P2_X_y

  # Lower threshold over a narrow band
  modalscan peaks --set survey.yaml --f-min 40 --f-max 55 --level 0.005`,
	RunE: runPeaks,
}

func init() {
	rootCmd.AddCommand(peaksCmd)

	peaksCmd.Flags().StringVarP(&peaksSetFile, "set", "s", "",
		"measurement set file (YAML or JSON, required)")
	peaksCmd.Flags().StringVar(&peaksOutputFile, "out", "",
		"write the report to a file instead of stdout")
	peaksCmd.Flags().StringVar(&peaksChannel, "channel", "",
		"restrict to one channel key, e.g. P1_X_x")
	peaksCmd.Flags().Float64Var(&peaksFMin, "f-min", 0,
		"lower analysis band bound [Hz]")
	peaksCmd.Flags().Float64Var(&peaksFMax, "f-max", 0,
		"upper analysis band bound [Hz]")
	peaksCmd.Flags().Float64Var(&peaksLevel, "level", 0,
		"peak magnitude threshold on |imag|")

	peaksCmd.MarkFlagRequired("set")
}

func runPeaks(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("f-min") {
		cfg.Analysis.FMin = peaksFMin
	}
	if cmd.Flags().Changed("f-max") {
		cfg.Analysis.FMax = peaksFMax
	}
	if cmd.Flags().Changed("level") {
		cfg.Analysis.Level = peaksLevel
	}
	cfg.Output.IncludePeaks = true

	if peaksChannel != "" {
		if err := validateChannelKey(peaksChannel); err != nil {
			return err
		}
	}

	ctx := newContext(cfg, peaksSetFile, peaksOutputFile)

	surveyApp, err := app.NewSurveyApp(ctx)
	if err != nil {
		return err
	}

	result, err := surveyApp.Run()
	if err != nil {
		return fmt.Errorf("peak detection failed: %w", err)
	}

	if peaksChannel != "" {
		peaks, ok := result.Peaks[peaksChannel]
		if !ok {
			return fmt.Errorf("channel %s is not part of the measurement set", peaksChannel)
		}
		result.Peaks = map[string][]frf.Peak{peaksChannel: peaks}
	}

	return surveyApp.WriteResult(result)
}

func validateChannelKey(key string) error {
	for _, known := range survey.ChannelKeys() {
		if key == known {
			return nil
		}
	}
	return fmt.Errorf("unknown channel key %q (expected P{1..4}_{X|Y}_{x|y})", key)
}
