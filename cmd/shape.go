package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/modalscan/internal/app"
)

var (
	// Shape command flags
	shapeSetFile    string
	shapeOutputFile string
	shapeModeIndex  int
	shapeFrequency  float64
	shapeWindow     float64
	shapeScale      float64
)

// shapeCmd represents the shape command
var shapeCmd = &cobra.Command{
	Use:   "shape --set <measurement-set>",
	Short: "Reconstruct the displacement field for one mode",
	Long: `Reconstruct the qualitative deformation shape of the test frame for a
selected mode.

The analysis runs first (band filter, peak detection, clustering); then for
each corner the imaginary-part values near the mode frequency are combined
into a 2-D displacement vector. The field is normalized by its maximum
vector norm so the display scale bounds the drawn deformation.

Shape reconstruction requires the complete 16-channel measurement set; a set
missing channels is refused before any lookup runs.

Examples:
  # Shape of the lowest-frequency mode
  modalscan shape --set survey.yaml

  # Third mode from the computed list, wider lookup window
  modalscan shape --set survey.yaml --mode-index 2 --window 1.2

  # Shape at an explicit frequency
  modalscan shape --set survey.yaml --frequency 46.2 -o json`,
	RunE: runShape,
}

func init() {
	rootCmd.AddCommand(shapeCmd)

	shapeCmd.Flags().StringVarP(&shapeSetFile, "set", "s", "",
		"measurement set file (YAML or JSON, required)")
	shapeCmd.Flags().StringVar(&shapeOutputFile, "out", "",
		"write the report to a file instead of stdout")
	shapeCmd.Flags().IntVar(&shapeModeIndex, "mode-index", 0,
		"index into the computed mode list (ascending frequency)")
	shapeCmd.Flags().Float64Var(&shapeFrequency, "frequency", 0,
		"reconstruct at this frequency [Hz] instead of a computed mode")
	shapeCmd.Flags().Float64Var(&shapeWindow, "window", 0,
		"value lookup half-width [Hz]")
	shapeCmd.Flags().Float64Var(&shapeScale, "scale", 0,
		"display deformation scale")

	shapeCmd.MarkFlagRequired("set")
}

func runShape(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		cfg.Analysis.DisplayScale = shapeScale
	}

	window := cfg.Analysis.Window
	if cmd.Flags().Changed("window") {
		window = shapeWindow
	}

	ctx := newContext(cfg, shapeSetFile, shapeOutputFile)

	surveyApp, err := app.NewSurveyApp(ctx)
	if err != nil {
		return err
	}

	field, err := surveyApp.Shape(shapeModeIndex, shapeFrequency, window)
	if err != nil {
		return fmt.Errorf("shape reconstruction failed: %w", err)
	}

	return surveyApp.WriteResult(field)
}
