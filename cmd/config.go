package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modalkit/modalscan/internal/app"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration and measurement-set files",
	Long: `Manage modalscan configuration and measurement-set files.

A measurement set is a YAML or JSON document mapping channel keys
(P{1..4}_{X|Y}_{x|y}) to LVM measurement files. Analysis runs with any
subset of channels; shape reconstruction requires all 16.`,
}

// configShowCmd shows the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the effective configuration after config file, environment and flags are merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadValidatedConfig()
		if err != nil {
			return err
		}

		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Printf("Config file: %s\n\n", used)
		}

		fmt.Println("Analysis:")
		fmt.Printf("  f_min:         %g Hz\n", cfg.Analysis.FMin)
		fmt.Printf("  f_max:         %g Hz\n", cfg.Analysis.FMax)
		fmt.Printf("  level:         %g\n", cfg.Analysis.Level)
		fmt.Printf("  tolerance:     %g Hz\n", cfg.Analysis.Tolerance)
		fmt.Printf("  min_support:   %d\n", cfg.Analysis.MinSupport)
		fmt.Printf("  window:        %g Hz\n", cfg.Analysis.Window)
		fmt.Printf("  display_scale: %g\n", cfg.Analysis.DisplayScale)
		fmt.Println("Output:")
		fmt.Printf("  format:        %s\n", cfg.OutputFormat)
		fmt.Printf("  precision:     %d\n", cfg.Output.Precision)
		fmt.Printf("  pretty_print:  %t\n", cfg.Output.PrettyPrint)
		fmt.Printf("  include_peaks: %t\n", cfg.Output.IncludePeaks)
		return nil
	},
}

// configValidateCmd validates a measurement-set file
var configValidateCmd = &cobra.Command{
	Use:   "validate <measurement-set>",
	Short: "Validate a measurement-set file",
	Long: `Validate a measurement-set file: parse it, check that every channel key is
a known P{corner}_{excitation}_{axis} combination, and report whether the
set is complete enough for shape reconstruction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.ValidateMeasurementSet(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

// configExampleCmd generates an example measurement-set file
var configExampleCmd = &cobra.Command{
	Use:   "example <output-file>",
	Short: "Generate an example measurement-set file",
	Long: `Generate an example measurement-set file with all 16 channel keys mapped
to placeholder LVM paths. Edit the paths to point at the actual exports.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.GenerateExampleSet(args[0])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configExampleCmd)
}
