package configs

import (
	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components. The
// analysis defaults match the survey setup the tool was commissioned for;
// every one of them can be overridden per run.
func SetDefaults() {
	// Application defaults
	viper.SetDefault("verbose", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "console")
	viper.SetDefault("output_format", "table")

	// Analysis defaults
	viper.SetDefault("analysis.f_min", 0.5)
	viper.SetDefault("analysis.f_max", 120.0)
	viper.SetDefault("analysis.level", 0.01)
	viper.SetDefault("analysis.tolerance", 0.8)
	viper.SetDefault("analysis.min_support", 4)
	viper.SetDefault("analysis.window", 0.8)
	viper.SetDefault("analysis.display_scale", 0.25)

	// Output defaults
	viper.SetDefault("output.precision", 2)
	viper.SetDefault("output.pretty_print", true)
	viper.SetDefault("output.include_peaks", false)
}
