package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	Quiet        bool   `mapstructure:"quiet"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	OutputFormat string `mapstructure:"output_format"`
	ConfigDir    string `mapstructure:"config_dir"`

	// Analysis parameters
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// AnalysisConfig contains the survey analysis parameters
type AnalysisConfig struct {
	FMin         float64 `mapstructure:"f_min"`
	FMax         float64 `mapstructure:"f_max"`
	Level        float64 `mapstructure:"level"`
	Tolerance    float64 `mapstructure:"tolerance"`
	MinSupport   int     `mapstructure:"min_support"`
	Window       float64 `mapstructure:"window"`
	DisplayScale float64 `mapstructure:"display_scale"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision    int  `mapstructure:"precision"`
	PrettyPrint  bool `mapstructure:"pretty_print"`
	IncludePeaks bool `mapstructure:"include_peaks"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Analysis.FMax <= config.Analysis.FMin {
		return fmt.Errorf("f_max must be greater than f_min")
	}

	if config.Analysis.Level < 0 {
		return fmt.Errorf("peak level cannot be negative")
	}

	if config.Analysis.Tolerance <= 0 {
		return fmt.Errorf("clustering tolerance must be positive")
	}

	if config.Analysis.MinSupport < 1 {
		return fmt.Errorf("min support must be at least 1")
	}

	if config.Analysis.Window < 0 {
		return fmt.Errorf("lookup window cannot be negative")
	}

	if config.Output.Precision < 0 {
		return fmt.Errorf("output precision cannot be negative")
	}

	return nil
}
