package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/modalkit/modalscan/configs"
	"github.com/modalkit/modalscan/internal/app"
	"github.com/modalkit/modalscan/internal/survey"
)

var (
	configFile   string
	configDir    string
	verbose      bool
	quiet        bool
	logLevel     string
	logFormat    string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "modalscan",
	Short: "Structural mode survey from frequency-response measurements",
	Long: `modalscan extracts structural resonance frequencies from repeated
frequency-response measurements and reconstructs a qualitative deformation
shape for each mode.

Measurements arrive as per-channel LVM exports (frequency, imaginary part).
Up to 16 channels (4 corner points x 2 excitation directions x 2 measurement
axes) are analyzed jointly: peaks are detected per curve, clustered across
channels into consensus mode frequencies, and for a selected mode the corner
displacement field is reconstructed and normalized for display.

The method is a heuristic peak-picking approach on the imaginary part of a
transfer function, explicitly qualitative; it is not a rigorous experimental
modal analysis.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"config directory (default is $HOME/.config/modalscan)")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/modalscan/modalscan.yaml)")

	// Output and logging flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"errors only")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console",
		"log format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"output format (json, yaml, table)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config-dir"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "modalscan"))
		viper.AddConfigPath("/etc/modalscan")
		viper.AddConfigPath("./configs")
		viper.SetConfigName("modalscan")
		viper.SetConfigType("yaml")
	}

	// Environment variable support
	viper.SetEnvPrefix("MODALSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configs.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// initializeConfig initializes configuration after flags are parsed
func initializeConfig(cmd *cobra.Command) error {
	return bindFlags(cmd, viper.GetViper())
}

// bindFlags binds each cobra flag to its associated viper configuration
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = err
			}
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}

		if err := v.BindEnv(f.Name, "MODALSCAN_"+envVarSuffix); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

// newContext builds the application context shared by the survey commands
func newContext(cfg *configs.Config, setFile, outputFile string) *app.Context {
	return &app.Context{
		SetFile:      setFile,
		OutputFile:   outputFile,
		OutputFormat: cfg.OutputFormat,
		Pretty:       cfg.Output.PrettyPrint,
		IncludePeaks: cfg.Output.IncludePeaks,
		Verbose:      cfg.Verbose,
		Quiet:        cfg.Quiet,
		LogLevel:     cfg.LogLevel,
		LogFormat:    cfg.LogFormat,
		Params: survey.Params{
			FMin:         cfg.Analysis.FMin,
			FMax:         cfg.Analysis.FMax,
			Level:        cfg.Analysis.Level,
			Tolerance:    cfg.Analysis.Tolerance,
			MinSupport:   cfg.Analysis.MinSupport,
			Window:       cfg.Analysis.Window,
			DisplayScale: cfg.Analysis.DisplayScale,
		},
	}
}

// loadValidatedConfig loads and validates the application configuration
func loadValidatedConfig() (*configs.Config, error) {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
