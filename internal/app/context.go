package app

import (
	"fmt"
	"time"

	"github.com/modalkit/modalscan/internal/survey"
	"github.com/modalkit/modalscan/pkg/frf"
	"github.com/modalkit/modalscan/pkg/logging"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	SetFile      string // Measurement set file (required)
	OutputFile   string
	OutputFormat string
	Pretty       bool
	IncludePeaks bool
	Verbose      bool
	Quiet        bool
	LogLevel     string
	LogFormat    string

	// Analysis parameters
	Params survey.Params

	// Runtime context
	Logger logging.Logger
	Set    *survey.MeasurementSet
}

// AnalysisResult is the externally visible outcome of one survey run
type AnalysisResult struct {
	SetFile     string                 `json:"set_file" yaml:"set_file"`
	GeneratedAt time.Time              `json:"generated_at" yaml:"generated_at"`
	Params      survey.Params          `json:"params" yaml:"params"`
	Modes       []float64              `json:"modes" yaml:"modes"`
	Summary     *survey.RunSummary     `json:"summary" yaml:"summary"`
	Peaks       map[string][]frf.Peak  `json:"peaks,omitempty" yaml:"peaks,omitempty"`
}

// SurveyApp handles the survey application lifecycle
type SurveyApp struct {
	ctx          *Context
	set          *survey.MeasurementSet
	orchestrator *survey.Orchestrator
	logger       logging.Logger
}

// NewSurveyApp creates a new survey application
func NewSurveyApp(ctx *Context) (*SurveyApp, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	set, err := LoadMeasurementSet(ctx.SetFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load measurement set: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid measurement set: %w", err)
	}
	ctx.Set = set

	orchestrator, err := survey.NewOrchestrator(ctx.Params, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("survey application initialized", logging.Fields{
		"set_file":      ctx.SetFile,
		"channels":      len(set.Channels),
		"complete":      set.Complete(),
		"output_format": ctx.OutputFormat,
	})

	return &SurveyApp{
		ctx:          ctx,
		set:          set,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}

// setupLogging configures the package-level logger from the context
func setupLogging(ctx *Context) logging.Logger {
	level := ctx.LogLevel
	if ctx.Verbose {
		level = "debug"
	}
	if ctx.Quiet {
		level = "error"
	}

	logging.Configure(logging.Config{
		Level:  level,
		Format: ctx.LogFormat,
	})

	return logging.WithFields(logging.Fields{
		"component": "modalscan",
	})
}

// Run loads all measurement files, detects peaks, and clusters the
// consensus modes.
func (app *SurveyApp) Run() (*AnalysisResult, error) {
	curves, err := LoadCurves(app.set, app.ctx.SetFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load measurement data: %w", err)
	}

	if err := app.orchestrator.LoadCurves(curves); err != nil {
		return nil, err
	}
	if err := app.orchestrator.Analyze(); err != nil {
		return nil, err
	}

	summary, err := app.orchestrator.Summary()
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{
		SetFile:     app.ctx.SetFile,
		GeneratedAt: time.Now(),
		Params:      app.orchestrator.Params(),
		Modes:       app.orchestrator.Modes(),
		Summary:     summary,
	}
	if app.ctx.IncludePeaks {
		result.Peaks = app.orchestrator.Peaks()
	}

	app.logger.Info("survey analysis completed", logging.Fields{
		"channels": len(curves),
		"modes":    len(result.Modes),
	})
	return result, nil
}

// Orchestrator exposes the underlying run for follow-up operations.
func (app *SurveyApp) Orchestrator() *survey.Orchestrator {
	return app.orchestrator
}

// Shape runs the analysis if needed and reconstructs the displacement field
// for one mode. A non-zero frequency selects the mode directly; otherwise
// modeIndex picks from the computed mode list.
func (app *SurveyApp) Shape(modeIndex int, frequency, window float64) (*survey.DisplacementField, error) {
	if missing := app.set.MissingChannels(); len(missing) > 0 {
		return nil, fmt.Errorf("measurement set is missing channels required for shape reconstruction: %v", missing)
	}

	if app.orchestrator.State() < survey.StateAnalyzed {
		if _, err := app.Run(); err != nil {
			return nil, err
		}
	}

	target := frequency
	if target == 0 {
		modes := app.orchestrator.Modes()
		if len(modes) == 0 {
			return nil, fmt.Errorf("no modes found; adjust level, tolerance or min_support")
		}
		if modeIndex < 0 || modeIndex >= len(modes) {
			return nil, fmt.Errorf("mode index %d out of range (found %d modes)", modeIndex, len(modes))
		}
		target = modes[modeIndex]
	}

	return app.orchestrator.DisplacementField(target, window)
}
