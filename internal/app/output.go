package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/modalkit/modalscan/internal/survey"
)

// WriteResult renders a result value in the requested format to the output
// file, or stdout when no file is configured. Supported formats: json, yaml,
// table.
func (app *SurveyApp) WriteResult(v any) error {
	out := os.Stdout
	if app.ctx.OutputFile != "" {
		file, err := os.Create(app.ctx.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch app.ctx.OutputFormat {
	case "json":
		return writeJSON(out, v, app.ctx.Pretty)
	case "yaml":
		return writeYAML(out, v)
	case "table", "":
		return writeTable(out, v)
	default:
		return fmt.Errorf("unsupported output format %q (json, yaml, table)", app.ctx.OutputFormat)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	if err := yaml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML output: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, v any) error {
	switch result := v.(type) {
	case *AnalysisResult:
		return writeAnalysisTable(w, result)
	case *survey.DisplacementField:
		return writeFieldTable(w, result)
	default:
		// Fall back to YAML for values without a tabular rendering.
		return writeYAML(w, v)
	}
}

func writeAnalysisTable(w io.Writer, result *AnalysisResult) error {
	fmt.Fprintf(w, "Analysis band: %.2f .. %.2f Hz, peak level |imag| >= %g\n",
		result.Params.FMin, result.Params.FMax, result.Params.Level)
	fmt.Fprintf(w, "Channels: %d, total peaks: %d\n\n",
		result.Summary.ChannelCount, result.Summary.TotalPeaks)

	if len(result.Modes) == 0 {
		fmt.Fprintln(w, "No modes found. (adjust level, tolerance or min_support)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tFREQUENCY [Hz]\tSUPPORT\tSPREAD [Hz]")
	for i, mode := range result.Summary.Modes {
		fmt.Fprintf(tw, "%d\t%.2f\t%d\t%.3f\n", i+1, mode.Frequency, mode.Support, mode.Spread)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if result.Peaks != nil {
		fmt.Fprintln(w)
		for _, key := range survey.ChannelKeys() {
			peaks, ok := result.Peaks[key]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s peaks (%d):\n", key, len(peaks))
			for _, p := range peaks {
				fmt.Fprintf(w, "  f = %.2f Hz, imag = %.4g\n", p.Frequency, p.Value)
			}
		}
	}
	return nil
}

func writeFieldTable(w io.Writer, field *survey.DisplacementField) error {
	fmt.Fprintf(w, "Mode at %.2f Hz (lookup window ±%.3f Hz, normalization scale %.4g)\n\n",
		field.ModeFrequency, field.Window, field.Scale)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CORNER\tREST\tRAW\tNORMALIZED\tDISPLAY")
	for _, c := range field.Corners {
		fmt.Fprintf(tw, "P%d\t(%.1f, %.1f)\t(%.4g, %.4g)\t(%.4f, %.4f)\t(%.4f, %.4f)\n",
			c.Corner,
			c.Rest.X, c.Rest.Y,
			c.Raw.X, c.Raw.Y,
			c.Normalized.X, c.Normalized.Y,
			c.Display.X, c.Display.Y)
	}
	return tw.Flush()
}
