package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/modalkit/modalscan/internal/survey"
	"github.com/modalkit/modalscan/pkg/frf"
	"github.com/modalkit/modalscan/pkg/lvm"
)

// LoadMeasurementSet loads a measurement-set document from a YAML or JSON
// file, picked by extension. Unknown extensions try YAML first, then JSON.
func LoadMeasurementSet(filePath string) (*survey.MeasurementSet, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("measurement set file does not exist: %s", filePath)
	}

	ext := filepath.Ext(filePath)
	switch ext {
	case ".yaml", ".yml":
		return loadMeasurementSetYAML(filePath)
	case ".json":
		return loadMeasurementSetJSON(filePath)
	default:
		if set, err := loadMeasurementSetYAML(filePath); err == nil {
			return set, nil
		}
		return loadMeasurementSetJSON(filePath)
	}
}

func loadMeasurementSetYAML(filePath string) (*survey.MeasurementSet, error) {
	data, err := readAll(filePath)
	if err != nil {
		return nil, err
	}

	var set survey.MeasurementSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML measurement set: %w", err)
	}
	return &set, nil
}

func loadMeasurementSetJSON(filePath string) (*survey.MeasurementSet, error) {
	data, err := readAll(filePath)
	if err != nil {
		return nil, err
	}

	var set survey.MeasurementSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse JSON measurement set: %w", err)
	}
	return &set, nil
}

func readAll(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open measurement set file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read measurement set file: %w", err)
	}
	return data, nil
}

// LoadCurves reads every measurement file of the set into a per-channel
// curve map. File paths are resolved relative to the set file's directory.
func LoadCurves(set *survey.MeasurementSet, setPath string) (map[string]frf.Curve, error) {
	opts := lvm.DefaultOptions()
	if set.FrequencyScale != 0 {
		opts.FrequencyScale = set.FrequencyScale
	}

	baseDir := filepath.Dir(setPath)
	curves := make(map[string]frf.Curve, len(set.Channels))
	for _, key := range set.ChannelList() {
		path := set.Channels[key]
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		curve, err := lvm.ReadFile(path, opts)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", key, err)
		}
		curves[key] = curve
	}
	return curves, nil
}

// ValidateMeasurementSet validates a measurement-set file and reports its
// completeness.
func ValidateMeasurementSet(filePath string) error {
	set, err := LoadMeasurementSet(filePath)
	if err != nil {
		return fmt.Errorf("failed to load measurement set: %w", err)
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("measurement set validation failed: %w", err)
	}

	fmt.Printf("Measurement set is valid: %s\n", filePath)
	fmt.Printf("   - %d of %d channels provided\n", len(set.Channels), len(survey.ChannelKeys()))
	if missing := set.MissingChannels(); len(missing) > 0 {
		fmt.Printf("   - shape reconstruction unavailable, missing: %v\n", missing)
	}
	return nil
}

// GenerateExampleSet writes an example measurement-set file with all 16
// channel keys filled in.
func GenerateExampleSet(outputFile string) error {
	channels := make(map[string]string, 16)
	for _, key := range survey.ChannelKeys() {
		channels[key] = filepath.Join("data", key+".lvm")
	}

	example := &survey.MeasurementSet{
		Version:     "1.0",
		Description: "Example frame survey measurement set",
		UpdatedAt:   time.Now(),
		Channels:    channels,
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example measurement set: %w", err)
	}

	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write measurement set file: %w", err)
	}

	fmt.Printf("Example measurement set written to: %s\n", outputFile)
	return nil
}
