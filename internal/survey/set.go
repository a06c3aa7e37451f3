package survey

import (
	"fmt"
	"sort"
	"time"
)

// MeasurementSet describes where the measurement files of one survey live.
// Channel keys follow the P{corner}_{excitation}_{axis} scheme; a set may be
// partial for peak and mode analysis, but shape reconstruction needs all 16
// channels.
type MeasurementSet struct {
	Version     string    `json:"version" yaml:"version"`
	Description string    `json:"description" yaml:"description"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`

	// FrequencyScale overrides the instrument frequency scaling applied on
	// load. Zero means the reader default (0.1, i.e. 10×Hz input).
	FrequencyScale float64 `json:"frequency_scale,omitempty" yaml:"frequency_scale,omitempty"`

	// Channels maps channel identifiers to measurement file paths.
	Channels map[string]string `json:"channels" yaml:"channels"`
}

// Validate checks that the set names at least one channel and uses only
// known channel identifiers.
func (m *MeasurementSet) Validate() error {
	if len(m.Channels) == 0 {
		return fmt.Errorf("measurement set names no channels")
	}

	known := make(map[string]bool, 16)
	for _, key := range ChannelKeys() {
		known[key] = true
	}

	for key, path := range m.Channels {
		if !known[key] {
			return fmt.Errorf("unknown channel key %q (expected P{1..4}_{X|Y}_{x|y})", key)
		}
		if path == "" {
			return fmt.Errorf("channel %s has an empty file path", key)
		}
	}
	return nil
}

// MissingChannels returns the channel keys required for shape reconstruction
// that the set does not provide, in canonical order.
func (m *MeasurementSet) MissingChannels() []string {
	var missing []string
	for _, key := range ChannelKeys() {
		if m.Channels[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Complete reports whether all 16 channels are present.
func (m *MeasurementSet) Complete() bool {
	return len(m.MissingChannels()) == 0
}

// ChannelList returns the provided channel keys in canonical order.
func (m *MeasurementSet) ChannelList() []string {
	keys := make([]string, 0, len(m.Channels))
	for key := range m.Channels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
