// Package filter decides which extracted candidates are frequent enough to
// keep. The minimum occurrence count adapts to document length through a
// step function; long phrases are kept regardless of frequency.
//
// A Filter is immutable. Each document resolves its own Threshold, so one
// Filter can serve concurrent extractions.
package filter

import (
	"fmt"
	"math"
)

// Step maps document lengths below Lim to Value.
type Step struct {
	Lim   int `yaml:"lim" json:"lim"`
	Value int `yaml:"value" json:"value"`
}

// LengthSteps defines the length -> minimum occurrence step function.
// Values must be ascending by Lim. Max.Lim is informational: any length not
// caught by Min or Values uses Max.Value.
type LengthSteps struct {
	Min    Step   `yaml:"min" json:"min"`
	Values []Step `yaml:"values" json:"values"`
	Max    Step   `yaml:"max" json:"max"`
}

// Config holds filter settings.
type Config struct {
	// MinOccur is the threshold used before a document length is known.
	MinOccur int `yaml:"min_occur" json:"min_occur"`
	// NoLimitStrength is the word count at which a phrase is kept
	// whatever its frequency.
	NoLimitStrength int         `yaml:"no_limit_strength" json:"no_limit_strength"`
	LengthSteps     LengthSteps `yaml:"length_steps" json:"length_steps"`
}

// DefaultConfig returns the default filter settings.
func DefaultConfig() Config {
	return Config{
		MinOccur:        7,
		NoLimitStrength: 2,
		LengthSteps: LengthSteps{
			Min:    Step{Lim: 1000, Value: 1},
			Values: []Step{{Lim: 3000, Value: 4}},
			Max:    Step{Lim: 6000, Value: 7},
		},
	}
}

// Validate checks that the step function is well formed and monotonic.
func (c Config) Validate() error {
	if c.MinOccur < 1 {
		return fmt.Errorf("min_occur must be at least 1, got %d", c.MinOccur)
	}
	if c.NoLimitStrength < 1 {
		return fmt.Errorf("no_limit_strength must be at least 1, got %d", c.NoLimitStrength)
	}

	steps := make([]Step, 0, len(c.LengthSteps.Values)+2)
	steps = append(steps, c.LengthSteps.Min)
	steps = append(steps, c.LengthSteps.Values...)
	steps = append(steps, c.LengthSteps.Max)

	for i, s := range steps {
		if s.Value < 1 {
			return fmt.Errorf("length step %d: value must be at least 1, got %d", i, s.Value)
		}
		if i == 0 {
			continue
		}
		prev := steps[i-1]
		if s.Lim <= prev.Lim {
			return fmt.Errorf("length step %d: lim %d must be greater than %d", i, s.Lim, prev.Lim)
		}
		if s.Value < prev.Value {
			return fmt.Errorf("length step %d: value %d is lower than previous value %d", i, s.Value, prev.Value)
		}
	}
	return nil
}

// Threshold is the acceptance rule for one document.
type Threshold struct {
	MinOccur        int `json:"min_occur"`
	NoLimitStrength int `json:"no_limit_strength"`
}

// Accept reports whether a candidate seen occur times and made of strength
// words is kept.
func (t Threshold) Accept(occur, strength int) bool {
	return strength >= t.NoLimitStrength || occur >= t.MinOccur
}

// Filter resolves thresholds from document lengths.
type Filter struct {
	cfg Config
}

// New creates a Filter after validating cfg.
func New(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter config: %w", err)
	}
	cfg.LengthSteps.Values = append([]Step(nil), cfg.LengthSteps.Values...)
	return &Filter{cfg: cfg}, nil
}

// Default returns a Filter with DefaultConfig.
func Default() *Filter {
	f, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return f
}

// Config returns a copy of the filter settings.
func (f *Filter) Config() Config {
	cfg := f.cfg
	cfg.LengthSteps.Values = append([]Step(nil), f.cfg.LengthSteps.Values...)
	return cfg
}

// Default returns the threshold used before any length is known.
func (f *Filter) Default() Threshold {
	return Threshold{MinOccur: f.cfg.MinOccur, NoLimitStrength: f.cfg.NoLimitStrength}
}

// Configure returns the threshold for a document of length tokens.
// Boundaries are exclusive: a length equal to a step's Lim falls into the
// next step.
func (f *Filter) Configure(length int) Threshold {
	return Threshold{MinOccur: f.minOccur(length), NoLimitStrength: f.cfg.NoLimitStrength}
}

// ConfigureFloat is Configure for lengths that may not be numbers. NaN and
// infinite lengths leave the threshold at Default and report false.
func (f *Filter) ConfigureFloat(length float64) (Threshold, bool) {
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return f.Default(), false
	}
	// Lengths compare against integer limits, so rounding up preserves
	// every strict boundary.
	length = math.Max(math.Min(math.Ceil(length), math.MaxInt32), math.MinInt32)
	return f.Configure(int(length)), true
}

func (f *Filter) minOccur(length int) int {
	steps := f.cfg.LengthSteps
	if length < steps.Min.Lim {
		return steps.Min.Value
	}
	for _, s := range steps.Values {
		if length < s.Lim {
			return s.Value
		}
	}
	return steps.Max.Value
}
