// Package config loads and validates the stepdeck YAML deck definition.
// Validation happens here, before any Stepper is configured: a bad file is a
// runtime error reported to the user, not a programmer error, so it must be
// rejected while it is still plain data.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/stepkit/pkg/stepper"
)

// DefaultInterval is the auto-repeat interval applied when a dial omits one.
const DefaultInterval = stepper.DefaultAutoRepeatInterval

// Deck is the top-level stepdeck configuration.
type Deck struct {
	Title string `yaml:"title"`
	Dials []Dial `yaml:"dials"`
}

// Dial describes one stepper control on the deck.
type Dial struct {
	Label         string  `yaml:"label"`
	Minimum       float64 `yaml:"minimum"`
	Maximum       float64 `yaml:"maximum"`
	Step          float64 `yaml:"step"`           // increment step; 0 means 1
	DecrementStep float64 `yaml:"decrement_step"` // 0 means same as step
	Initial       float64 `yaml:"initial"`
	Wraps         bool    `yaml:"wraps"`
	AutoRepeat    *bool   `yaml:"auto_repeat"` // nil means enabled
	Interval      string  `yaml:"interval"`    // duration string, e.g. "100ms"
}

// Load reads a YAML file and returns a validated Deck. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing, so
// deck values can be supplied from the environment (e.g. loaded from a .env
// file) rather than hardcoded.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Deck{}, fmt.Errorf("config: load deck: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var d Deck
	if err := yaml.Unmarshal([]byte(expanded), &d); err != nil {
		return Deck{}, fmt.Errorf("config: parse deck: %w", err)
	}

	if err := d.Validate(); err != nil {
		return Deck{}, err
	}

	return d, nil
}

// Save marshals the deck to YAML and writes it to path.
func Save(d Deck, path string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("config: marshal deck: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // deck file, not a secret
		return fmt.Errorf("config: write deck: %w", err)
	}

	return nil
}

// Default returns the deck used when no configuration file exists.
func Default() Deck {
	return Deck{
		Title: "stepdeck",
		Dials: []Dial{
			{Label: "Volume", Minimum: 0, Maximum: 100, Step: 1, Initial: 40},
			{Label: "Brightness", Minimum: 0, Maximum: 100, Step: 5, Initial: 75},
			{Label: "Channel", Minimum: 1, Maximum: 12, Step: 1, Initial: 1, Wraps: true},
		},
	}
}

// Validate checks every dial against the stepper invariants.
func (d Deck) Validate() error {
	if len(d.Dials) == 0 {
		return fmt.Errorf("config: deck has no dials")
	}

	for i, dial := range d.Dials {
		if err := dial.Validate(); err != nil {
			return fmt.Errorf("config: dial %d (%q): %w", i, dial.Label, err)
		}
	}

	return nil
}

// Validate checks the dial's fields against the stepper invariants.
func (dl Dial) Validate() error {
	if dl.Label == "" {
		return fmt.Errorf("label is required")
	}
	if dl.Minimum >= dl.Maximum {
		return fmt.Errorf("minimum %v must be less than maximum %v", dl.Minimum, dl.Maximum)
	}
	if dl.Step < 0 {
		return fmt.Errorf("step %v must not be negative", dl.Step)
	}
	if dl.DecrementStep < 0 {
		return fmt.Errorf("decrement_step %v must not be negative", dl.DecrementStep)
	}
	if dl.Initial < dl.Minimum || dl.Initial > dl.Maximum {
		return fmt.Errorf("initial %v outside [%v, %v]", dl.Initial, dl.Minimum, dl.Maximum)
	}
	if _, err := dl.ParseInterval(); err != nil {
		return err
	}
	return nil
}

// ParseInterval returns the dial's auto-repeat interval, defaulting when the
// field is empty.
func (dl Dial) ParseInterval() (time.Duration, error) {
	if dl.Interval == "" {
		return DefaultInterval, nil
	}
	iv, err := time.ParseDuration(dl.Interval)
	if err != nil {
		return 0, fmt.Errorf("interval %q: %w", dl.Interval, err)
	}
	if iv <= 0 {
		return 0, fmt.Errorf("interval %q must be positive", dl.Interval)
	}
	return iv, nil
}

// Build constructs a Stepper configured per the dial. The dial must have been
// validated; Build applies the panicking setters in a bound-safe order.
func (dl Dial) Build(decrement, increment any) *stepper.Stepper {
	s := stepper.New(decrement, increment)

	// Order matters: each setter validates against the other bound's current
	// value, so widen in the direction that stays consistent throughout.
	if dl.Maximum > s.Minimum() {
		s.SetMaximum(dl.Maximum)
		s.SetMinimum(dl.Minimum)
	} else {
		s.SetMinimum(dl.Minimum)
		s.SetMaximum(dl.Maximum)
	}

	step := dl.Step
	if step == 0 {
		step = 1
	}
	decStep := dl.DecrementStep
	if decStep == 0 {
		decStep = step
	}
	s.SetIncrementStep(step)
	s.SetDecrementStep(decStep)

	s.SetWraps(dl.Wraps)

	iv, err := dl.ParseInterval()
	if err != nil {
		iv = DefaultInterval
	}
	s.SetAutoRepeatInterval(iv)
	if dl.AutoRepeat != nil {
		s.SetAutoRepeat(*dl.AutoRepeat)
	}

	s.SetValue(dl.Initial)
	return s
}
