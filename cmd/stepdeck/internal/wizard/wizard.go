// Package wizard interactively builds a stepdeck deck configuration.
package wizard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/germanamz/stepkit/cmd/stepdeck/internal/config"
)

// dialInput collects a dial's fields as strings for the huh forms; parsing
// happens after the form validators have accepted the input.
type dialInput struct {
	Label      string
	Minimum    string
	Maximum    string
	Step       string
	Initial    string
	Wraps      bool
	AutoRepeat bool
	Interval   string
}

// Run walks the user through building a deck and returns the validated
// result. The caller persists it with config.Save.
func Run() (config.Deck, error) {
	var deck config.Deck

	deck.Title = "stepdeck"
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Deck title").Value(&deck.Title),
	)).Run(); err != nil {
		return config.Deck{}, err
	}

	for {
		dial, err := promptDial()
		if err != nil {
			return config.Deck{}, err
		}

		deck.Dials = append(deck.Dials, dial)

		var more bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title("Add another dial?").Value(&more),
		)).Run(); err != nil {
			return config.Deck{}, err
		}

		if !more {
			break
		}
	}

	if err := deck.Validate(); err != nil {
		return config.Deck{}, err
	}

	return deck, nil
}

func promptDial() (config.Dial, error) {
	in := dialInput{
		Minimum:    "0",
		Maximum:    "100",
		Step:       "1",
		Initial:    "0",
		AutoRepeat: true,
		Interval:   "100ms",
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Dial label").Validate(validateNonEmpty).Value(&in.Label),
		huh.NewInput().Title("Minimum value").Validate(validateFloat).Value(&in.Minimum),
		huh.NewInput().Title("Maximum value").Validate(validateFloat).Value(&in.Maximum),
		huh.NewInput().Title("Step size").Validate(validatePositiveFloat).Value(&in.Step),
		huh.NewInput().Title("Initial value").Validate(validateFloat).Value(&in.Initial),
	)).Run(); err != nil {
		return config.Dial{}, err
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Wrap around at the bounds?").Value(&in.Wraps),
		huh.NewConfirm().Title("Auto-repeat while held?").Value(&in.AutoRepeat),
		huh.NewInput().Title("Auto-repeat interval (e.g. 100ms)").Validate(validateDuration).Value(&in.Interval),
	)).Run(); err != nil {
		return config.Dial{}, err
	}

	return in.dial()
}

// dial converts the collected strings into a config.Dial. The form
// validators guarantee the individual fields parse; cross-field constraints
// (min < max, initial in range) surface through Deck.Validate.
func (in dialInput) dial() (config.Dial, error) {
	minVal, err := strconv.ParseFloat(in.Minimum, 64)
	if err != nil {
		return config.Dial{}, fmt.Errorf("wizard: minimum: %w", err)
	}
	maxVal, err := strconv.ParseFloat(in.Maximum, 64)
	if err != nil {
		return config.Dial{}, fmt.Errorf("wizard: maximum: %w", err)
	}
	step, err := strconv.ParseFloat(in.Step, 64)
	if err != nil {
		return config.Dial{}, fmt.Errorf("wizard: step: %w", err)
	}
	initial, err := strconv.ParseFloat(in.Initial, 64)
	if err != nil {
		return config.Dial{}, fmt.Errorf("wizard: initial: %w", err)
	}

	autoRepeat := in.AutoRepeat
	return config.Dial{
		Label:      in.Label,
		Minimum:    minVal,
		Maximum:    maxVal,
		Step:       step,
		Initial:    initial,
		Wraps:      in.Wraps,
		AutoRepeat: &autoRepeat,
		Interval:   in.Interval,
	}, nil
}

func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateDuration(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a valid duration (e.g. 1s, 100ms)")
	}
	return nil
}
