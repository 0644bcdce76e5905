package deck

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-runewidth"

	"github.com/germanamz/stepkit/cmd/stepdeck/internal/gesture"
	"github.com/germanamz/stepkit/cmd/stepdeck/internal/styles"
	"github.com/germanamz/stepkit/pkg/stepper"
)

// Actuator identifies one of a dial's two input surfaces. The deck passes
// these as the stepper's opaque actuator identities and back into HoldBegin.
type Actuator string

const (
	ActuatorDecrement Actuator = "decrement"
	ActuatorIncrement Actuator = "increment"
)

const (
	labelWidth    = 14
	gaugeWidth    = 24
	clampFlashFor = 400 * time.Millisecond
)

// Dial is one stepper row on the deck: the control itself, the gesture
// detector that feeds its hold lifecycle, and presentation state.
type Dial struct {
	Label string
	S     *stepper.Stepper

	det   *gesture.Detector
	gauge progress.Model
	now   func() time.Time

	clampMaxAt time.Time
	clampMinAt time.Time
}

// NewDial wires a stepper into a deck row. The dial owns the stepper's clamp
// callback slots (for the flash presentation) and its hold lifecycle; the
// Listener and the remaining slots stay free for embedding applications.
func NewDial(label string, s *stepper.Stepper) *Dial {
	d := &Dial{
		Label: label,
		S:     s,
		gauge: progress.New(
			progress.WithWidth(gaugeWidth),
			progress.WithoutPercentage(),
			progress.WithSolidFill(string(styles.ColorAccent)),
		),
		now: time.Now,
	}

	d.det = gesture.New(gesture.DefaultQuietWindow,
		func(target any) { s.HoldBegin(target) },
		s.HoldEnd,
	)

	s.OnMaxClamped = func(*stepper.Stepper) { d.clampMaxAt = d.now() }
	s.OnMinClamped = func(*stepper.Stepper) { d.clampMinAt = d.now() }

	return d
}

// FromConfig builds a Dial from a validated dial configuration.
func FromConfig(label string, build func(decrement, increment any) *stepper.Stepper) *Dial {
	return NewDial(label, build(ActuatorDecrement, ActuatorIncrement))
}

// press forwards a key press on an actuator. Discrete steps apply only while
// no hold is in flight; once the detector promotes the press to a hold, the
// stepper's own repeat timer does the stepping.
func (d *Dial) press(a Actuator) {
	if d.det.Press(a) {
		return
	}
	switch a {
	case ActuatorDecrement:
		d.S.Decrement()
	case ActuatorIncrement:
		d.S.Increment()
	}
}

// tick advances the gesture quiet-window check.
func (d *Dial) tick() { d.det.Tick() }

// cancelHold force-ends any gesture in flight, e.g. when the dial loses the
// cursor.
func (d *Dial) cancelHold() { d.det.Cancel() }

// close releases the dial's stepper resources.
func (d *Dial) close() {
	d.det.Cancel()
	d.S.Close()
}

// setClock injects a clock into the dial and its detector, for tests.
func (d *Dial) setClock(now func() time.Time) {
	d.now = now
	d.det.SetNow(now)
}

// view renders the dial as a single row.
func (d *Dial) view(selected bool) string {
	now := d.now()

	cursor := "  "
	labelStyle := styles.LabelStyle
	if selected {
		cursor = styles.CursorStyle.Render("▸ ")
		labelStyle = styles.SelectedLabelStyle
	}

	label := labelStyle.Render(runewidth.FillRight(runewidth.Truncate(d.Label, labelWidth, "…"), labelWidth))

	holding := d.det.Holding()
	dec := d.actuatorCell("[-]", holding && d.det.Target() == ActuatorDecrement, now.Sub(d.clampMinAt) < clampFlashFor)
	inc := d.actuatorCell("[+]", holding && d.det.Target() == ActuatorIncrement, now.Sub(d.clampMaxAt) < clampFlashFor)

	span := d.S.Maximum() - d.S.Minimum()
	gauge := d.gauge.ViewAs((d.S.Value() - d.S.Minimum()) / span)

	value := styles.ValueStyle.Render(fmt.Sprintf("%6g", d.S.Value()))

	flags := ""
	if d.S.Wraps() {
		flags += " " + styles.FlagStyle.Render("⟳")
	}
	if !d.S.AutoRepeat() {
		flags += " " + styles.HintStyle.Render("∅")
	}
	if holding {
		flags += " " + styles.HoldStyle.Render("hold")
	}

	return cursor + label + " " + dec + " " + gauge + " " + value + " " + inc + flags
}

func (d *Dial) actuatorCell(glyph string, active, clamped bool) string {
	switch {
	case clamped:
		return styles.ActuatorClampedStyle.Render(glyph)
	case active:
		return styles.ActuatorActiveStyle.Render(glyph)
	default:
		return styles.ActuatorStyle.Render(glyph)
	}
}
