package deck

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/germanamz/stepkit/cmd/stepdeck/internal/styles"
)

const helpMarkdown = `# stepdeck

Each row is a stepper dial. The actuator cells step the selected dial; a
clamped bound flashes red, a wrapping dial jumps to the opposite bound.

| Key | Action |
| --- | ------ |
| ↑/k, ↓/j | select dial |
| ←/h | step down, keep the key pressed to hold |
| →/l | step up, keep the key pressed to hold |
| w | toggle wrapping at the bounds |
| r | toggle auto-repeat |
| ? | toggle this help |
| q | quit |

Holding a step key starts the dial's auto-repeat; it keeps stepping at the
dial's interval until the key is released or a non-wrapping bound is hit.
`

// renderHelp renders the help overlay as terminal markdown, falling back to
// the raw text if the renderer cannot be built.
func renderHelp(width int) string {
	wrap := width - 4
	if wrap < 20 || wrap > 100 {
		wrap = 72
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return styles.HelpBorder.Render(helpMarkdown)
	}

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return styles.HelpBorder.Render(helpMarkdown)
	}

	return styles.HelpBorder.Render(strings.TrimRight(out, "\n"))
}
