package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the page title. Also drives the cursor blink.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// pageTitle is rendered letter-spaced in the header.
const pageTitle = "A TYPICAL PAGE"

// renderShimmerLogo renders text as a flowing wave between a deep and a
// bright violet. Spaces in text are kept as-is.
func renderShimmerLogo(text string, frame int) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	var out string
	t := float64(frame)
	for i, ch := range runes {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Deep:   (61, 0, 128)    #3d0080
		// Bright: (196, 181, 253) #c4b5fd
		r := clampByte(61 + b*(196-61))
		g := clampByte(0 + b*(181-0))
		bl := clampByte(128 + b*(253-128))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)
		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(ch))

		if i < n-1 {
			out += " "
		}
	}
	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a78bfa"))

	// Field validation
	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	invalidLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06060")).
				Bold(true)

	validMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d474"))

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Submit button
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#4f005f")).
			Bold(true).
			Padding(0, 2)

	buttonFocusedStyle = buttonStyle.
				Background(lipgloss.Color("#741188"))

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878")).
				Background(lipgloss.Color("#1e1e2a")).
				Padding(0, 2)

	// Card around the form and the welcome message
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1e1e2a")).
			Padding(1, 3)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	navStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))
)

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
