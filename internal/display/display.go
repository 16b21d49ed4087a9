package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vardovia/vardovia/internal/game"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	bannerStyle    = lipgloss.NewStyle().Bold(true).Border(lipgloss.DoubleBorder()).Padding(0, 4)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	greenStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func colorStyle(color string) lipgloss.Style {
	switch color {
	case "green":
		return greenStyle
	case "yellow":
		return yellowStyle
	case "red":
		return redStyle
	default:
		return lipgloss.NewStyle()
	}
}

// RenderNarration word-wraps game-master text to width columns.
func RenderNarration(text string, width int) string {
	text = strings.TrimSpace(text)
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// RenderUserMessage renders an action the player typed.
func RenderUserMessage(text string) string {
	return userStyle.Render("> " + strings.TrimSpace(text))
}

// RenderSeparator draws a horizontal rule width columns wide.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = 50
	}
	return separatorStyle.Render(strings.Repeat("─", width))
}

// RenderStatus renders the status panel for a game state.
func RenderStatus(st *game.State) string {
	if st == nil {
		return dimStyle.Render("No game state yet")
	}

	styleFunc := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return titleStyle.Padding(0, 1)
		}
		switch col {
		case 2:
			return colorStyle(HealthToColor(st.Health)).Padding(0, 1)
		case 3:
			return colorStyle(DangerToColor(st.Danger)).Padding(0, 1)
		}
		return lipgloss.NewStyle().Padding(0, 1)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(separatorStyle).
		StyleFunc(styleFunc).
		Headers("Location", "Time", "Health", "Danger", "Inventory").
		Row(
			orUnknown(st.Location),
			orUnknown(st.Time),
			FormatNumber(st.Health),
			FormatNumber(st.Danger),
			FormatItemCount(len(st.Inventory)),
		)

	var b strings.Builder
	b.WriteString(t.Render())
	if len(st.Inventory) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Carrying: " + FormatInventory(st.Inventory)))
	}
	return b.String()
}

// RenderImage renders the scene image line.
func RenderImage(url string) string {
	return dimStyle.Render("Scene image: ") + url
}

// RenderBanner renders the opening title and premise.
func RenderBanner() string {
	lines := []string{
		bannerStyle.Render("ESCAPE FROM VARDOVIA"),
		"",
		"1989, somewhere in Eastern Europe...",
		"You are Arsen Dvorak, a journalist investigating the corrupt regime of Vardovia.",
		"After publishing an exposé, you were captured and imprisoned in a secret facility.",
		"You've just woken up in a dark basement, your head pounding from the drugs they gave you.",
		"",
		dimStyle.Render("Type your actions in simple English, e.g. 'search the room', 'open the door', 'talk to the guard'."),
		dimStyle.Render("Type 'quit' to exit."),
	}
	return strings.Join(lines, "\n")
}

// RenderEnding renders the closing line for a session ending flag.
func RenderEnding(ending string) string {
	switch ending {
	case game.EndingEscaped:
		return greenStyle.Bold(true).Render("You have escaped Vardovia. The session ends.")
	case game.EndingDead:
		return redStyle.Bold(true).Render("You have died. Game over.")
	default:
		return ""
	}
}
