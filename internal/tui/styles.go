package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/prepstack/prepstack-engine/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	clockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	promptStyle = lipgloss.NewStyle().PaddingTop(1)
	hintStyle   = lipgloss.NewStyle().Faint(true)

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)

	resultTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	resultBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 3)

	statusLabels = map[session.QuestionStatus]string{
		session.StatusNotVisited:     "not visited",
		session.StatusNotAnswered:    "not answered",
		session.StatusAnswered:       "answered",
		session.StatusMarked:         "marked for review",
		session.StatusAnsweredMarked: "answered, marked for review",
	}
	statusColors = map[session.QuestionStatus]lipgloss.Color{
		session.StatusNotVisited:     lipgloss.Color("240"),
		session.StatusNotAnswered:    lipgloss.Color("203"),
		session.StatusAnswered:       lipgloss.Color("78"),
		session.StatusMarked:         lipgloss.Color("135"),
		session.StatusAnsweredMarked: lipgloss.Color("141"),
	}
)

func renderHeader(title string, remaining int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(title),
		"  ",
		clockStyle.Render(formatClock(remaining)),
	)
}

func renderOption(i int, text string, cursor, selected bool) string {
	marker := " "
	if selected {
		marker = "●"
	}
	line := fmt.Sprintf("%s %d. %s", marker, i+1, text)
	switch {
	case cursor:
		return cursorStyle.Render("> " + line)
	case selected:
		return selectedStyle.Render("  " + line)
	default:
		return "  " + line
	}
}

func renderStatusLine(st session.QuestionStatus) string {
	style := lipgloss.NewStyle().Foreground(statusColors[st])
	return hintStyle.Render("status: ") + style.Render(statusLabels[st])
}

func renderFooter() string {
	return hintStyle.Render("↑/↓ choose · enter select · ←/→ prev/next · m mark · c clear · s submit · q quit")
}
