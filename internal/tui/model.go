package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prepstack/prepstack-engine/internal/session"
)

// Model is the terminal runner for practice sets and quizzes: the linear
// navigation call site. Gestures go through the shared Runner, so status
// derivation and scoring stay in the engine.
type Model struct {
	runner   *session.Runner
	title    string
	snap     session.Session
	progress progress.Model
	cursor   int
	width    int
	quitting bool
}

func NewModel(title string, runner *session.Runner) Model {
	return Model{
		runner:   runner,
		title:    title,
		snap:     runner.Snapshot(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// tickMsg carries the per-second refresh.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.runner.StartClock(time.Second)
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(msg.Width-8, 10)
		return m, nil

	case tickMsg:
		m.snap = m.runner.Snapshot()
		if m.snap.Phase == session.PhaseFinished {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		m.runner.Close()
		m.quitting = true
		return m, tea.Quit
	}
	if m.snap.Phase == session.PhaseFinished {
		if key == "enter" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.CurrentQuestion().Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.runner.SelectOption(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.runner.SelectOption(int(key[0] - '1'))
	case "right", "n":
		m.runner.Advance()
		m.cursor = 0
	case "left", "p":
		m.runner.JumpTo(m.snap.Current - 1)
		m.cursor = 0
	case "m":
		m.runner.MarkForReview()
		m.cursor = 0
	case "c":
		m.runner.ClearResponse()
	case "s":
		m.runner.Submit()
	}
	m.snap = m.runner.Snapshot()
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap.Phase == session.PhaseFinished {
		return m.viewResult()
	}
	return m.viewQuestion()
}

func (m Model) viewQuestion() string {
	q := m.snap.CurrentQuestion()
	header := renderHeader(m.title, m.snap.TimeRemaining)
	counter := fmt.Sprintf("Question %d of %d", m.snap.Current+1, len(m.snap.Questions))
	prompt := promptStyle.Render(q.Prompt)

	selected, answered := m.snap.Answers[q.ID]
	options := ""
	for i, opt := range q.Options {
		options += renderOption(i, opt, m.cursor == i, answered && selected == i) + "\n"
	}

	answeredCount := m.snap.Counts().Answered + m.snap.Counts().AnsweredMarked
	bar := m.progress.ViewAs(float64(answeredCount) / float64(len(m.snap.Questions)))
	status := renderStatusLine(m.snap.Statuses[q.ID])
	footer := renderFooter()

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s\n%s\n%s\n\n%s\n", header, counter, prompt, options, status, bar, footer)
}

func (m Model) viewResult() string {
	res, _ := m.runner.Result()
	reason := "submitted"
	if m.snap.FinishedBy == session.FinishTimeout {
		reason = "time up"
	}
	body := fmt.Sprintf(
		"%s\n\nScore      %.2f\nAttempted  %d of %d\nCorrect    %d\nAccuracy   %d%%\n\n%s",
		resultTitleStyle.Render(fmt.Sprintf("%s: %s", m.title, reason)),
		res.RawScore, res.Attempted, len(m.snap.Questions),
		res.CorrectCount, res.AccuracyPercent,
		hintStyle.Render("enter to close"),
	)
	return resultBoxStyle.Render(body) + "\n"
}

func formatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
