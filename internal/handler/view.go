package handler

import (
	"fmt"

	"derdiedas/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header   lipgloss.Style
	score    lipgloss.Style
	subtitle lipgloss.Style
	word     lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
	status   lipgloss.Style
}

func defaultStyles() styles {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		MarginRight(2)

	return styles{
		header:   lipgloss.NewStyle().Bold(true).MarginRight(4),
		score:    lipgloss.NewStyle().Faint(true),
		subtitle: lipgloss.NewStyle().MarginTop(1),
		word:     lipgloss.NewStyle().Bold(true).Padding(1, 4),
		button:   button,
		disabled: button.Foreground(lipgloss.Color("#777777")).BorderForeground(lipgloss.Color("#777777")),
		correct:  lipgloss.NewStyle().Foreground(lipgloss.Color("#117A65")),
		wrong:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C0392B")),
		status:   lipgloss.NewStyle().Faint(true),
	}
}

// View implements tea.Model
func (m Model) View() string {
	state := m.quiz.State()
	s := m.styles

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.header.Render("DER DIE DAS"),
		s.score.Render(m.quiz.Score().DisplayString()),
	)
	subtitle := s.subtitle.Render("Press s to begin. Choose with 1=der, 2=die, 3=das.")

	guessing := state == domain.StateRunning && !m.quiz.Answered()
	var buttons []string
	for i, a := range domain.Articles() {
		label := fmt.Sprintf("%s (%d)", a, i+1)
		if guessing {
			buttons = append(buttons, s.button.Render(label))
		} else {
			buttons = append(buttons, s.disabled.Render(label))
		}
	}

	feedback := ""
	if m.feedback != "" {
		if m.correct {
			feedback = s.correct.Render(m.feedback)
		} else {
			feedback = s.wrong.Render(m.feedback)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		subtitle,
		s.word.Render(m.word),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		feedback,
		s.status.Render(m.status),
		"",
		m.help.View(m.keys.forState(state, m.quiz.Answered())),
	)
}
