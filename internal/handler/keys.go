package handler

import (
	"derdiedas/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Start key.Binding
	Next  key.Binding
	Der   key.Binding
	Die   key.Binding
	Das   key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "start"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("any key", "next"),
		),
		Der: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "der"),
		),
		Die: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "die"),
		),
		Das: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "das"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// article maps the digit keys to der/die/das
func (k keyMap) article(msg tea.KeyMsg) (domain.Article, bool) {
	switch {
	case key.Matches(msg, k.Der):
		return domain.ArticleDer, true
	case key.Matches(msg, k.Die):
		return domain.ArticleDie, true
	case key.Matches(msg, k.Das):
		return domain.ArticleDas, true
	}
	return "", false
}

// forState enables only the bindings that do something in state
func (k keyMap) forState(state domain.QuizState, answered bool) keyMap {
	guessing := state == domain.StateRunning && !answered

	k.Start.SetEnabled(state == domain.StateIdle)
	k.Next.SetEnabled(state == domain.StateAwaitingAcknowledgment)
	k.Der.SetEnabled(guessing)
	k.Die.SetEnabled(guessing)
	k.Das.SetEnabled(guessing)
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Der, k.Die, k.Das, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
