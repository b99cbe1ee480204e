package handler

import (
	"fmt"
	"strings"
	"time"

	"derdiedas/internal/domain"
	"derdiedas/internal/service"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// advanceMsg fires after the pause that follows a correct answer.
// seq identifies the question it was scheduled for.
type advanceMsg struct {
	seq int
}

// Model is the terminal shell around the quiz: it routes keys to the quiz
// and renders its state
type Model struct {
	quiz   *service.QuizService
	delay  time.Duration
	logger *zap.Logger
	keys   keyMap
	help   help.Model
	styles styles

	word     string
	feedback string
	correct  bool
	status   string
	seq      int
}

// NewModel creates a new UI model for an idle quiz
func NewModel(quiz *service.QuizService, delay time.Duration, logger *zap.Logger) Model {
	return Model{
		quiz:   quiz,
		delay:  delay,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
		word:   "-",
		status: "Ready.",
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case advanceMsg:
		// Stale ticks belong to a question that is no longer shown
		if msg.seq != m.seq {
			return m, nil
		}
		return m.Next(), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.logger.Info("Quiz closed", zap.String("score", m.quiz.Score().DisplayString()))
		return m, tea.Quit
	}

	switch m.quiz.State() {
	case domain.StateIdle:
		if key.Matches(msg, m.keys.Start) {
			return m.Start(), nil
		}
	case domain.StateAwaitingAcknowledgment:
		// Any key acknowledges a wrong answer
		return m.Next(), nil
	case domain.StateRunning:
		if article, ok := m.keys.article(msg); ok {
			return m.Guess(article)
		}
	}
	return m, nil
}

// Start begins the quiz and shows the first word
func (m Model) Start() Model {
	q, err := m.quiz.Start()
	if err != nil {
		m.logger.Error("Failed to start quiz", zap.Error(err))
		m.status = err.Error()
		return m
	}

	m.status = "Quiz started. Good luck!"
	return m.show(q)
}

// Next shows the following word once the current one has been answered
func (m Model) Next() Model {
	q, ok := m.quiz.Next()
	if !ok {
		return m
	}
	return m.show(q)
}

// Guess submits an article. A correct guess schedules the move to the next word.
func (m Model) Guess(article domain.Article) (Model, tea.Cmd) {
	result, ok := m.quiz.Submit(article)
	if !ok {
		return m, nil
	}

	if result.Correct {
		m.feedback = "Correct!"
		m.correct = true
		m.status = fmt.Sprintf("Nice! Pressed %s.", strings.ToUpper(article.String()))

		seq := m.seq
		return m, tea.Tick(m.delay, func(time.Time) tea.Msg {
			return advanceMsg{seq: seq}
		})
	}

	m.feedback = fmt.Sprintf("Wrong. Correct answer: %s", strings.ToUpper(result.Answer.String()))
	m.correct = false
	m.status = "Press any key or Next to continue."
	return m, nil
}

func (m Model) show(q service.Question) Model {
	m.seq++
	m.word = q.Word
	m.feedback = ""
	if q.Reshuffled {
		m.status = "Deck completed. Shuffling and continuing..."
	}
	return m
}
