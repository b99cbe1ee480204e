package service

import (
	"errors"
	"math/rand"

	"derdiedas/internal/domain"

	"go.uber.org/zap"
)

// ErrEmptyDeck is returned when a quiz is started without any pairs
var ErrEmptyDeck = errors.New("quiz has no word pairs")

// Question is the word currently shown to the user
type Question struct {
	Word string
	// Reshuffled is set on the first question of a new lap through the deck
	Reshuffled bool
}

// Result describes the outcome of a guess
type Result struct {
	Correct bool
	Guess   domain.Article
	Answer  domain.Article
	Score   domain.Score
}

// QuizService runs the article drill: one word at a time, score and seen counters,
// and a pause for acknowledgment after a wrong answer
type QuizService struct {
	deck     *Deck
	state    domain.QuizState
	current  domain.WordArticlePair
	answered bool
	score    domain.Score
	logger   *zap.Logger
}

// NewQuizService creates an idle quiz over pairs
func NewQuizService(pairs []domain.WordArticlePair, rng *rand.Rand, logger *zap.Logger) *QuizService {
	return &QuizService{
		deck:   NewDeck(pairs, rng),
		state:  domain.StateIdle,
		logger: logger,
	}
}

// Start shuffles the deck, resets the score and draws the first question
func (s *QuizService) Start() (Question, error) {
	if s.deck.Len() == 0 {
		return Question{}, ErrEmptyDeck
	}

	s.deck.Shuffle()
	s.score = domain.Score{}
	s.state = domain.StateRunning

	s.logger.Info("Quiz started", zap.Int("pairs", s.deck.Len()))

	return s.draw(), nil
}

// Submit checks a guess against the current word.
// It returns false when no guess is accepted: before Start, while waiting
// for acknowledgment, or when the current word was already answered.
func (s *QuizService) Submit(guess domain.Article) (Result, bool) {
	if s.state != domain.StateRunning || s.answered {
		return Result{}, false
	}

	s.answered = true
	s.score.Seen++

	correct := guess == s.current.Article
	if correct {
		s.score.Correct++
	} else {
		s.state = domain.StateAwaitingAcknowledgment
	}

	s.logger.Debug("Guess submitted",
		zap.String("word", s.current.Word),
		zap.String("guess", guess.String()),
		zap.String("answer", s.current.Article.String()),
		zap.Bool("correct", correct),
	)

	return Result{
		Correct: correct,
		Guess:   guess,
		Answer:  s.current.Article,
		Score:   s.score,
	}, true
}

// Next moves on to the next word. It is accepted after a correct answer
// and while waiting for acknowledgment of a wrong one.
func (s *QuizService) Next() (Question, bool) {
	switch s.state {
	case domain.StateAwaitingAcknowledgment:
		s.state = domain.StateRunning
	case domain.StateRunning:
		if !s.answered {
			return Question{}, false
		}
	default:
		return Question{}, false
	}

	return s.draw(), true
}

// State returns the current quiz state
func (s *QuizService) State() domain.QuizState {
	return s.state
}

// Score returns the running tally
func (s *QuizService) Score() domain.Score {
	return s.score
}

// Answered reports whether the current word has been guessed
func (s *QuizService) Answered() bool {
	return s.answered
}

func (s *QuizService) draw() Question {
	pair, reshuffled, _ := s.deck.Draw()
	if reshuffled {
		s.logger.Info("Deck completed, reshuffled", zap.Int("pairs", s.deck.Len()))
	}

	s.current = pair
	s.answered = false
	return Question{Word: pair.Word, Reshuffled: reshuffled}
}
