package domain

import (
	"fmt"
	"math"
)

// QuizState represents where the quiz is in its question loop
type QuizState string

const (
	StateIdle                   QuizState = "idle"
	StateRunning                QuizState = "running"
	StateAwaitingAcknowledgment QuizState = "awaiting_acknowledgment"
)

// Score holds the running tally of a quiz.
// Seen counts answered words, so the word on screen is not included until it is guessed.
type Score struct {
	Correct int
	Seen    int
}

// Accuracy returns the percentage of correct answers rounded to the nearest integer.
// Halves round to even.
func (s Score) Accuracy() int {
	if s.Seen == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(s.Correct) * 100 / float64(s.Seen)))
}

// DisplayString returns the score label shown to the user
func (s Score) DisplayString() string {
	return fmt.Sprintf("Score: %d / %d (%d%%)", s.Correct, s.Seen, s.Accuracy())
}
