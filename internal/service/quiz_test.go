package service

import (
	"math/rand"
	"testing"

	"derdiedas/internal/domain"
	"derdiedas/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuiz(pairs []domain.WordArticlePair) *QuizService {
	return NewQuizService(pairs, rand.New(rand.NewSource(42)), testutil.NewTestLogger())
}

// wrongArticle returns an article different from a
func wrongArticle(a domain.Article) domain.Article {
	if a == domain.ArticleDer {
		return domain.ArticleDie
	}
	return domain.ArticleDer
}

func TestQuizService_Start(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das", "Mann", "der"))
	assert.Equal(t, domain.StateIdle, quiz.State())

	q, err := quiz.Start()

	require.NoError(t, err)
	assert.Equal(t, domain.StateRunning, quiz.State())
	assert.Equal(t, quiz.current.Word, q.Word)
	assert.False(t, q.Reshuffled)
	assert.Equal(t, domain.Score{}, quiz.Score())
	assert.False(t, quiz.Answered())
}

func TestQuizService_StartEmpty(t *testing.T) {
	quiz := newTestQuiz(nil)

	_, err := quiz.Start()

	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, domain.StateIdle, quiz.State())
}

func TestQuizService_SubmitCorrect(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das", "Mann", "der"))
	_, err := quiz.Start()
	require.NoError(t, err)

	answer := quiz.current.Article
	result, ok := quiz.Submit(answer)

	require.True(t, ok)
	assert.True(t, result.Correct)
	assert.Equal(t, answer, result.Answer)
	assert.Equal(t, domain.Score{Correct: 1, Seen: 1}, result.Score)
	assert.Equal(t, 100, quiz.Score().Accuracy())
	assert.Equal(t, domain.StateRunning, quiz.State())

	// a second guess on the same word is ignored until the quiz advances
	_, ok = quiz.Submit(answer)
	assert.False(t, ok)
	assert.Equal(t, domain.Score{Correct: 1, Seen: 1}, quiz.Score())

	_, ok = quiz.Next()
	assert.True(t, ok)
	assert.False(t, quiz.Answered())
	assert.Equal(t, domain.Score{Correct: 1, Seen: 1}, quiz.Score(), "drawn word is not seen until guessed")
}

func TestQuizService_SubmitWrong(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das", "Mann", "der"))
	_, err := quiz.Start()
	require.NoError(t, err)

	answer := quiz.current.Article
	result, ok := quiz.Submit(wrongArticle(answer))

	require.True(t, ok)
	assert.False(t, result.Correct)
	assert.Equal(t, answer, result.Answer)
	assert.Equal(t, domain.Score{Correct: 0, Seen: 1}, quiz.Score())
	assert.Equal(t, domain.StateAwaitingAcknowledgment, quiz.State())

	// guesses are ignored while waiting for acknowledgment
	_, ok = quiz.Submit(answer)
	assert.False(t, ok)
	assert.Equal(t, domain.Score{Correct: 0, Seen: 1}, quiz.Score())

	_, ok = quiz.Next()
	assert.True(t, ok)
	assert.Equal(t, domain.StateRunning, quiz.State())
}

func TestQuizService_SubmitBeforeStart(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das"))

	_, ok := quiz.Submit(domain.ArticleDas)

	assert.False(t, ok)
	assert.Equal(t, domain.Score{}, quiz.Score())
}

func TestQuizService_NextRequiresAnswer(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das", "Mann", "der"))

	_, ok := quiz.Next()
	assert.False(t, ok, "idle quiz has nothing to advance")

	_, err := quiz.Start()
	require.NoError(t, err)

	_, ok = quiz.Next()
	assert.False(t, ok, "unanswered word cannot be skipped")
}

func TestQuizService_DeckCycles(t *testing.T) {
	pairs := testutil.NewTestPairs("Haus", "das", "Mann", "der", "Frau", "die")
	quiz := newTestQuiz(pairs)
	_, err := quiz.Start()
	require.NoError(t, err)

	reshuffles := 0
	for i := 0; i < len(pairs)*3; i++ {
		_, ok := quiz.Submit(quiz.current.Article)
		require.True(t, ok)

		q, ok := quiz.Next()
		require.True(t, ok)
		if q.Reshuffled {
			reshuffles++
			assert.Equal(t, 0, (i+1)%len(pairs), "reshuffle after %d draws", i+1)
		}
	}

	assert.Equal(t, 3, reshuffles)
	assert.Equal(t, domain.Score{Correct: 9, Seen: 9}, quiz.Score())
}

func TestQuizService_RestartResetsScore(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das", "Mann", "der"))
	_, err := quiz.Start()
	require.NoError(t, err)
	quiz.Submit(wrongArticle(quiz.current.Article))

	_, err = quiz.Start()

	require.NoError(t, err)
	assert.Equal(t, domain.Score{}, quiz.Score())
	assert.Equal(t, domain.StateRunning, quiz.State())
}

func TestQuizService_Accuracy(t *testing.T) {
	quiz := newTestQuiz(testutil.NewTestPairs("Haus", "das", "Mann", "der", "Frau", "die"))
	_, err := quiz.Start()
	require.NoError(t, err)

	quiz.Submit(quiz.current.Article)
	quiz.Next()
	quiz.Submit(quiz.current.Article)
	quiz.Next()
	quiz.Submit(wrongArticle(quiz.current.Article))

	assert.Equal(t, domain.Score{Correct: 2, Seen: 3}, quiz.Score())
	assert.Equal(t, 67, quiz.Score().Accuracy())
	assert.Equal(t, "Score: 2 / 3 (67%)", quiz.Score().DisplayString())
}
