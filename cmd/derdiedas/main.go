package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"derdiedas/internal/config"
	"derdiedas/internal/handler"
	"derdiedas/internal/logger"
	"derdiedas/internal/repository"
	"derdiedas/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// loadError marks a failure to read word pairs from path
type loadError struct {
	path string
	err  error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.path, e.err)
}

func (e *loadError) Unwrap() error {
	return e.err
}

func main() {
	if err := run(); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report writes err for the user; load failures get the "Failed to load" banner
func report(w io.Writer, err error) {
	var loadErr *loadError
	if errors.As(err, &loadErr) {
		fmt.Fprintf(w, "Failed to load %s\n\n%v\n", loadErr.path, loadErr.err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer log.Sync()

	log.Info("Starting der/die/das quiz",
		zap.String("words_file", cfg.WordsFile),
		zap.String("orientation", string(cfg.Orientation)),
	)

	// Load word pairs
	reader := repository.NewGridReader(cfg.WordsFile, cfg.SheetName, log)
	loader := service.NewLoaderService(reader, log)

	pairs, err := loader.LoadPairs(cfg.WordsFile, cfg.Orientation)
	if err != nil {
		log.Error("Failed to load word pairs", zap.Error(err))
		return &loadError{path: cfg.WordsFile, err: err}
	}

	log.Info("Word pairs loaded", zap.Int("count", len(pairs)))

	// Run the quiz UI
	quiz := service.NewQuizService(pairs, rand.New(rand.NewSource(time.Now().UnixNano())), log)
	model := handler.NewModel(quiz, cfg.AdvanceDelay, log)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Error("Quiz UI failed", zap.Error(err))
		return fmt.Errorf("run quiz: %w", err)
	}

	log.Info("Quiz stopped", zap.String("score", quiz.Score().DisplayString()))
	return nil
}
