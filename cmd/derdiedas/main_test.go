package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"derdiedas/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "load failure",
			err:      &loadError{path: "words.xlsx", err: service.ErrNoValidPairs},
			expected: "Failed to load words.xlsx\n\nno valid (word, article) pairs found\n",
		},
		{
			name:     "other failure",
			err:      fmt.Errorf("load config: %w", errors.New("invalid orientation")),
			expected: "Error: load config: invalid orientation\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			report(&buf, tt.err)

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLoadError(t *testing.T) {
	err := &loadError{path: "words.xlsx", err: service.ErrFileNotFound}

	assert.ErrorIs(t, err, service.ErrFileNotFound)
	assert.Equal(t, "load words.xlsx: spreadsheet file not found", err.Error())
}
