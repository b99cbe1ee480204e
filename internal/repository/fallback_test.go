package repository

import (
	"fmt"
	"testing"

	"derdiedas/internal/domain"
	"derdiedas/internal/repository/delimited"
	"derdiedas/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackReader_ReadGrid(t *testing.T) {
	grid := domain.NewGrid([][]string{{"Haus", "das"}})

	tests := []struct {
		name          string
		primaryErr    error
		secondaryErr  error
		callSecondary bool
		expectedError bool
	}{
		{
			name:          "primary succeeds",
			callSecondary: false,
		},
		{
			name:          "primary fails, fallback succeeds",
			primaryErr:    fmt.Errorf("zip: not a valid zip file"),
			callSecondary: true,
		},
		{
			name:          "both fail",
			primaryErr:    fmt.Errorf("zip: not a valid zip file"),
			secondaryErr:  fmt.Errorf("xml syntax error"),
			callSecondary: true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := new(testutil.MockGridReader)
			secondary := new(testutil.MockGridReader)

			if tt.primaryErr != nil {
				primary.On("ReadGrid", "words.xlsx").Return(domain.Grid{}, tt.primaryErr)
			} else {
				primary.On("ReadGrid", "words.xlsx").Return(grid, nil)
			}
			if tt.callSecondary {
				if tt.secondaryErr != nil {
					secondary.On("ReadGrid", "words.xlsx").Return(domain.Grid{}, tt.secondaryErr)
				} else {
					secondary.On("ReadGrid", "words.xlsx").Return(grid, nil)
				}
			}

			reader := NewFallbackReader(testutil.NewTestLogger(),
				Strategy{Name: "table", Reader: primary},
				Strategy{Name: "stream", Reader: secondary},
			)

			result, err := reader.ReadGrid("words.xlsx")

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.primaryErr)
				assert.ErrorIs(t, err, tt.secondaryErr)
				assert.Contains(t, err.Error(), "table")
				assert.Contains(t, err.Error(), "stream")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, grid, result)
			}

			primary.AssertExpectations(t)
			secondary.AssertExpectations(t)
			if !tt.callSecondary {
				secondary.AssertNotCalled(t, "ReadGrid", "words.xlsx")
			}
		})
	}
}

func TestFallbackReader_NoStrategies(t *testing.T) {
	_, err := NewFallbackReader(testutil.NewTestLogger()).ReadGrid("words.xlsx")

	assert.Error(t, err)
}

func TestNewGridReader(t *testing.T) {
	logger := testutil.NewTestLogger()

	assert.IsType(t, &delimited.Reader{}, NewGridReader("words.csv", "", logger))
	assert.IsType(t, &delimited.Reader{}, NewGridReader("WORDS.CSV", "", logger))
	assert.IsType(t, &FallbackReader{}, NewGridReader("words.xlsx", "", logger))
	assert.IsType(t, &FallbackReader{}, NewGridReader("words", "", logger))
}

func TestNewGridReader_ReadsWorkbook(t *testing.T) {
	path := testutil.WriteWorkbook(t, [][]string{{"Haus", "das"}})

	grid, err := NewGridReader(path, "", testutil.NewTestLogger()).ReadGrid(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Haus", "das"}, grid.Row(0))
}
