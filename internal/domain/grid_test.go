package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid_PadsUnevenRows(t *testing.T) {
	grid := NewGrid([][]string{
		{"Haus"},
		{"Mann", "der", "extra"},
		{},
	})

	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 3, grid.Cols())
	assert.Equal(t, []string{"Haus", "", ""}, grid.Row(0))
	assert.Equal(t, []string{"", "", ""}, grid.Row(2))
	assert.Equal(t, []string{"Haus", "Mann", ""}, grid.Column(0))
	assert.Equal(t, []string{"", "der", ""}, grid.Column(1))
}

func TestGrid_OutOfRange(t *testing.T) {
	grid := NewGrid([][]string{{"Haus", "das"}})

	assert.Nil(t, grid.Row(1))
	assert.Nil(t, grid.Row(-1))
	assert.Nil(t, grid.Column(2))
	assert.Nil(t, grid.Column(-1))
}

func TestGrid_Empty(t *testing.T) {
	grid := NewGrid(nil)

	assert.Equal(t, 0, grid.Rows())
	assert.Equal(t, 0, grid.Cols())
	assert.Nil(t, grid.Column(0))
}

func TestGrid_RowIsCopy(t *testing.T) {
	grid := NewGrid([][]string{{"Haus", "das"}})

	row := grid.Row(0)
	row[0] = "changed"

	assert.Equal(t, "Haus", grid.Row(0)[0])
}
