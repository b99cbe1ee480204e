package testutil

import (
	"derdiedas/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockGridReader is a mock for repository.GridReader
type MockGridReader struct {
	mock.Mock
}

func (m *MockGridReader) ReadGrid(path string) (domain.Grid, error) {
	args := m.Called(path)
	return args.Get(0).(domain.Grid), args.Error(1)
}
