package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// RowSource is a mock implementation of source.RowSource.
type RowSource struct {
	mock.Mock
}

func (m *RowSource) Fetch(ctx context.Context, locator, sheet string) ([][]string, error) {
	args := m.Called(ctx, locator, sheet)
	if rows, ok := args.Get(0).([][]string); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}
