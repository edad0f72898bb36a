package mocks

import (
	"context"

	"hr-sync/feature/integration/models"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of source.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchColaboradores(ctx context.Context) ([]models.Colaborador, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]models.Colaborador); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}
