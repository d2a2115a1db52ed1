package mocks

import (
	"context"

	"github.com/metinatakli/movies-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockGenreRepo struct {
	mock.Mock
	domain.GenreRepository
}

func (m *MockGenreRepo) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]*domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}
