package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/stockboard-api/internal/domain"
)

type mockTradableRepository struct {
	mock.Mock
}

func (m *mockTradableRepository) Create(ctx context.Context, t domain.Tradable) (domain.Tradable, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(domain.Tradable), args.Error(1)
}

func (m *mockTradableRepository) FindByID(ctx context.Context, id uint) (domain.Tradable, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tradable), args.Error(1)
}

func (m *mockTradableRepository) FindByTicker(ctx context.Context, ticker string) (domain.Tradable, error) {
	args := m.Called(ctx, ticker)
	return args.Get(0).(domain.Tradable), args.Error(1)
}

func (m *mockTradableRepository) Update(ctx context.Context, id uint, patch domain.TradablePatch) (domain.Tradable, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Tradable), args.Error(1)
}

func (m *mockTradableRepository) DeleteByTicker(ctx context.Context, ticker string) error {
	args := m.Called(ctx, ticker)
	return args.Error(0)
}

func (m *mockTradableRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Tradable, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Tradable), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}
