package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/repository"
)

var (
	ErrTradableNotFound = repository.ErrTradableNotFound
	ErrTickerExists     = repository.ErrTickerExists
)

type TradableRepository interface {
	Create(ctx context.Context, t domain.Tradable) (domain.Tradable, error)
	FindByID(ctx context.Context, id uint) (domain.Tradable, error)
	FindByTicker(ctx context.Context, ticker string) (domain.Tradable, error)
	Update(ctx context.Context, id uint, patch domain.TradablePatch) (domain.Tradable, error)
	DeleteByTicker(ctx context.Context, ticker string) error
	List(ctx context.Context, q domain.ListQuery) ([]domain.Tradable, error)
}

type TradableService struct {
	repo TradableRepository
}

func NewTradableService(repo TradableRepository) *TradableService {
	return &TradableService{
		repo: repo,
	}
}

func (s *TradableService) Create(ctx context.Context, t domain.Tradable) (domain.Tradable, error) {
	_, err := s.repo.FindByTicker(ctx, t.Ticker)
	if err == nil {
		return domain.Tradable{}, ErrTickerExists
	}
	if !errors.Is(err, repository.ErrTradableNotFound) {
		return domain.Tradable{}, fmt.Errorf("s.repo.FindByTicker -> %w", err)
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TradableService) GetByTicker(ctx context.Context, ticker string) (domain.Tradable, error) {
	found, err := s.repo.FindByTicker(ctx, ticker)
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("s.repo.FindByTicker -> %w", err)
	}

	return found, nil
}

func (s *TradableService) Update(ctx context.Context, id uint, patch domain.TradablePatch) (domain.Tradable, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TradableService) Delete(ctx context.Context, ticker string) error {
	if err := s.repo.DeleteByTicker(ctx, ticker); err != nil {
		return fmt.Errorf("s.repo.DeleteByTicker -> %w", err)
	}

	return nil
}

func (s *TradableService) List(ctx context.Context, q domain.ListQuery) ([]domain.Tradable, error) {
	found, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return found, nil
}
