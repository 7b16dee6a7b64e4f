package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/repository/dao"
)

var (
	ErrTradableNotFound = dao.ErrTradableNotFound
	ErrTickerExists     = dao.ErrTickerExists
)

type TradableDAO interface {
	Insert(ctx context.Context, row dao.Tradable) (dao.Tradable, error)
	FindByID(ctx context.Context, id uint) (dao.Tradable, error)
	FindByTicker(ctx context.Context, ticker string) (dao.Tradable, error)
	Update(ctx context.Context, id uint, cols map[string]interface{}) (dao.Tradable, error)
	DeleteByTicker(ctx context.Context, ticker string) error
	List(ctx context.Context, q domain.ListQuery) ([]dao.Tradable, error)
}

type TradableRepository struct {
	dao TradableDAO
}

func NewTradableRepository(dao TradableDAO) *TradableRepository {
	return &TradableRepository{
		dao: dao,
	}
}

func (r *TradableRepository) Create(ctx context.Context, t domain.Tradable) (domain.Tradable, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(t))
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TradableRepository) FindByID(ctx context.Context, id uint) (domain.Tradable, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TradableRepository) FindByTicker(ctx context.Context, ticker string) (domain.Tradable, error) {
	found, err := r.dao.FindByTicker(ctx, ticker)
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("r.dao.FindByTicker -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TradableRepository) Update(ctx context.Context, id uint, patch domain.TradablePatch) (domain.Tradable, error) {
	updated, err := r.dao.Update(ctx, id, patch.Columns())
	if err != nil {
		return domain.Tradable{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TradableRepository) DeleteByTicker(ctx context.Context, ticker string) error {
	if err := r.dao.DeleteByTicker(ctx, ticker); err != nil {
		return fmt.Errorf("r.dao.DeleteByTicker -> %w", err)
	}

	return nil
}

func (r *TradableRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Tradable, error) {
	rows, err := r.dao.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(rows), nil
}

func (r *TradableRepository) domainToDao(t domain.Tradable) dao.Tradable {
	return dao.Tradable{
		ID:                 t.ID,
		CompanyName:        t.CompanyName,
		Ticker:             t.Ticker,
		CurrentPrice:       t.CurrentPrice,
		DailyChangePercent: t.DailyChangePercent,
		StockTurnover:      t.StockTurnover,
	}
}

func (r *TradableRepository) daoToDomain(t dao.Tradable) domain.Tradable {
	return domain.Tradable{
		ID:                 t.ID,
		CompanyName:        t.CompanyName,
		Ticker:             t.Ticker,
		CurrentPrice:       t.CurrentPrice,
		DailyChangePercent: t.DailyChangePercent,
		StockTurnover:      t.StockTurnover,
	}
}

func (r *TradableRepository) daosToDomain(rows []dao.Tradable) []domain.Tradable {
	tradables := make([]domain.Tradable, 0, len(rows))
	for _, row := range rows {
		tradables = append(tradables, r.daoToDomain(row))
	}

	return tradables
}
