package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vietanh2810/stockboard-api/internal/domain"
)

var (
	ErrTradableNotFound = errors.New("item not found")
	ErrTickerExists     = errors.New("ticker already exist")
)

// Tradable is the row layout shared by the stakes and stocks tables.
type Tradable struct {
	ID                 uint   `gorm:"primaryKey"`
	CompanyName        string `gorm:"not null"`
	Ticker             string `gorm:"unique;not null"`
	CurrentPrice       int    `gorm:"not null"`
	DailyChangePercent float64
	StockTurnover      int `gorm:"not null"`
}

type Stake Tradable

func (Stake) TableName() string {
	return "stakes"
}

type Stock Tradable

func (Stock) TableName() string {
	return "stocks"
}

// Model is the set of gorm models a TradableDAO can serve.
type Model interface {
	Stake | Stock
}

type TradableDAO[M Model] struct {
	db *gorm.DB
}

func NewTradableDAO[M Model](db *gorm.DB) *TradableDAO[M] {
	return &TradableDAO[M]{
		db: db,
	}
}

func NewStakeDAO(db *gorm.DB) *TradableDAO[Stake] {
	return NewTradableDAO[Stake](db)
}

func NewStockDAO(db *gorm.DB) *TradableDAO[Stock] {
	return NewTradableDAO[Stock](db)
}

func (d *TradableDAO[M]) Insert(ctx context.Context, row Tradable) (Tradable, error) {
	row.ID = 0
	m := M(row)

	result := d.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Tradable{}, ErrTickerExists
		}

		return Tradable{}, result.Error
	}

	return Tradable(m), nil
}

func (d *TradableDAO[M]) FindByID(ctx context.Context, id uint) (Tradable, error) {
	var m M

	result := d.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tradable{}, ErrTradableNotFound
		}

		return Tradable{}, result.Error
	}

	return Tradable(m), nil
}

func (d *TradableDAO[M]) FindByTicker(ctx context.Context, ticker string) (Tradable, error) {
	var m M

	result := d.db.WithContext(ctx).Where("ticker = ?", ticker).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tradable{}, ErrTradableNotFound
		}

		return Tradable{}, result.Error
	}

	return Tradable(m), nil
}

// Update applies cols to the row with the given id and returns the stored result.
// An empty cols map only reloads the row.
func (d *TradableDAO[M]) Update(ctx context.Context, id uint, cols map[string]interface{}) (Tradable, error) {
	var m M

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}

		if len(cols) == 0 {
			return nil
		}

		if err := tx.Model(&m).Updates(cols).Error; err != nil {
			return err
		}

		return tx.First(&m, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Tradable{}, ErrTradableNotFound
		}
		if isUniqueViolation(err) {
			return Tradable{}, ErrTickerExists
		}

		return Tradable{}, err
	}

	return Tradable(m), nil
}

func (d *TradableDAO[M]) DeleteByTicker(ctx context.Context, ticker string) error {
	var m M

	result := d.db.WithContext(ctx).Where("ticker = ?", ticker).Delete(&m)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTradableNotFound
	}

	return nil
}

// List returns the rows matching every filter, ordered by the requested column and then id.
func (d *TradableDAO[M]) List(ctx context.Context, q domain.ListQuery) ([]Tradable, error) {
	tx := d.db.WithContext(ctx)

	for _, f := range q.Filters {
		v, err := f.Field.Parse(f.Value)
		if err != nil {
			// A value of the wrong type never equals a stored one.
			return []Tradable{}, nil
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Field.Column()}, Value: v})
	}

	if q.Sort != nil {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort.Field.Column()}, Desc: q.Sort.Desc})
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	var ms []M
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}

	rows := make([]Tradable, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, Tradable(m))
	}

	return rows, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
