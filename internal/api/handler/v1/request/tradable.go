package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/stockboard-api/internal/domain"
)

// CreateTradableRequest uses pointers so that a missing field can be told apart from a zero one.
type CreateTradableRequest struct {
	CompanyName        *string  `json:"company_name" example:"Acme"`
	Ticker             *string  `json:"ticker" example:"ACM"`
	CurrentPrice       *int     `json:"current_price" example:"10"`
	DailyChangePercent *float64 `json:"daily_change_percent" example:"1.5"`
	StockTurnover      *int     `json:"stock_turnover" example:"100"`
}

func (req *CreateTradableRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CompanyName, validation.NotNil),
		validation.Field(&req.Ticker, validation.Required),
		validation.Field(&req.CurrentPrice, validation.NotNil),
		validation.Field(&req.DailyChangePercent, validation.NotNil),
		validation.Field(&req.StockTurnover, validation.NotNil),
	)
}

// ToDomain must only be called after Validate succeeded.
func (req *CreateTradableRequest) ToDomain() domain.Tradable {
	return domain.Tradable{
		CompanyName:        *req.CompanyName,
		Ticker:             *req.Ticker,
		CurrentPrice:       *req.CurrentPrice,
		DailyChangePercent: *req.DailyChangePercent,
		StockTurnover:      *req.StockTurnover,
	}
}

// UpdateTradableRequest is a partial patch: omitted (or null) fields are left unchanged.
type UpdateTradableRequest struct {
	CompanyName        *string  `json:"company_name" example:"Acme"`
	Ticker             *string  `json:"ticker" example:"ACM"`
	CurrentPrice       *int     `json:"current_price" example:"20"`
	DailyChangePercent *float64 `json:"daily_change_percent" example:"-0.5"`
	StockTurnover      *int     `json:"stock_turnover" example:"250"`
}

func (req *UpdateTradableRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Ticker, validation.NilOrNotEmpty),
	)
}

func (req *UpdateTradableRequest) ToPatch() domain.TradablePatch {
	return domain.TradablePatch{
		CompanyName:        req.CompanyName,
		Ticker:             req.Ticker,
		CurrentPrice:       req.CurrentPrice,
		DailyChangePercent: req.DailyChangePercent,
		StockTurnover:      req.StockTurnover,
	}
}

// ListTradablesRequest holds the query string of the list endpoint. Every filter is
// compared for equality; SortBy is a field name with an optional "-" prefix.
type ListTradablesRequest struct {
	CompanyName        *string `form:"company_name"`
	Ticker             *string `form:"ticker"`
	CurrentPrice       *string `form:"current_price"`
	DailyChangePercent *string `form:"daily_change_percent"`
	StockTurnover      *string `form:"stock_turnover"`
	SortBy             string  `form:"sort_by"`
}

// ToListQuery drops a sort_by outside the whitelist instead of rejecting it.
func (req *ListTradablesRequest) ToListQuery() domain.ListQuery {
	q := domain.ListQuery{}

	values := map[domain.Field]*string{
		domain.FieldCompanyName:        req.CompanyName,
		domain.FieldTicker:             req.Ticker,
		domain.FieldCurrentPrice:       req.CurrentPrice,
		domain.FieldDailyChangePercent: req.DailyChangePercent,
		domain.FieldStockTurnover:      req.StockTurnover,
	}
	for _, f := range domain.Fields() {
		if v := values[f]; v != nil {
			q.Filters = append(q.Filters, domain.Filter{Field: f, Value: *v})
		}
	}

	if sort, ok := domain.ParseSort(req.SortBy); ok {
		q.Sort = &sort
	}

	return q
}
