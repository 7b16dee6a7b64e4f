package domain

// Kind names a tradable resource. It is used in route paths and messages.
type Kind string

const (
	KindStake Kind = "stake"
	KindStock Kind = "stock"
)

type Tradable struct {
	ID                 uint    `json:"id"`
	CompanyName        string  `json:"company_name"`
	Ticker             string  `json:"ticker"`
	CurrentPrice       int     `json:"current_price"`
	DailyChangePercent float64 `json:"daily_change_percent"`
	StockTurnover      int     `json:"stock_turnover"`
}

// TradablePatch holds the fields of a partial update. A nil field is left untouched.
type TradablePatch struct {
	CompanyName        *string
	Ticker             *string
	CurrentPrice       *int
	DailyChangePercent *float64
	StockTurnover      *int
}

func (p TradablePatch) IsEmpty() bool {
	return p.CompanyName == nil &&
		p.Ticker == nil &&
		p.CurrentPrice == nil &&
		p.DailyChangePercent == nil &&
		p.StockTurnover == nil
}

// Columns returns the column -> value pairs of the fields present in the patch.
func (p TradablePatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.CompanyName != nil {
		cols[FieldCompanyName.Column()] = *p.CompanyName
	}
	if p.Ticker != nil {
		cols[FieldTicker.Column()] = *p.Ticker
	}
	if p.CurrentPrice != nil {
		cols[FieldCurrentPrice.Column()] = *p.CurrentPrice
	}
	if p.DailyChangePercent != nil {
		cols[FieldDailyChangePercent.Column()] = *p.DailyChangePercent
	}
	if p.StockTurnover != nil {
		cols[FieldStockTurnover.Column()] = *p.StockTurnover
	}

	return cols
}

// Apply returns t with the present fields of the patch applied. ID is never changed.
func (p TradablePatch) Apply(t Tradable) Tradable {
	if p.CompanyName != nil {
		t.CompanyName = *p.CompanyName
	}
	if p.Ticker != nil {
		t.Ticker = *p.Ticker
	}
	if p.CurrentPrice != nil {
		t.CurrentPrice = *p.CurrentPrice
	}
	if p.DailyChangePercent != nil {
		t.DailyChangePercent = *p.DailyChangePercent
	}
	if p.StockTurnover != nil {
		t.StockTurnover = *p.StockTurnover
	}

	return t
}

type Filter struct {
	Field Field
	Value string
}

type Sort struct {
	Field Field
	Desc  bool
}

// ListQuery is an ANDed set of equality filters with an optional single-column sort.
type ListQuery struct {
	Filters []Filter
	Sort    *Sort
}
