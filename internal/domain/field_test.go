package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		want   Sort
		wantOK bool
	}{
		{name: "ascending", sortBy: "current_price", want: Sort{Field: FieldCurrentPrice}, wantOK: true},
		{name: "descending", sortBy: "-current_price", want: Sort{Field: FieldCurrentPrice, Desc: true}, wantOK: true},
		{name: "text field", sortBy: "-ticker", want: Sort{Field: FieldTicker, Desc: true}, wantOK: true},
		{name: "id is not whitelisted", sortBy: "id", wantOK: false},
		{name: "unknown", sortBy: "price", wantOK: false},
		{name: "empty", sortBy: "", wantOK: false},
		{name: "bare dash", sortBy: "-", wantOK: false},
		{name: "double dash", sortBy: "--ticker", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSort(tt.sortBy)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_Parse(t *testing.T) {
	v, err := FieldCurrentPrice.Parse("10")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = FieldDailyChangePercent.Parse("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = FieldTicker.Parse(" ACM ")
	require.NoError(t, err)
	assert.Equal(t, " ACM ", v)

	_, err = FieldStockTurnover.Parse("many")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	_, err = FieldCurrentPrice.Parse("10.5")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestField_OfAndCompare(t *testing.T) {
	a := Tradable{CompanyName: "Acme", Ticker: "ACM", CurrentPrice: 10, DailyChangePercent: 1.5, StockTurnover: 100}
	b := Tradable{CompanyName: "Bolt", Ticker: "BLT", CurrentPrice: 20, DailyChangePercent: -2, StockTurnover: 100}

	assert.Equal(t, "ACM", FieldTicker.Of(a))
	assert.Equal(t, 10, FieldCurrentPrice.Of(a))

	assert.Equal(t, -1, FieldCompanyName.Compare(a, b))
	assert.Equal(t, -1, FieldCurrentPrice.Compare(a, b))
	assert.Equal(t, 1, FieldDailyChangePercent.Compare(a, b))
	assert.Equal(t, 0, FieldStockTurnover.Compare(a, b))
}

func TestTradablePatch(t *testing.T) {
	orig := Tradable{ID: 7, CompanyName: "Acme", Ticker: "ACM", CurrentPrice: 10, DailyChangePercent: 1.5, StockTurnover: 100}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		p := TradablePatch{}
		assert.True(t, p.IsEmpty())
		assert.Empty(t, p.Columns())
		assert.Equal(t, orig, p.Apply(orig))
	})

	t.Run("only present fields are applied", func(t *testing.T) {
		price := 20
		p := TradablePatch{CurrentPrice: &price}

		assert.False(t, p.IsEmpty())
		assert.Equal(t, map[string]interface{}{"current_price": 20}, p.Columns())

		got := p.Apply(orig)
		want := orig
		want.CurrentPrice = 20
		assert.Equal(t, want, got)
	})

	t.Run("full patch keeps the id", func(t *testing.T) {
		name, ticker, price, pct, turnover := "Real", "RLN", 1, 2.5, 3
		p := TradablePatch{CompanyName: &name, Ticker: &ticker, CurrentPrice: &price, DailyChangePercent: &pct, StockTurnover: &turnover}

		got := p.Apply(orig)
		assert.Equal(t, Tradable{ID: 7, CompanyName: "Real", Ticker: "RLN", CurrentPrice: 1, DailyChangePercent: 2.5, StockTurnover: 3}, got)
		assert.Len(t, p.Columns(), 5)
	})
}
