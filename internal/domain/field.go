package domain

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidFieldValue = errors.New("invalid field value")

// Field is one of the whitelisted business columns of a tradable record.
type Field string

const (
	FieldCompanyName        Field = "company_name"
	FieldTicker             Field = "ticker"
	FieldCurrentPrice       Field = "current_price"
	FieldDailyChangePercent Field = "daily_change_percent"
	FieldStockTurnover      Field = "stock_turnover"
)

type FieldKind int

const (
	FieldKindText FieldKind = iota
	FieldKindInt
	FieldKindFloat
)

var fieldKinds = map[Field]FieldKind{
	FieldCompanyName:        FieldKindText,
	FieldTicker:             FieldKindText,
	FieldCurrentPrice:       FieldKindInt,
	FieldDailyChangePercent: FieldKindFloat,
	FieldStockTurnover:      FieldKindInt,
}

// Fields lists the whitelisted fields in declaration order.
func Fields() []Field {
	return []Field{
		FieldCompanyName,
		FieldTicker,
		FieldCurrentPrice,
		FieldDailyChangePercent,
		FieldStockTurnover,
	}
}

func ParseField(name string) (Field, bool) {
	f := Field(name)
	_, ok := fieldKinds[f]

	return f, ok
}

// ParseSort parses "field" or "-field". ok is false for anything outside the whitelist.
func ParseSort(sortBy string) (Sort, bool) {
	desc := strings.HasPrefix(sortBy, "-")
	f, ok := ParseField(strings.TrimPrefix(sortBy, "-"))
	if !ok {
		return Sort{}, false
	}

	return Sort{Field: f, Desc: desc}, true
}

func (f Field) Column() string {
	return string(f)
}

func (f Field) Kind() FieldKind {
	return fieldKinds[f]
}

// Parse converts a raw filter value to the Go type stored in the column.
func (f Field) Parse(raw string) (interface{}, error) {
	switch f.Kind() {
	case FieldKindInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, ErrInvalidFieldValue
		}
		return v, nil
	case FieldKindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, ErrInvalidFieldValue
		}
		return v, nil
	default:
		return raw, nil
	}
}

// Of returns the value of f in t.
func (f Field) Of(t Tradable) interface{} {
	switch f {
	case FieldCompanyName:
		return t.CompanyName
	case FieldTicker:
		return t.Ticker
	case FieldCurrentPrice:
		return t.CurrentPrice
	case FieldDailyChangePercent:
		return t.DailyChangePercent
	case FieldStockTurnover:
		return t.StockTurnover
	default:
		return nil
	}
}

// Compare orders a and b by f, returning -1, 0 or 1.
func (f Field) Compare(a, b Tradable) int {
	switch x := f.Of(a).(type) {
	case string:
		return strings.Compare(x, f.Of(b).(string))
	case int:
		return compareOrdered(x, f.Of(b).(int))
	case float64:
		return compareOrdered(x, f.Of(b).(float64))
	default:
		return 0
	}
}

func compareOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
