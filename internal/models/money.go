package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount in UAH. It marshals to a JSON string with
// two decimal places and stores as a numeric column.
type Money struct {
	d decimal.Decimal
}

// NewMoney builds Money from a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d.Round(2)}
}

// NewMoneyFromFloat builds Money from a float64 price.
func NewMoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// ParseMoney parses a decimal string such as "1250.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return NewMoney(m.d.Add(other.d))
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return NewMoney(m.d.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// Equal reports whether two amounts are equal.
func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// MarshalJSON renders the amount as a JSON string, e.g. "1250.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both string and number forms.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseMoney(s)
		if perr != nil {
			return perr
		}
		*m = parsed
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal money: %w", err)
	}
	*m = NewMoneyFromFloat(f)
	return nil
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = Money{}
		return nil
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		parsed, err := ParseMoney(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case float64:
		*m = NewMoneyFromFloat(v)
		return nil
	case int64:
		*m = NewMoney(decimal.NewFromInt(v))
		return nil
	default:
		return fmt.Errorf("scan money: unsupported type %T", value)
	}
}

// GormDataType tells gorm to store Money as a decimal column.
func (Money) GormDataType() string {
	return "decimal(12,2)"
}
