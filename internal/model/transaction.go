// Package model defines the domain types exchanged with the MeuFuturo API.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TransactionType indicates whether a transaction is income or expense.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the supported values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Amount is a non-negative monetary magnitude. The API serializes amounts
// either as JSON numbers or as numeric strings ("123.45"); both decode to
// the same value so aggregation never sees NaN.
type Amount float64

// UnmarshalJSON accepts numbers, numeric strings, and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(f)
	return nil
}

// Float64 returns the amount as a plain float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// DateOnly is the wire format for transaction dates.
const DateOnly = "2006-01-02"

// Transaction represents a single financial movement owned by the API.
// The client holds a read-through copy of the current page only.
type Transaction struct {
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Category        *Category       `json:"category,omitempty"`
	ID              string          `json:"id"`
	Type            TransactionType `json:"type"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transaction_date"`
	Notes           string          `json:"notes,omitempty"`
	Amount          Amount          `json:"amount"`
}

// CategoryName returns the display name of the category, or the
// uncategorized placeholder when no category is attached.
func (t Transaction) CategoryName() string {
	if t.Category == nil || t.Category.Name == "" {
		return "Sem categoria"
	}
	return t.Category.Name
}

// SignedAmount returns the amount negated for expenses.
func (t Transaction) SignedAmount() float64 {
	if t.Type == TypeExpense {
		return -t.Amount.Float64()
	}
	return t.Amount.Float64()
}

// Date parses the transaction date. A zero time is returned for
// malformed dates rather than an error; sorting treats those as oldest.
func (t Transaction) Date() time.Time {
	d, err := time.Parse(DateOnly, t.TransactionDate)
	if err != nil {
		return time.Time{}
	}
	return d
}

// MarshalJSON keeps Amount on the wire as a plain number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}
