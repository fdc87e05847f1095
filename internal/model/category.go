package model

import "time"

// CategoryType indicates whether a category groups income or expenses.
type CategoryType string

const (
	// CategoryTypeIncome marks categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense marks categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Category is reference data fetched once per session. The client never
// mutates categories outside the explicit create/update endpoints.
type Category struct {
	CreatedAt time.Time    `json:"created_at,omitempty"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Color     string       `json:"color,omitempty"`
	Icon      string       `json:"icon,omitempty"`
	Type      CategoryType `json:"type,omitempty"`
	ParentID  string       `json:"parent_id,omitempty"`
	IsSystem  bool         `json:"is_system,omitempty"`
	IsActive  bool         `json:"is_active,omitempty"`
}
