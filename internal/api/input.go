package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

// TransactionInput is the payload for creating a transaction. Amounts
// are always positive magnitudes; the sign comes from Type.
type TransactionInput struct {
	Type            model.TransactionType `json:"type" validate:"required,oneof=income expense"`
	Amount          float64               `json:"amount" validate:"required,gt=0"`
	Description     string                `json:"description" validate:"required,min=1,max=255"`
	TransactionDate string                `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Notes           string                `json:"notes,omitempty" validate:"max=1000"`
	CategoryID      string                `json:"category_id,omitempty"`
}

// TransactionPatch is a partial update; nil fields are left untouched
// server-side.
type TransactionPatch struct {
	Type            *model.TransactionType `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Amount          *float64               `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Description     *string                `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	TransactionDate *string                `json:"transaction_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes           *string                `json:"notes,omitempty" validate:"omitempty,max=1000"`
	CategoryID      *string                `json:"category_id,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validatePayload runs struct validation and converts failures into the
// validation error shape the rest of the app understands.
func validatePayload(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string)
	var msgs []string
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		fields[field] = fmt.Sprintf("failed %s validation", fe.Tag())
		msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", field, fe.Tag()))
	}

	return &common.APIError{
		Kind:      common.ErrorValidation,
		Message:   strings.Join(msgs, "; "),
		Fields:    fields,
		Retryable: false,
	}
}

// DuplicateInput builds a create payload from an existing transaction:
// same type, amount and category, description marked as a copy, and the
// date reset to today.
func DuplicateInput(tx model.Transaction, now time.Time) TransactionInput {
	input := TransactionInput{
		Type:            tx.Type,
		Amount:          tx.Amount.Float64(),
		Description:     tx.Description + " (cópia)",
		TransactionDate: now.Format(model.DateOnly),
		Notes:           tx.Notes,
	}
	if tx.Category != nil {
		input.CategoryID = tx.Category.ID
	}
	return input
}
