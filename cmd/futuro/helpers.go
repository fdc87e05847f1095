package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/model"
)

// newClient builds the API client from the resolved configuration.
func newClient() (*api.Client, error) {
	tokens, err := api.NewTokenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	return api.NewClient(api.Config{
		Tokens:  tokens,
		BaseURL: viper.GetString("api.url"),
		Timeout: viper.GetDuration("api.timeout"),
	})
}

// parseAmount accepts both comma and dot decimal separators.
func parseAmount(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return value, nil
}

// parseDate validates a YYYY-MM-DD date string.
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(model.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return date, nil
}

// parseTypeFilter maps a CLI flag value onto the type filter.
func parseTypeFilter(s string) (model.TypeFilter, error) {
	switch s {
	case "", "all":
		return model.FilterAll, nil
	case "income", "receita":
		return model.FilterIncome, nil
	case "expense", "despesa":
		return model.FilterExpense, nil
	}
	return "", fmt.Errorf("invalid type %q (use income, expense or all)", s)
}

// parseTransactionType maps a CLI flag value onto a concrete type.
func parseTransactionType(s string) (model.TransactionType, error) {
	switch s {
	case "income", "receita":
		return model.TypeIncome, nil
	case "expense", "despesa":
		return model.TypeExpense, nil
	}
	return "", fmt.Errorf("invalid type %q (use income or expense)", s)
}
