package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name         string
		transactions []Transaction
		want         TransactionStats
	}{
		{
			name: "mixed income and expense",
			transactions: []Transaction{
				{Type: TypeIncome, Amount: 1000},
				{Type: TypeExpense, Amount: 50},
			},
			want: TransactionStats{
				TotalIncome:        1000,
				TotalExpenses:      50,
				NetAmount:          950,
				TransactionCount:   2,
				AverageTransaction: 525,
			},
		},
		{
			name:         "empty page",
			transactions: nil,
			want:         TransactionStats{},
		},
		{
			name: "only expenses",
			transactions: []Transaction{
				{Type: TypeExpense, Amount: 30},
				{Type: TypeExpense, Amount: 70},
			},
			want: TransactionStats{
				TotalExpenses:      100,
				NetAmount:          -100,
				TransactionCount:   2,
				AverageTransaction: 50,
			},
		},
		{
			name: "only income",
			transactions: []Transaction{
				{Type: TypeIncome, Amount: 2500.50},
			},
			want: TransactionStats{
				TotalIncome:        2500.50,
				NetAmount:          2500.50,
				TransactionCount:   1,
				AverageTransaction: 2500.50,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.transactions)
			assert.InDelta(t, tt.want.TotalIncome, got.TotalIncome, 0.0001)
			assert.InDelta(t, tt.want.TotalExpenses, got.TotalExpenses, 0.0001)
			assert.InDelta(t, tt.want.NetAmount, got.NetAmount, 0.0001)
			assert.InDelta(t, tt.want.AverageTransaction, got.AverageTransaction, 0.0001)
			assert.Equal(t, tt.want.TransactionCount, got.TransactionCount)
		})
	}
}
