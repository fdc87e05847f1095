package model

// TransactionStats are aggregates derived from the currently loaded page
// only, recomputed on every list commit. They are client-side figures,
// not the server-side totals for the whole filtered set.
type TransactionStats struct {
	TotalIncome        float64 `json:"total_income"`
	TotalExpenses      float64 `json:"total_expenses"`
	NetAmount          float64 `json:"net_amount"`
	AverageTransaction float64 `json:"average_transaction"`
	TransactionCount   int     `json:"transaction_count"`
}

// TransactionSummary are the server-side totals for a whole period,
// covering every matching transaction rather than the loaded page.
// Amounts arrive as Decimal strings or numbers; both decode the same.
type TransactionSummary struct {
	LargestIncome      *Amount `json:"largest_income"`
	LargestExpense     *Amount `json:"largest_expense"`
	TotalIncome        Amount  `json:"total_income"`
	TotalExpenses      Amount  `json:"total_expenses"`
	NetAmount          Amount  `json:"net_amount"`
	AverageTransaction Amount  `json:"average_transaction"`
	TransactionCount   int     `json:"transaction_count"`
	IncomeCount        int     `json:"income_count"`
	ExpenseCount       int     `json:"expense_count"`
}

// ComputeStats aggregates a page of transactions. The average is over
// absolute magnitudes; an empty page yields all zeroes.
func ComputeStats(transactions []Transaction) TransactionStats {
	stats := TransactionStats{TransactionCount: len(transactions)}

	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			stats.TotalIncome += t.Amount.Float64()
		case TypeExpense:
			stats.TotalExpenses += t.Amount.Float64()
		}
	}

	stats.NetAmount = stats.TotalIncome - stats.TotalExpenses
	if stats.TransactionCount > 0 {
		stats.AverageTransaction = (stats.TotalIncome + stats.TotalExpenses) / float64(stats.TransactionCount)
	}

	return stats
}
