package viewmodel

import "github.com/meufuturo/futuro/internal/model"

// StatsView is the display form of the page-local aggregates.
type StatsView struct {
	TotalIncome        string
	TotalExpenses      string
	NetAmount          string
	AverageTransaction string
	TransactionCount   int
	NetPositive        bool
}

// NewStatsView renders the stats panel content from raw aggregates.
func NewStatsView(stats model.TransactionStats) StatsView {
	return StatsView{
		TotalIncome:        FormatAmount(stats.TotalIncome),
		TotalExpenses:      FormatAmount(stats.TotalExpenses),
		NetAmount:          FormatAmount(stats.NetAmount),
		AverageTransaction: FormatAmount(stats.AverageTransaction),
		TransactionCount:   stats.TransactionCount,
		NetPositive:        stats.NetAmount >= 0,
	}
}

// HasData reports whether there is anything to display.
func (v StatsView) HasData() bool {
	return v.TransactionCount > 0
}
