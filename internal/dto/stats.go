package dto

// SummaryResponse mirrors the dashboard header: a balance snapshot plus
// windowed income/expense totals and their prior-period deltas.
type SummaryResponse struct {
	TotalBalance         float64 `json:"total_balance"`
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	MonthlySavings       float64 `json:"monthly_savings"`
	IncomeChangePercent  float64 `json:"income_change_percent"`
	ExpenseChangePercent float64 `json:"expense_change_percent"`
	BalanceChangePercent float64 `json:"balance_change_percent"`
}

// CategoryStat is one accumulated per-category total.
type CategoryStat struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Total    float64 `json:"total"`
}
