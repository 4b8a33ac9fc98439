package dto

type CreateBudgetRequest struct {
	CategoryID  string   `json:"category_id"`
	LimitAmount *float64 `json:"limit_amount"`
	PeriodMonth *int     `json:"period_month"`
	PeriodYear  *int     `json:"period_year"`
}
