package models

// Budget tracks a per-category spending limit for one month. SpentAmount is
// written once at creation and never maintained by any operation here.
type Budget struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
	CategoryID  string  `json:"category_id"`
	LimitAmount float64 `json:"limit_amount"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	SpentAmount float64 `json:"spent_amount"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
