package dto

type CreateRecurringRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	TxType      string   `json:"tx_type"`
	CategoryID  *string  `json:"category_id"`
	AccountID   *string  `json:"account_id"`
	DayOfMonth  *int     `json:"day_of_month"`
	Active      *bool    `json:"active"`
}
