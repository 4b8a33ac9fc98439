package models

// RecurringRule describes a transaction that should repeat on a day of the
// month. Rules are stored only; nothing here materializes them into
// transactions, and DayOfMonth is not range-checked.
type RecurringRule struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	TxType      string  `json:"tx_type"`
	CategoryID  *string `json:"category_id"`
	AccountID   *string `json:"account_id"`
	DayOfMonth  int     `json:"day_of_month"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
