package models

// Account is a money container. Balance is a stored snapshot the API never
// recomputes from transactions.
type Account struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Icon        string  `json:"icon,omitempty"`
	Color       string  `json:"color,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"` // set by the store
}
