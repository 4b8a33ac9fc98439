package models

// Transaction references an account and optionally a category by id. Neither
// reference is checked for existence or ownership before insert; the schema in
// the managed store is the only authority on that.
type Transaction struct {
	ID            string   `json:"id,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
	AccountID     string   `json:"account_id"`
	CategoryID    *string  `json:"category_id"`
	Amount        float64  `json:"amount"`
	TxDate        string   `json:"tx_date"` // YYYY-MM-DD
	Description   *string  `json:"description"`
	TxType        string   `json:"tx_type"` // "income" or "expense"
	IsRecurring   bool     `json:"is_recurring"`
	AttachmentURL *string  `json:"attachment_url"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"created_at,omitempty"`
}
