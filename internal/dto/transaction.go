package dto

type CreateTransactionRequest struct {
	AccountID     string   `json:"account_id"`
	CategoryID    *string  `json:"category_id"`
	Amount        *float64 `json:"amount"`
	TxDate        string   `json:"tx_date"`
	Description   *string  `json:"description"`
	TxType        string   `json:"tx_type"`
	IsRecurring   bool     `json:"is_recurring"`
	AttachmentURL *string  `json:"attachment_url"`
	Tags          []string `json:"tags"`
}

// TransactionQuery carries the list filters. Offset/limit pagination has no
// stable cursor; rows inserted mid-pagination may shift pages.
type TransactionQuery struct {
	StartDate string
	EndDate   string
	AccountID string
	Search    string
	Limit     int
	Offset    int
}

// TransactionWindow is a date window for the statistics reads. Empty bounds
// are open; EndExclusive switches the upper bound from lte to lt (the prior
// comparison window is half-open).
type TransactionWindow struct {
	StartDate    string
	EndDate      string
	EndExclusive bool
}
