package dto

// CreateAccountRequest is the account body for both create and update. The
// owner identifier is never part of the body; it comes from the resolved
// identity.
type CreateAccountRequest struct {
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}
