package models

type Goal struct {
	ID            string  `json:"id,omitempty"`
	UserID        string  `json:"user_id,omitempty"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      *string `json:"deadline"`
	Icon          string  `json:"icon,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}
