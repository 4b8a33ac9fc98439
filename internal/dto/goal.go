package dto

type CreateGoalRequest struct {
	Name          string   `json:"name"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount float64  `json:"current_amount"`
	Deadline      *string  `json:"deadline"`
	Icon          *string  `json:"icon"`
}
