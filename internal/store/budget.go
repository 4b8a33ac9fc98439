package store

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

type budgetStore struct {
	db Client
}

func NewBudgetStore(db Client) *budgetStore {
	return &budgetStore{db: db}
}

// budgetInsert pins spent_amount to zero on creation. No operation ever
// maintains it afterwards.
type budgetInsert struct {
	dto.CreateBudgetRequest
	UserID      string  `json:"user_id"`
	SpentAmount float64 `json:"spent_amount"`
}

func (s *budgetStore) List(ctx context.Context, uid string) ([]models.Budget, error) {
	return execute[models.Budget](s.db.From("budgets").
		Select("*", "", false).
		Eq("user_id", uid))
}

func (s *budgetStore) Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	row := budgetInsert{CreateBudgetRequest: req, UserID: uid, SpentAmount: 0}
	return first(execute[models.Budget](s.db.From("budgets").
		Insert(row, false, "", "representation", "")))
}

func (s *budgetStore) Update(ctx context.Context, uid, id string, req dto.CreateBudgetRequest) ([]models.Budget, error) {
	return execute[models.Budget](s.db.From("budgets").
		Update(req, "representation", "").
		Eq("id", id).
		Eq("user_id", uid))
}

func (s *budgetStore) Delete(ctx context.Context, uid, id string) error {
	return executeDiscard(s.db.From("budgets").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", uid))
}
