package store

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

type recurringStore struct {
	db Client
}

func NewRecurringStore(db Client) *recurringStore {
	return &recurringStore{db: db}
}

type recurringInsert struct {
	dto.CreateRecurringRequest
	UserID string `json:"user_id"`
}

func (s *recurringStore) List(ctx context.Context, uid string) ([]models.RecurringRule, error) {
	return execute[models.RecurringRule](s.db.From("recurring_transactions").
		Select("*", "", false).
		Eq("user_id", uid))
}

func (s *recurringStore) Create(ctx context.Context, uid string, req dto.CreateRecurringRequest) (*models.RecurringRule, error) {
	row := recurringInsert{CreateRecurringRequest: req, UserID: uid}
	return first(execute[models.RecurringRule](s.db.From("recurring_transactions").
		Insert(row, false, "", "representation", "")))
}

func (s *recurringStore) Update(ctx context.Context, uid, id string, req dto.CreateRecurringRequest) ([]models.RecurringRule, error) {
	return execute[models.RecurringRule](s.db.From("recurring_transactions").
		Update(req, "representation", "").
		Eq("id", id).
		Eq("user_id", uid))
}

func (s *recurringStore) Delete(ctx context.Context, uid, id string) error {
	return executeDiscard(s.db.From("recurring_transactions").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", uid))
}
