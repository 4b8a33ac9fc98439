package store

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

type goalStore struct {
	db Client
}

func NewGoalStore(db Client) *goalStore {
	return &goalStore{db: db}
}

type goalInsert struct {
	dto.CreateGoalRequest
	UserID string `json:"user_id"`
}

func (s *goalStore) List(ctx context.Context, uid string) ([]models.Goal, error) {
	return execute[models.Goal](s.db.From("goals").
		Select("*", "", false).
		Eq("user_id", uid))
}

func (s *goalStore) Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error) {
	row := goalInsert{CreateGoalRequest: req, UserID: uid}
	return first(execute[models.Goal](s.db.From("goals").
		Insert(row, false, "", "representation", "")))
}

func (s *goalStore) Update(ctx context.Context, uid, id string, req dto.CreateGoalRequest) ([]models.Goal, error) {
	return execute[models.Goal](s.db.From("goals").
		Update(req, "representation", "").
		Eq("id", id).
		Eq("user_id", uid))
}

func (s *goalStore) Delete(ctx context.Context, uid, id string) error {
	return executeDiscard(s.db.From("goals").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", uid))
}
