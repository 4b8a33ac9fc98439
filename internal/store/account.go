package store

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

type accountStore struct {
	db Client
}

func NewAccountStore(db Client) *accountStore {
	return &accountStore{db: db}
}

type accountInsert struct {
	dto.CreateAccountRequest
	UserID string `json:"user_id"`
}

func (s *accountStore) List(ctx context.Context, uid string) ([]models.Account, error) {
	return execute[models.Account](s.db.From("accounts").
		Select("*", "", false).
		Eq("user_id", uid))
}

func (s *accountStore) Create(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	row := accountInsert{CreateAccountRequest: req, UserID: uid}
	return first(execute[models.Account](s.db.From("accounts").
		Insert(row, false, "", "representation", "")))
}

func (s *accountStore) Update(ctx context.Context, uid, id string, req dto.CreateAccountRequest) ([]models.Account, error) {
	return execute[models.Account](s.db.From("accounts").
		Update(req, "representation", "").
		Eq("id", id).
		Eq("user_id", uid))
}

func (s *accountStore) Delete(ctx context.Context, uid, id string) error {
	return executeDiscard(s.db.From("accounts").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", uid))
}
