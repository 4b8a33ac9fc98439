package store

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

type categoryStore struct {
	db Client
}

func NewCategoryStore(db Client) *categoryStore {
	return &categoryStore{db: db}
}

type categoryInsert struct {
	dto.CreateCategoryRequest
	UserID string `json:"user_id"`
}

func (s *categoryStore) List(ctx context.Context, uid string) ([]models.Category, error) {
	return execute[models.Category](s.db.From("categories").
		Select("*", "", false).
		Eq("user_id", uid))
}

func (s *categoryStore) Create(ctx context.Context, uid string, req dto.CreateCategoryRequest) (*models.Category, error) {
	row := categoryInsert{CreateCategoryRequest: req, UserID: uid}
	return first(execute[models.Category](s.db.From("categories").
		Insert(row, false, "", "representation", "")))
}

func (s *categoryStore) Update(ctx context.Context, uid, id string, req dto.CreateCategoryRequest) ([]models.Category, error) {
	return execute[models.Category](s.db.From("categories").
		Update(req, "representation", "").
		Eq("id", id).
		Eq("user_id", uid))
}

func (s *categoryStore) Delete(ctx context.Context, uid, id string) error {
	return executeDiscard(s.db.From("categories").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", uid))
}
