package services

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
)

type categoryStore interface {
	List(ctx context.Context, uid string) ([]models.Category, error)
	Create(ctx context.Context, uid string, req dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, uid, id string, req dto.CreateCategoryRequest) ([]models.Category, error)
	Delete(ctx context.Context, uid, id string) error
}

type categoryService struct {
	store categoryStore
}

func NewCategoryService(store categoryStore) *categoryService {
	return &categoryService{store: store}
}

func (s *categoryService) List(ctx context.Context, uid string) ([]models.Category, error) {
	return s.store.List(ctx, uid)
}

func (s *categoryService) Create(ctx context.Context, uid string, req dto.CreateCategoryRequest) (*models.Category, error) {
	if err := validateCategory(req); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, uid, req)
}

func (s *categoryService) Update(ctx context.Context, uid, id string, req dto.CreateCategoryRequest) (*models.Category, error) {
	if err := validateCategory(req); err != nil {
		return nil, err
	}
	rows, err := s.store.Update(ctx, uid, id, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewNotFoundError("category not found")
	}
	return &rows[0], nil
}

func (s *categoryService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

// Name uniqueness is not enforced here; the store schema decides.
func validateCategory(req dto.CreateCategoryRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.TxType == "" {
		return errs.NewValidationError("tx_type is required")
	}
	return nil
}
