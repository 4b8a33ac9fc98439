package services

import (
	"context"
	"strings"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
	"github.com/finapp/backend/pkg/logger"
)

type transactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
	Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, uid, id string, req dto.CreateTransactionRequest) ([]models.Transaction, error)
	Delete(ctx context.Context, uid, id string) error
}

type transactionService struct {
	store transactionStore
}

func NewTransactionService(store transactionStore) *transactionService {
	return &transactionService{store: store}
}

// List fetches one owner-scoped page, newest first. Free-text search is
// applied after the page is fetched, so it only ever examines the current
// page — matches outside it are missed. Kept as-is for compatibility with the
// existing API; pushing the filter into the query would change result shapes
// the frontend already works around.
func (s *transactionService) List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	txs, err := s.store.List(ctx, uid, q)
	if err != nil {
		return nil, err
	}
	if q.Search == "" {
		return txs, nil
	}

	needle := strings.ToLower(q.Search)
	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if matchesSearch(tx, needle) {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransaction(req); err != nil {
		return nil, err
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	tx, err := s.store.Create(ctx, uid, req)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("transaction created",
		"transaction_id", tx.ID,
		"tx_type", tx.TxType,
	)
	return tx, nil
}

func (s *transactionService) Update(ctx context.Context, uid, id string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransaction(req); err != nil {
		return nil, err
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	rows, err := s.store.Update(ctx, uid, id, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewNotFoundError("transaction not found")
	}
	return &rows[0], nil
}

func (s *transactionService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

// Referenced account and category ids are not checked for existence or
// ownership; the store schema is the authority.
func validateTransaction(req dto.CreateTransactionRequest) error {
	if req.AccountID == "" {
		return errs.NewValidationError("account_id is required")
	}
	if req.Amount == nil {
		return errs.NewValidationError("amount is required")
	}
	if req.TxDate == "" {
		return errs.NewValidationError("tx_date is required")
	}
	if req.TxType == "" {
		return errs.NewValidationError("tx_type is required")
	}
	return nil
}

func matchesSearch(tx models.Transaction, needle string) bool {
	if tx.Description != nil && strings.Contains(strings.ToLower(*tx.Description), needle) {
		return true
	}
	for _, tag := range tx.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
