package store

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

type transactionStore struct {
	db Client
}

func NewTransactionStore(db Client) *transactionStore {
	return &transactionStore{db: db}
}

type transactionInsert struct {
	dto.CreateTransactionRequest
	UserID string `json:"user_id"`
}

// List returns one page of the owner's transactions, newest first.
func (s *transactionStore) List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	query := s.db.From("transactions").
		Select("*", "", false).
		Eq("user_id", uid)

	if q.StartDate != "" {
		query = query.Gte("tx_date", q.StartDate)
	}
	if q.EndDate != "" {
		query = query.Lte("tx_date", q.EndDate)
	}
	if q.AccountID != "" {
		query = query.Eq("account_id", q.AccountID)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	return execute[models.Transaction](query.
		Order("tx_date", nil). // descending by default
		Range(q.Offset, q.Offset+limit-1, ""))
}

// ListWindow returns every owned transaction inside a date window; used by the
// statistics reads, which page nothing.
func (s *transactionStore) ListWindow(ctx context.Context, uid string, w dto.TransactionWindow) ([]models.Transaction, error) {
	query := s.db.From("transactions").
		Select("*", "", false).
		Eq("user_id", uid)

	if w.StartDate != "" {
		query = query.Gte("tx_date", w.StartDate)
	}
	if w.EndDate != "" {
		if w.EndExclusive {
			query = query.Lt("tx_date", w.EndDate)
		} else {
			query = query.Lte("tx_date", w.EndDate)
		}
	}

	return execute[models.Transaction](query)
}

func (s *transactionStore) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	row := transactionInsert{CreateTransactionRequest: req, UserID: uid}
	return first(execute[models.Transaction](s.db.From("transactions").
		Insert(row, false, "", "representation", "")))
}

func (s *transactionStore) Update(ctx context.Context, uid, id string, req dto.CreateTransactionRequest) ([]models.Transaction, error) {
	return execute[models.Transaction](s.db.From("transactions").
		Update(req, "representation", "").
		Eq("id", id).
		Eq("user_id", uid))
}

func (s *transactionStore) Delete(ctx context.Context, uid, id string) error {
	return executeDiscard(s.db.From("transactions").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", uid))
}
