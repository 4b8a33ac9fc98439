package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	supabaseclient "github.com/finapp/backend/internal/client/supabase"
	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/pkg/helpers"
)

// recordedRequest captures what the store sent to the REST endpoint.
type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

// newRestServer stands in for the managed REST endpoint. Every request is
// recorded and answered with the canned JSON body.
func newRestServer(t *testing.T, status int, responseBody string) (*recordedRequest, Client) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		q, err := url.QueryUnescape(r.URL.RawQuery)
		if err != nil {
			q = r.URL.RawQuery
		}
		rec.query = q
		rec.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, responseBody)
	}))
	t.Cleanup(srv.Close)

	adapter, err := supabaseclient.NewAdapter(srv.URL, "test-key")
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}
	return rec, adapter
}

func (r *recordedRequest) requireFilter(t *testing.T, fragment string) {
	t.Helper()
	if !strings.Contains(r.query, fragment) {
		t.Fatalf("query %q missing %q", r.query, fragment)
	}
}

func TestTransactionListScopesToOwner(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewTransactionStore(db)

	rows, err := s.List(context.Background(), "u1", dto.TransactionQuery{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}

	if rec.method != http.MethodGet {
		t.Fatalf("expected GET, got %s", rec.method)
	}
	if !strings.HasSuffix(rec.path, "/transactions") {
		t.Fatalf("wrong table path: %s", rec.path)
	}
	rec.requireFilter(t, "user_id=eq.u1")
	// newest first
	rec.requireFilter(t, "order=tx_date.desc")
}

func TestTransactionListStartDateFilter(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewTransactionStore(db)

	_, err := s.List(context.Background(), "u1", dto.TransactionQuery{StartDate: "2025-02-01"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	rec.requireFilter(t, "tx_date=gte.2025-02-01")
}

func TestTransactionListEndDateAndAccountFilters(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewTransactionStore(db)

	_, err := s.List(context.Background(), "u1", dto.TransactionQuery{EndDate: "2025-02-28", AccountID: "acc-9"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	rec.requireFilter(t, "tx_date=lte.2025-02-28")
	rec.requireFilter(t, "account_id=eq.acc-9")
}

func TestTransactionListPagination(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewTransactionStore(db)

	_, err := s.List(context.Background(), "u1", dto.TransactionQuery{Limit: 20, Offset: 40})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	rec.requireFilter(t, "offset=40")
	rec.requireFilter(t, "limit=20")
}

func TestTransactionListWindowExclusiveEnd(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewTransactionStore(db)

	_, err := s.ListWindow(context.Background(), "u1", dto.TransactionWindow{EndDate: "2025-02-01", EndExclusive: true})
	if err != nil {
		t.Fatalf("ListWindow error: %v", err)
	}
	rec.requireFilter(t, "tx_date=lt.2025-02-01")
	rec.requireFilter(t, "user_id=eq.u1")
}

func TestTransactionCreateInjectsOwner(t *testing.T) {
	rec, db := newRestServer(t, http.StatusCreated, `[{"id":"tx-1","user_id":"u1","account_id":"acc-1","amount":25.5,"tx_date":"2025-02-10","tx_type":"expense","tags":[]}]`)
	s := NewTransactionStore(db)

	tx, err := s.Create(context.Background(), "u1", dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Amount:    helpers.Ptr(25.5),
		TxDate:    "2025-02-10",
		TxType:    "expense",
		Tags:      []string{},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tx.ID != "tx-1" {
		t.Fatalf("wrong row decoded: %#v", tx)
	}

	if rec.method != http.MethodPost {
		t.Fatalf("expected POST, got %s", rec.method)
	}
	var sent map[string]any
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("request body is not json: %v", err)
	}
	if sent["user_id"] != "u1" {
		t.Fatalf("owner not injected into insert body: %v", sent)
	}
	// optional fields the caller omitted go up as explicit nulls
	if v, ok := sent["category_id"]; !ok || v != nil {
		t.Fatalf("category_id should be null, got %v (present=%v)", v, ok)
	}
}

func TestTransactionUpdateFiltersByIDAndOwner(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[{"id":"tx-1","account_id":"acc-1","amount":30,"tx_date":"2025-02-10","tx_type":"expense","tags":[]}]`)
	s := NewTransactionStore(db)

	rows, err := s.Update(context.Background(), "u1", "tx-1", dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Amount:    helpers.Ptr(30.0),
		TxDate:    "2025-02-10",
		TxType:    "expense",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected the updated row back, got %d", len(rows))
	}

	if rec.method != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", rec.method)
	}
	rec.requireFilter(t, "id=eq.tx-1")
	rec.requireFilter(t, "user_id=eq.u1")
	if strings.Contains(string(rec.body), "user_id") {
		t.Fatalf("patch body must not carry the owner column: %s", rec.body)
	}
}

func TestTransactionDeleteFiltersByIDAndOwner(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewTransactionStore(db)

	if err := s.Delete(context.Background(), "u1", "tx-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if rec.method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", rec.method)
	}
	rec.requireFilter(t, "id=eq.tx-1")
	rec.requireFilter(t, "user_id=eq.u1")
}

func TestBudgetCreatePinsSpentAmount(t *testing.T) {
	rec, db := newRestServer(t, http.StatusCreated, `[{"id":"b-1","category_id":"cat-1","limit_amount":300,"spent_amount":0,"period_month":2,"period_year":2025}]`)
	s := NewBudgetStore(db)

	_, err := s.Create(context.Background(), "u1", dto.CreateBudgetRequest{
		CategoryID:  "cat-1",
		LimitAmount: helpers.Ptr(300.0),
		PeriodMonth: helpers.Ptr(2),
		PeriodYear:  helpers.Ptr(2025),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	var sent map[string]any
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("request body is not json: %v", err)
	}
	if sent["spent_amount"] != float64(0) {
		t.Fatalf("spent_amount should start at zero, got %v", sent["spent_amount"])
	}
	if sent["user_id"] != "u1" {
		t.Fatalf("owner not injected: %v", sent)
	}
}

func TestBudgetUpdateNeverTouchesSpentAmount(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[{"id":"b-1"}]`)
	s := NewBudgetStore(db)

	_, err := s.Update(context.Background(), "u1", "b-1", dto.CreateBudgetRequest{
		CategoryID:  "cat-1",
		LimitAmount: helpers.Ptr(400.0),
		PeriodMonth: helpers.Ptr(3),
		PeriodYear:  helpers.Ptr(2025),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if strings.Contains(string(rec.body), "spent_amount") {
		t.Fatalf("patch body must not carry spent_amount: %s", rec.body)
	}
}

func TestAccountListScopesToOwner(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[{"id":"a-1","name":"Checking","account_type":"bank","balance":100}]`)
	s := NewAccountStore(db)

	rows, err := s.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Checking" {
		t.Fatalf("decode mismatch: %#v", rows)
	}
	rec.requireFilter(t, "user_id=eq.u1")
	if !strings.HasSuffix(rec.path, "/accounts") {
		t.Fatalf("wrong table path: %s", rec.path)
	}
}

func TestRecurringTablePath(t *testing.T) {
	rec, db := newRestServer(t, http.StatusOK, `[]`)
	s := NewRecurringStore(db)

	if _, err := s.List(context.Background(), "u1"); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !strings.HasSuffix(rec.path, "/recurring_transactions") {
		t.Fatalf("wrong table path: %s", rec.path)
	}
}

func TestStoreErrorCarriesBackendMessage(t *testing.T) {
	_, db := newRestServer(t, http.StatusInternalServerError, `{"message":"backend exploded"}`)
	s := NewAccountStore(db)

	_, err := s.List(context.Background(), "u1")
	var serr *errs.StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if !strings.Contains(serr.Message, "backend exploded") {
		t.Fatalf("backend message lost: %q", serr.Message)
	}
}
