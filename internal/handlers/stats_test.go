package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finapp/backend/internal/dto"
)

type stubStatsService struct {
	summary dto.SummaryResponse
	stats   []dto.CategoryStat
	err     error

	lastUID   string
	lastStart string
	lastEnd   string
}

func (s *stubStatsService) Summary(ctx context.Context, uid, startDate, endDate string) (dto.SummaryResponse, error) {
	s.lastUID = uid
	s.lastStart = startDate
	s.lastEnd = endDate
	return s.summary, s.err
}

func (s *stubStatsService) ByCategory(ctx context.Context, uid, startDate, endDate string) ([]dto.CategoryStat, error) {
	s.lastUID = uid
	s.lastStart = startDate
	s.lastEnd = endDate
	return s.stats, s.err
}

func TestStatsSummaryHandler(t *testing.T) {
	svc := &stubStatsService{summary: dto.SummaryResponse{TotalBalance: 1000.5, MonthlyIncome: 150}}
	deps := testDeps()
	deps.StatsSvc = svc
	router := NewStatsHandlers(deps).Routes()

	req := httptest.NewRequest(http.MethodGet, "/summary?start_date=2025-02-01&end_date=2025-02-28", nil)
	rr := serveAs(router, "u1", req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rr.Code)
	}
	if svc.lastUID != "u1" || svc.lastStart != "2025-02-01" || svc.lastEnd != "2025-02-28" {
		t.Fatalf("params not forwarded: uid=%q start=%q end=%q", svc.lastUID, svc.lastStart, svc.lastEnd)
	}

	var body dto.SummaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body decode: %v", err)
	}
	if body.TotalBalance != 1000.5 {
		t.Fatalf("body mismatch: %+v", body)
	}
}

func TestStatsByCategoryHandler(t *testing.T) {
	svc := &stubStatsService{stats: []dto.CategoryStat{{Category: "Groceries", Color: "#10b981", Total: 30}}}
	deps := testDeps()
	deps.StatsSvc = svc
	router := NewStatsHandlers(deps).Routes()

	req := httptest.NewRequest(http.MethodGet, "/by-category", nil)
	rr := serveAs(router, "u1", req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rr.Code)
	}
	// an omitted window is forwarded empty; the service resolves defaults
	if svc.lastStart != "" || svc.lastEnd != "" {
		t.Fatalf("window should be empty: start=%q end=%q", svc.lastStart, svc.lastEnd)
	}

	var body []dto.CategoryStat
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body decode: %v", err)
	}
	if len(body) != 1 || body[0].Category != "Groceries" {
		t.Fatalf("body mismatch: %v", body)
	}
}
