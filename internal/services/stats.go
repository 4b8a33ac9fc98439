package services

import (
	"context"
	"math"
	"time"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/models"
)

const statsDateLayout = "2006-01-02"

type statsAccountStore interface {
	List(ctx context.Context, uid string) ([]models.Account, error)
}

type statsTransactionStore interface {
	ListWindow(ctx context.Context, uid string, w dto.TransactionWindow) ([]models.Transaction, error)
}

type statsCategoryStore interface {
	List(ctx context.Context, uid string) ([]models.Category, error)
}

type statsService struct {
	accounts   statsAccountStore
	txs        statsTransactionStore
	categories statsCategoryStore
	now        func() time.Time
}

func NewStatsService(accounts statsAccountStore, txs statsTransactionStore, categories statsCategoryStore) *statsService {
	return &statsService{
		accounts:   accounts,
		txs:        txs,
		categories: categories,
		now:        time.Now,
	}
}

// Summary computes the dashboard header figures. The balance total is a
// snapshot over all accounts regardless of the window; income/expense totals
// cover [start, end] and the comparison period is the window of identical
// length immediately before it, [start-length, start).
func (s *statsService) Summary(ctx context.Context, uid, startDate, endDate string) (dto.SummaryResponse, error) {
	var out dto.SummaryResponse

	accounts, err := s.accounts.List(ctx, uid)
	if err != nil {
		return out, err
	}
	for _, acc := range accounts {
		out.TotalBalance += acc.Balance
	}

	if startDate == "" || endDate == "" {
		now := s.now()
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(statsDateLayout)
		endDate = now.Format(statsDateLayout)
	}

	start, err := time.Parse(statsDateLayout, startDate)
	if err != nil {
		return out, err
	}
	end, err := time.Parse(statsDateLayout, endDate)
	if err != nil {
		return out, err
	}

	current, err := s.txs.ListWindow(ctx, uid, dto.TransactionWindow{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return out, err
	}
	income, expenses := sumByType(current)

	prevStart := start.Add(-end.Sub(start)).Format(statsDateLayout)
	previous, err := s.txs.ListWindow(ctx, uid, dto.TransactionWindow{
		StartDate:    prevStart,
		EndDate:      startDate,
		EndExclusive: true,
	})
	if err != nil {
		return out, err
	}
	prevIncome, prevExpenses := sumByType(previous)

	out.MonthlyIncome = income
	out.MonthlyExpenses = expenses
	out.MonthlySavings = income - expenses
	out.IncomeChangePercent = round1(changePercent(income, prevIncome))
	out.ExpenseChangePercent = round1(changePercent(expenses, prevExpenses))
	out.BalanceChangePercent = round1(netChangePercent(income-expenses, prevIncome-prevExpenses))
	return out, nil
}

// ByCategory accumulates windowed transaction totals per owned category.
// Transactions whose category ref doesn't resolve are skipped silently, and
// results come out in first-appearance order among the transactions.
func (s *statsService) ByCategory(ctx context.Context, uid, startDate, endDate string) ([]dto.CategoryStat, error) {
	txs, err := s.txs.ListWindow(ctx, uid, dto.TransactionWindow{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	catByID := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		catByID[cat.ID] = cat
	}

	totals := make(map[string]*dto.CategoryStat)
	var order []string
	for _, tx := range txs {
		if tx.CategoryID == nil {
			continue
		}
		cat, ok := catByID[*tx.CategoryID]
		if !ok {
			continue
		}
		stat, ok := totals[cat.ID]
		if !ok {
			stat = &dto.CategoryStat{Category: cat.Name, Color: cat.Color}
			totals[cat.ID] = stat
			order = append(order, cat.ID)
		}
		stat.Total += tx.Amount
	}

	out := make([]dto.CategoryStat, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	return out, nil
}

func sumByType(txs []models.Transaction) (income, expenses float64) {
	for _, tx := range txs {
		switch tx.TxType {
		case "income":
			income += tx.Amount
		case "expense":
			expenses += tx.Amount
		}
	}
	return income, expenses
}

// changePercent is zero unless the prior figure is positive, so an empty
// previous window never produces NaN or Inf and a negative type total (from
// correction entries) never flips the sign of the delta.
func changePercent(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func netChangePercent(currentNet, previousNet float64) float64 {
	if previousNet == 0 {
		return 0
	}
	return (currentNet - previousNet) / math.Abs(previousNet) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
