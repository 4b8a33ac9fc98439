package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/finapp/backend/internal/bootstrap"
	"github.com/finapp/backend/internal/config"
	"github.com/finapp/backend/internal/handlers"
	"github.com/finapp/backend/internal/response"
	"github.com/finapp/backend/internal/router"
	"github.com/finapp/backend/internal/services"
	"github.com/finapp/backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// stores
	astore := store.NewAccountStore(bs.Supabase)
	cstore := store.NewCategoryStore(bs.Supabase)
	tstore := store.NewTransactionStore(bs.Supabase)
	bstore := store.NewBudgetStore(bs.Supabase)
	gstore := store.NewGoalStore(bs.Supabase)
	rstore := store.NewRecurringStore(bs.Supabase)

	// services
	aserv := services.NewAccountService(astore)
	cserv := services.NewCategoryService(cstore)
	tserv := services.NewTransactionService(tstore)
	bserv := services.NewBudgetService(bstore)
	gserv := services.NewGoalService(gstore)
	rserv := services.NewRecurringService(rstore)
	sserv := services.NewStatsService(astore, tstore, cstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Verifier = bs.Supabase
	deps.AccountSvc = aserv
	deps.CategorySvc = cserv
	deps.TransactionSvc = tserv
	deps.BudgetSvc = bserv
	deps.GoalSvc = gserv
	deps.RecurringSvc = rserv
	deps.StatsSvc = sserv

	// router
	r := router.NewRouter(cfg, deps)
	bs.Log.Info("server listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
