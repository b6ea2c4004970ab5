package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbridge/nestegg/internal/cli"
	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/optimizer"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/cbridge/nestegg/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.nestegg/nestegg.db
	dbPath := os.Getenv("NESTEGG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".nestegg", "nestegg.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalRepo(database)
	householdRepo := repository.NewSQLiteHouseholdRepo(database)
	translogRepo := repository.NewSQLiteTransactionLogRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire allocation service client
	optCfg := optimizer.LoadConfig()
	var callObserver optimizer.Observer = optimizer.NoopObserver{}
	if optCfg.LogCalls {
		callObserver = optimizer.NewLogObserver(os.Stderr)
	}
	client := optimizer.NewHTTPClient(optCfg, callObserver)

	// Structured use-case logging is opt-in.
	var observers []service.UseCaseObserver
	if v := os.Getenv("NESTEGG_LOG"); v != "" && v != "0" && v != "false" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Goals:       service.NewGoalService(goalRepo, uow, observers...),
		Households:  service.NewHouseholdService(householdRepo, translogRepo),
		Reports:     service.NewReportService(goalRepo, householdRepo, translogRepo, observers...),
		Allocations: service.NewAllocationService(goalRepo, householdRepo, uow, client, observers...),
		Accruals:    service.NewAccrualService(goalRepo, householdRepo, uow, observers...),
		Import:      service.NewImportService(householdRepo, uow, observers...),
	}

	// Detect interactive terminal for wizards and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
