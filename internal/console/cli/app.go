package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/placementdesk/internal/console/config"
	"github.com/dmitrijs2005/placementdesk/internal/console/durable"
	"github.com/dmitrijs2005/placementdesk/internal/console/events"
	"github.com/dmitrijs2005/placementdesk/internal/console/seed"
	"github.com/dmitrijs2005/placementdesk/internal/console/services"
	"github.com/dmitrijs2005/placementdesk/internal/console/storage"
	"github.com/dmitrijs2005/placementdesk/internal/filex"
	"github.com/dmitrijs2005/placementdesk/internal/logging"
)

type App struct {
	config  *config.Config
	company services.CompanyService
	db      *sql.DB
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the collection store described by c and loads the console
// state from it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var (
		repo storage.Repository
		db   *sql.DB
	)

	if c.InMemory {
		repo = storage.NewMemoryRepository()
	} else {
		path := c.DatabasePath()
		dir, err := filex.EnsureDir(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
		db, err = storage.OpenSQLite(ctx, filepath.Join(dir, filepath.Base(path)))
		if err != nil {
			return nil, err
		}
		repo = storage.NewSQLiteRepository(db)
	}

	store := durable.Open(repo, log, durable.WithSaveTimeout(c.SaveTimeout))

	var opts []services.Option
	if c.Demo {
		opts = append(opts, services.WithSeed(seed.Demo()))
	}
	company, err := services.NewCompanyService(ctx, store, events.NewBus(log), log, opts...)
	if err != nil {
		_ = store.Close()
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	a := newApp(company, bufio.NewReader(os.Stdin), os.Stdout, log)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(company services.CompanyService, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	return &App{company: company, reader: reader, out: out, log: log}
}

// Run starts the change watcher and blocks in the REPL until the user
// exits or stdin closes. Pending writes are flushed on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := a.StartChangeWatcher(watchCtx); err != nil {
		a.log.Warn(ctx, "change watcher not started", "error", err)
	}

	printlnFn("Placement desk console (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// StartChangeWatcher logs every applied change until ctx is done.
func (a *App) StartChangeWatcher(ctx context.Context) error {
	changes, err := a.company.Subscribe(ctx)
	if err != nil {
		return err
	}
	go func() {
		for c := range changes {
			a.log.Debug(ctx, "state changed", "operation", c.Operation,
				"collections", c.Collections, "ref", c.ReferenceID)
		}
	}()
	return nil
}

func (a *App) status() string {
	if n := a.company.UnreadCount(); n > 0 {
		return fmt.Sprintf("(%d unread)", n)
	}
	return ""
}

func (a *App) Close() {
	if err := a.company.Close(); err != nil {
		a.log.Warn(context.Background(), "close company service", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close database", "error", err)
		}
	}
}
