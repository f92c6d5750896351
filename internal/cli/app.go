// Package cli implements the interactive Scana terminal client: a REPL over
// the local stores and services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scana-dk/scana/internal/config"
	"github.com/scana-dk/scana/internal/dbx"
	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/services"
	"github.com/scana-dk/scana/internal/storage"
	"github.com/scana-dk/scana/internal/stores/favorites"
	"github.com/scana-dk/scana/internal/stores/history"
	"github.com/scana-dk/scana/internal/stores/language"
	"github.com/scana-dk/scana/internal/stores/profile"
	"github.com/scana-dk/scana/internal/stores/session"
	"github.com/scana-dk/scana/internal/stores/users"

	_ "modernc.org/sqlite"
)

// App wires the stores and services to an interactive terminal session.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	auth   *services.AuthService
	scans  *services.ScanService
	offers *services.OfferService

	history   *history.Store
	favorites *favorites.Store
	profile   *profile.Store
	language  *language.Store

	session *models.Session

	// offers shown by the last "offers" command, addressed by "fav <n>"
	lastOffers []models.Offer

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, seeds the user directory, and restores the
// persisted language and session.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, store, err := storage.OpenSQLite(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("opening local storage: %w", err)
	}

	// seeding rewrites the whole directory, so it runs in one transaction
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return users.New(storage.NewSQLiteStorage(tx), log).EnsureSeeded(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding user directory: %w", err)
	}

	userStore := users.New(store, log)
	sessionStore := session.New(store, log)
	historyStore := history.New(store, log)
	favoritesStore := favorites.New(store, log)
	profileStore := profile.New(store, log)
	languageStore := language.New(store, log, cfg.DefaultLanguage)

	offerService, err := services.NewOfferService(favoritesStore, profileStore)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config:    cfg,
		log:       log,
		db:        db,
		auth:      services.NewAuthService(userStore, sessionStore),
		scans:     services.NewScanService(store, historyStore, profileStore, log),
		offers:    offerService,
		history:   historyStore,
		favorites: favoritesStore,
		profile:   profileStore,
		language:  languageStore,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	if _, err := languageStore.Load(ctx); err != nil {
		log.Warn(ctx, "could not restore language preference", "error", err)
	}

	sess, err := sessionStore.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.session = sess

	return app, nil
}

// Run enters the command loop and returns when the user exits or stdin
// closes.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
