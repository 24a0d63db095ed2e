// Package cli implements the terminal front end: a REPL dispatching user
// intents to the auth and event workflows and rendering their results.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite" // pure-Go SQLite driver for the session database

	"github.com/mjacquet/eventdesk/internal/client/api"
	"github.com/mjacquet/eventdesk/internal/client/config"
	"github.com/mjacquet/eventdesk/internal/client/models"
	"github.com/mjacquet/eventdesk/internal/client/services"
	"github.com/mjacquet/eventdesk/internal/client/session"
	"github.com/mjacquet/eventdesk/internal/logging"
)

// App wires the session store, services and command handlers together.
type App struct {
	config     *config.Config
	auth       *services.AuthService
	events     *services.EventService
	categories *services.CategoryService
	store      *session.Store
	log        logging.Logger

	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
	notify      *Notifier
	currentUser *models.User
	unsubscribe func()
}

// NewApp boots the local database, the resource clients and the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize session database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := session.NewStore(session.NewSQLiteRepository(db), log)

	core := api.NewCore(c.APIBaseURL, c.RequestTimeout, log,
		api.WithTokenProvider(func(ctx context.Context) string {
			token, err := store.Token(ctx)
			if err != nil {
				log.Warn(ctx, "failed to read token", "error", err)
				return ""
			}
			return token
		}),
		// A 401 means the token is invalid or expired: force a logout.
		api.WithUnauthorizedHook(func(ctx context.Context) {
			_ = store.ClearSession(ctx)
		}),
	)

	app := &App{
		config:     c,
		auth:       services.NewAuthService(api.NewUsersClient(core), store, log),
		events:     services.NewEventService(api.NewEventsClient(core), log),
		categories: services.NewCategoryService(api.NewCategoriesClient(core)),
		store:      store,
		log:        log,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		notify:     NewNotifier(os.Stdout),
	}

	// Track the published user the way the web header does, so the prompt
	// reflects session changes without re-reading storage on every line.
	app.unsubscribe = store.Subscribe(func(u *models.User) {
		app.currentUser = u
	})

	return app, nil
}

// Run starts the REPL and blocks until the user exits or input is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the subscription and the database handle.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

// status renders the prompt fragment: the display name when logged in.
func (a *App) status() string {
	if a.currentUser == nil {
		return "guest"
	}
	return a.currentUser.DisplayName()
}
