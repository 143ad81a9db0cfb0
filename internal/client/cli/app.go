package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/physiofit/clinic/internal/client/access"
	"github.com/physiofit/clinic/internal/client/client"
	"github.com/physiofit/clinic/internal/client/config"
	"github.com/physiofit/clinic/internal/client/repositories/metadata"
	"github.com/physiofit/clinic/internal/client/session"
	"github.com/physiofit/clinic/internal/client/views"
	"github.com/physiofit/clinic/internal/common"
	"github.com/physiofit/clinic/internal/logging"
)

// maxRedirects bounds how many gate redirects one navigation may follow.
const maxRedirects = 4

var errRedirectLoop = errors.New("too many redirects")

type App struct {
	log      logging.Logger
	db       *sql.DB
	api      client.Client
	session  *session.Store
	gate     *access.Gate
	views    *views.Registry
	validate *validator.Validate
	reader   *bufio.Reader
	out      io.Writer
	location string
}

// NewApp opens the local database, builds the REST client and wires the
// session, gate and views. Close releases the database.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	policy := access.DefaultPolicy()
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(db, api, policy, log, os.Stdin, os.Stdout)
	api.SetTokenSource(a.session.AccessToken)
	return a, nil
}

func newApp(db *sql.DB, api client.Client, policy access.Policy, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop{}
	}
	a := &App{
		log:      log.With("component", "cli"),
		db:       db,
		api:      api,
		validate: newValidator(),
		reader:   bufio.NewReader(in),
		out:      out,
		location: common.PathHome,
	}
	a.session = session.NewStore(api, metadata.NewSQLiteRepository(db), a, log)
	a.gate = access.NewGate(policy, a.session)
	a.views = views.NewRegistry(api, a.session)
	return a
}

// Run restores a persisted session, shows the start page and blocks in the
// REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "restoring session failed", "error", err)
	}

	printlnFn("Welcome to PhysioFitness (type 'help' for commands)")

	start := common.PathHome
	if a.isLoggedIn() {
		start = common.PathDashboard
	}
	if err := a.Navigate(ctx, start); err != nil {
		printlnFn("Error:", userMessage(err))
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Navigate asks the gate about path, follows redirects and renders the view
// it finally lands on.
func (a *App) Navigate(ctx context.Context, path string) error {
	for range maxRedirects {
		d := a.gate.Check(path)
		if d.State != access.Allowed {
			a.log.Info(ctx, "navigation redirected", "path", path, "decision", d.State.String(), "to", d.Redirect)
			path = d.Redirect
			continue
		}

		view, ok := a.views.Lookup(path)
		if !ok {
			return fmt.Errorf("%w: page %s", common.ErrNotFound, path)
		}
		a.location = path
		fmt.Fprintf(a.out, "== %s (%s) ==\n", view.Title(), path)
		return view.Render(ctx, a.out)
	}
	return fmt.Errorf("%w: %s", errRedirectLoop, path)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.CurrentUser()
	return ok
}

func (a *App) status() string {
	who := "guest"
	if user, ok := a.session.CurrentUser(); ok {
		who = fmt.Sprintf("%s %s", user.DisplayName(), user.Role())
	}
	return fmt.Sprintf("(%s) %s", who, a.location)
}
