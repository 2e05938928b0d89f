package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/config"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophsession/internal/client/router"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
	"github.com/dmitrijs2005/gophsession/internal/client/state"
	"github.com/dmitrijs2005/gophsession/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *tokenstore.Store
	alerts  *state.Alerts
	session *state.Session
	router  *router.Router
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time

	unsubscribe []func()
}

// NewApp opens the configured token store and API client and wires them
// into a ready-to-run App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, err := openRepository(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening token store", "driver", c.StoreDriver, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	return newApp(c, log, tokenstore.New(repo), apiClient, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, store *tokenstore.Store, api client.Client, reader *bufio.Reader, out io.Writer) *App {
	alerts := state.NewAlerts()
	r := router.New(router.NewGuard(store))
	svc := services.NewSessionService(api, store, log)

	a := &App{
		config:  c,
		log:     log.With("component", "cli"),
		store:   store,
		alerts:  alerts,
		session: state.NewSession(svc, alerts, r),
		router:  r,
		reader:  reader,
		out:     out,
		now:     time.Now,
	}
	a.unsubscribe = append(a.unsubscribe, alerts.Subscribe(a.renderAlert))
	r.AfterEach(a.onNavigate)
	return a
}

func openRepository(ctx context.Context, c *config.Config) (localstorage.Repository, error) {
	switch c.StoreDriver {
	case config.DriverSQLite:
		repo, err := localstorage.OpenSQLite(ctx, c.StorePath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverRedis:
		repo, err := localstorage.OpenRedis(ctx, localstorage.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Prefix:   c.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverMemory:
		return localstorage.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
}

// Run enters the home route and serves the REPL until EOF, exit or ctx
// cancellation. The token store is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Session client (type 'help' for commands)")
	if err := a.router.Push(ctx, router.PathHome); err != nil {
		a.log.Error(ctx, "error entering home route", "error", err)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	for _, fn := range a.unsubscribe {
		fn()
	}
	a.unsubscribe = nil
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing token store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated
}

func (a *App) getStatus() string {
	s := ""
	if st := a.session.State(); st.Authenticated && st.Email != "" {
		s = st.Email + " "
	}
	if loc := a.router.Current(); loc.Path != "" {
		s += loc.Path
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
