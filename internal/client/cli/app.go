// Package cli is the interactive shell of the campustrade client. It wires
// the durable store, the API gateway, the session store and the navigation
// guard together and drives them from a small command loop.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/ekalnins/campustrade/internal/client/api"
	"github.com/ekalnins/campustrade/internal/client/config"
	"github.com/ekalnins/campustrade/internal/client/nav"
	"github.com/ekalnins/campustrade/internal/client/session"
	"github.com/ekalnins/campustrade/internal/client/storage"
	"github.com/ekalnins/campustrade/internal/logging"
)

type App struct {
	config  *config.Config
	client  *api.Client
	session *session.Store
	guard   *nav.Guard
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.Default())

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}
	kv := storage.NewSQLiteStore(db)

	// The gateway reads the credential through the session store, which in
	// turn calls the gateway; the function indirection breaks the
	// construction cycle.
	var sess *session.Store
	client, err := api.NewClient(api.ClientConfig{
		BaseURL: c.APIBaseURL,
		Timeout: c.RequestTimeout,
		Logger:  log,
		Tokens: api.TokenSourceFunc(func() string {
			if sess == nil {
				return ""
			}
			return sess.Token()
		}),
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sess = session.New(client, kv, log)
	sess.Init(ctx)

	return &App{
		config:  c,
		client:  client,
		session: sess,
		guard:   nav.NewGuard(sess, kv),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner, a.out)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// statusLine renders the prompt suffix: the username when signed in.
func (a *App) statusLine() string {
	if name, ok := a.session.Username(); ok {
		return name
	}
	return "guest"
}
