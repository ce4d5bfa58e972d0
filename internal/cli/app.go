// Package cli is the terminal presentation layer. It renders whatever view
// the session controller derives and forwards user commands to it.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"fittrack/internal/api"
	"fittrack/internal/config"
	"fittrack/internal/logging"
	"fittrack/internal/session"
	"fittrack/internal/storage"
)

type App struct {
	config  *config.Config
	api     api.Client
	session *session.Controller
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	closer io.Closer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	out := os.Stdout
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	ctrl := session.New(apiClient, storage.NewSQLiteTokenStore(db), NewNotifier(out), log)

	return &App{
		config:  c,
		api:     apiClient,
		session: ctrl,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     out,
		closer:  db,
	}, nil
}

// Close releases the local database.
func (a *App) Close() error {
	return a.closer.Close()
}

// Run restores the session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to fittrack (type 'help' for commands)")
	fmt.Fprintln(a.out, "Restoring session...")

	a.session.Bootstrap(ctx)

	if user := a.session.User(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Email)
	}

	runREPL(ctx, a, a.prompt, bufio.NewScanner(os.Stdin), a.out)
}

// CurrentView exposes the derived view to the REPL.
func (a *App) CurrentView() session.View {
	return a.session.View()
}

func (a *App) prompt() string {
	view := a.session.View()
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("(%s %s)", user.Email, view)
	}
	return fmt.Sprintf("(%s)", view)
}
