package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/cinetrack/internal/adapter"
	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/models"
)

// ErrUsage is returned for an unknown command or wrong arguments.
var ErrUsage = errors.New("usage error")

const usage = `usage: cinetrack [flags] <command> [args]

commands:
  signup <name> <email> <password>
  login <email> <password>
  logout
  refresh
  whoami
  profile
  watchlist [list]
  watchlist add <id> <title> <movie|tv-show> [runtime] [poster]
  watchlist rm <id>
  watchlist rate <id> <0-5>
  watchlist review <id> <text...>
  backlog [list]
  backlog add <id> <title> [runtime] [poster]
  backlog rm <id>
  backlog move <id> <movie|tv-show>
  version
`

// App is the command-line client. Each run executes one command against the
// session restored from the token store.
type App struct {
	session *Session
	adapter adapter.ServerAdapter
	args    []string

	out    io.Writer
	logger *logger.Logger
}

// NewApp opens the token store, builds the server adapter and the session.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	tokens, err := store.NewTokenStore(ctx, cfg.Storage.TokenStoreDSN, log)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	return newApp(NewSession(serverAdapter, tokens, log), serverAdapter, cfg.Args, out, log), nil
}

func newApp(session *Session, serverAdapter adapter.ServerAdapter, args []string, out io.Writer, log *logger.Logger) *App {
	return &App{
		session: session,
		adapter: serverAdapter,
		args:    args,
		out:     out,
		logger:  log,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		_, _ = io.WriteString(a.out, usage)
		return ErrUsage
	}

	command, args := a.args[0], a.args[1:]
	if command == "version" {
		v, err := a.adapter.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, v)
		return err
	}

	if err := a.session.Start(ctx); err != nil {
		return err
	}

	a.logger.Debug().Str("command", command).Str("state", a.session.State().String()).Msg("running command")

	switch command {
	case "signup":
		if len(args) != 3 {
			return usageError("signup <name> <email> <password>")
		}
		return a.print(a.session.Signup(ctx, models.SignupRequest{Name: args[0], Email: args[1], Password: args[2]}))
	case "login":
		if len(args) != 2 {
			return usageError("login <email> <password>")
		}
		return a.print(a.session.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]}))
	case "logout":
		return a.session.Logout(ctx)
	case "refresh":
		if err := a.session.Refresh(ctx); err != nil {
			return err
		}
		return a.printValue(a.session.User())
	case "whoami":
		if a.session.State() != StateAuthenticated {
			return ErrNotAuthenticated
		}
		return a.printValue(a.session.User())
	case "profile":
		return a.print(a.session.Profile(ctx))
	case "watchlist":
		return a.runWatchlist(ctx, args)
	case "backlog":
		return a.runBacklog(ctx, args)
	default:
		_, _ = io.WriteString(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (a *App) runWatchlist(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		return a.print(a.session.Watchlist(ctx))
	case "add":
		if len(args) < 3 || len(args) > 5 {
			return usageError("watchlist add <id> <title> <movie|tv-show> [runtime] [poster]")
		}
		input := models.WatchlistEntryInput{ID: args[0], Title: args[1], ContentType: models.ContentType(args[2])}
		if len(args) > 3 {
			input.Runtime = args[3]
		}
		if len(args) > 4 {
			input.Poster = args[4]
		}
		return a.print(a.session.AddToWatchlist(ctx, input))
	case "rm":
		if len(args) != 1 {
			return usageError("watchlist rm <id>")
		}
		return a.print(a.session.RemoveFromWatchlist(ctx, args[0]))
	case "rate":
		if len(args) != 2 {
			return usageError("watchlist rate <id> <0-5>")
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return usageError("watchlist rate <id> <0-5>")
		}
		return a.print(a.session.SetRating(ctx, args[0], rating))
	case "review":
		if len(args) < 1 {
			return usageError("watchlist review <id> <text...>")
		}
		return a.print(a.session.SetReview(ctx, args[0], strings.Join(args[1:], " ")))
	default:
		return usageError("watchlist [list|add|rm|rate|review]")
	}
}

func (a *App) runBacklog(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		return a.print(a.session.Backlog(ctx))
	case "add":
		if len(args) < 2 || len(args) > 4 {
			return usageError("backlog add <id> <title> [runtime] [poster]")
		}
		input := models.BacklogEntryInput{ID: args[0], Title: args[1]}
		if len(args) > 2 {
			input.Runtime = args[2]
		}
		if len(args) > 3 {
			input.Poster = args[3]
		}
		return a.print(a.session.AddToBacklog(ctx, input))
	case "rm":
		if len(args) != 1 {
			return usageError("backlog rm <id>")
		}
		return a.print(a.session.RemoveFromBacklog(ctx, args[0]))
	case "move":
		if len(args) != 2 {
			return usageError("backlog move <id> <movie|tv-show>")
		}
		return a.print(a.session.MoveToWatchlist(ctx, args[0], models.ContentType(args[1])))
	default:
		return usageError("backlog [list|add|rm|move]")
	}
}

// Close releases the session.
func (a *App) Close() error {
	return a.session.Close()
}

// print writes v as indented JSON unless err is set. Its signature lets it
// take a session call's results directly.
func (a *App) print(v any, err error) error {
	if err != nil {
		return err
	}
	return a.printValue(v)
}

func (a *App) printValue(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError(form string) error {
	return fmt.Errorf("%w: %s", ErrUsage, form)
}
