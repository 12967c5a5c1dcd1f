package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aora/client/internal/config"
	"github.com/aora/client/internal/logging"
)

// Run bootstraps the Aora command line client.
func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("expected command: signup, login, logout, whoami, feed, latest, search, mine, or publish")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	ctx = logging.WithLogger(ctx, logger)

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}

	switch args[0] {
	case "signup":
		return deps.signUp(ctx, args[1:])
	case "login":
		return deps.logIn(ctx, args[1:])
	case "logout":
		return deps.logOut(ctx)
	case "whoami":
		return deps.whoAmI(ctx)
	case "feed":
		return deps.feed(ctx)
	case "latest":
		return deps.latest(ctx)
	case "search":
		return deps.search(ctx, args[1:])
	case "mine":
		return deps.mine(ctx, args[1:])
	case "publish":
		return deps.publish(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
