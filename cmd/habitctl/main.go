package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/app"
	"github.com/comitanigiacomo/kanso-habits/internal/config"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/logging"
)

const closeTimeout = 10 * time.Second

// cli holds the persistent flags shared by every subcommand.
type cli struct {
	dataDir string
	envFile string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "habitctl",
		Short: "Kanso habits - track daily habits and streaks",
		Long: `A command line front-end for the Kanso habit store.

Habits are read from and written to the configured storage backend
(a JSON file under DATA_DIR by default). Habit arguments accept the full
id, a unique id prefix or the habit name.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "Directory of the file backend (overrides DATA_DIR)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Optional .env file to load")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log storage activity to stderr")

	root.AddCommand(
		c.listCmd(),
		c.addCmd(),
		c.editCmd(),
		c.toggleCmd(),
		c.deleteCmd(),
		c.statsCmd(),
		c.streakCmd(),
	)
	return root
}

// run opens the store, runs fn and flushes any change before returning.
func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) (err error) {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if cerr := a.Close(closeCtx); cerr != nil && err == nil {
			err = fmt.Errorf("failed to save habits: %w", cerr)
		}
	}()

	logger.Debug("storage opened", zap.String("slot", a.Slot.Name()))
	return fn(ctx, a)
}

// resolve finds a habit by exact id, unique id prefix or case-insensitive name.
func resolve(habits []*domain.Habit, ref string) (*domain.Habit, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrHabitNotFound
	}

	var matches []*domain.Habit
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
		if strings.HasPrefix(h.ID, ref) || strings.EqualFold(h.Name, ref) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", domain.ErrHabitNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q matches %d habits, use a longer id", ref, len(matches))
	}
}
