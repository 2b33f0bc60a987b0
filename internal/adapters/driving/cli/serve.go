package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driving/telegram"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

var serveMaxUploadMB int64

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Loads every configured source into the index and answers Telegram
updates until interrupted.

Requires a bot token (telegram.token or SERCHA_BOT_TOKEN) and at least one
allowed user ID (access.allowed_ids or SERCHA_BOT_ALLOWED_IDS). Only one
serve process may run per config directory.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int64Var(&serveMaxUploadMB, "max-upload-mb", telegram.DefaultMaxUploadBytes>>20,
		"largest accepted upload in megabytes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := settings.ValidateForBot(); err != nil {
		return err
	}

	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	lock := newInstanceLock(dir)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("%v", err)
		}
	}()

	logger.SetTimestamps(true)
	defer logger.SetTimestamps(false)

	a, err := newApp(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := a.index.LoadAll(ctx); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	api, err := telegram.NewAPI(settings.BotToken)
	if err != nil {
		return fmt.Errorf("connecting to telegram: %w", err)
	}

	bot, err := telegram.New(api, &telegram.Ports{
		Search: a.search,
		Index:  a.index,
		Access: a.access,
		Files:  a.files,
	}, telegram.WithMaxUploadBytes(serveMaxUploadMB<<20))
	if err != nil {
		return err
	}

	return runUntilDone(ctx, bot.Run)
}

// runUntilDone runs fn and treats cancellation as a clean stop.
func runUntilDone(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if ctx.Err() != nil {
		logger.Info("Shutting down")
		return nil
	}
	return err
}
