package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// CommandHandler is the RunE function of a cobra command.
type CommandHandler func(cmd *cobra.Command, args []string) error

const (
	slowCommand    = 2 * time.Second
	commandTimeout = 2 * time.Minute
)

// WrapWithLogging wraps a command handler with logging functionality
func WrapWithLogging(name string, h CommandHandler) CommandHandler {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		slog.Debug("Command started",
			slog.String("type", "sys"),
			slog.String("name", name),
			slog.String("args", strings.Join(args, " ")),
		)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		cmd.SetContext(ctx)

		done := make(chan error, 1)
		go func() {
			done <- h(cmd, args)
		}()

		select {
		case err := <-done:
			duration := time.Since(start)
			attrs := []any{
				slog.String("type", "sys"),
				slog.String("name", name),
				slog.Duration("took", duration),
			}

			if err != nil {
				slog.Error("Command failed", append(attrs,
					slog.Any("error", err),
					slog.String("status", "failed"),
				)...)
			} else if duration > slowCommand {
				slog.Warn("Command executed slowly", append(attrs,
					slog.String("status", "slow"),
				)...)
			} else {
				slog.Debug("Command completed", append(attrs,
					slog.String("status", "success"),
				)...)
			}
			return err

		case <-ctx.Done():
			slog.Error("Command timed out",
				slog.String("type", "sys"),
				slog.String("name", name),
				slog.String("status", "timeout"),
				slog.Duration("timeout", commandTimeout),
			)
			return fmt.Errorf("command %s timed out: %w", name, ctx.Err())
		}
	}
}
