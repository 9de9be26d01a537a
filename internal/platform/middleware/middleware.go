package middleware

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"addressbook/internal/platform/logger"
)

// RunFunc matches cobra's RunE.
type RunFunc func(cmd *cobra.Command, args []string) error

type Middleware func(next RunFunc) RunFunc

// Chain wraps run so that the first middleware is the outermost one.
func Chain(run RunFunc, middlewares ...Middleware) RunFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		run = middlewares[i](run)
	}
	return run
}

type commandIDKey struct{}

func WithCommandID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, commandIDKey{}, id)
}

func GetCommandID(ctx context.Context) int {
	if id, ok := ctx.Value(commandIDKey{}).(int); ok {
		return id
	}
	return 0
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func CommandLogger(baseLogger logger.Logger) Middleware {
	return func(next RunFunc) RunFunc {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			ctx := commandContext(cmd)

			contextLogger := baseLogger.With(
				logger.String("command", cmd.Name()),
				logger.Int("command_id", GetCommandID(ctx)),
			)
			cmd.SetContext(logger.WithLogger(ctx, contextLogger))

			err := next(cmd, args)

			fields := []logger.Field{
				logger.Int("args", len(args)),
				logger.Duration("duration", time.Since(start)),
			}
			if err != nil {
				contextLogger.Info("Command failed", append(fields, logger.Error(err))...)
				return err
			}

			contextLogger.Info("Command executed", fields...)
			return nil
		}
	}
}
