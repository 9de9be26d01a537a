package middleware

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"addressbook/internal/platform/cli"
	"addressbook/internal/platform/metrics"
)

func Metrics(metricsProvider *metrics.Provider) Middleware {
	return func(next RunFunc) RunFunc {
		return func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			start := time.Now()

			err := next(cmd, args)

			attrs := metric.WithAttributes(
				attribute.String("command", cmd.Name()),
				attribute.String("outcome", outcome(err)),
			)
			metricsProvider.CommandsTotal.Add(ctx, 1, attrs)
			metricsProvider.CommandDuration.Record(ctx, time.Since(start).Seconds(), attrs)

			return err
		}
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	var cliErr *cli.Error
	if errors.As(err, &cliErr) {
		return cliErr.Kind.String()
	}
	return "error"
}
