package cli

import (
	"errors"

	"github.com/spf13/cobra"

	cliErrors "addressbook/internal/platform/cli"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/middleware"
)

// ErrorHandler passes shell errors through and turns anything else into an
// internal error after logging it.
func ErrorHandler(next middleware.RunFunc) middleware.RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		err := next(cmd, args)
		if err == nil {
			return nil
		}

		var cliErr *cliErrors.Error
		if errors.As(err, &cliErr) {
			return err
		}

		logger.FromContext(cmd.Context()).Error("Unexpected command error",
			logger.String("command", cmd.CommandPath()),
			logger.Int("args", len(args)),
			logger.Error(err))
		return cliErrors.NewInternal("internal error", err)
	}
}
