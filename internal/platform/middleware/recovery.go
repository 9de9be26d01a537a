package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"addressbook/internal/platform/cli"
	"addressbook/internal/platform/logger"
)

func Recovery(log logger.Logger) Middleware {
	return func(next RunFunc) RunFunc {
		return func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Panic recovered",
						logger.String("command", cmd.Name()),
						logger.Int("command_id", GetCommandID(commandContext(cmd))),
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("stack", string(debug.Stack())),
					)

					err = cli.NewInternal("internal error", fmt.Errorf("panic: %v", r))
				}
			}()

			return next(cmd, args)
		}
	}
}
