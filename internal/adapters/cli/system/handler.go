package system

import (
	"github.com/spf13/cobra"

	"addressbook/internal/adapters/cli/response"
	cliErrors "addressbook/internal/platform/cli"
	"addressbook/internal/platform/metrics"
	"addressbook/internal/version"
)

type Handler struct {
	metricsProvider *metrics.Provider
}

func NewHandler(metricsProvider *metrics.Provider) *Handler {
	return &Handler{
		metricsProvider: metricsProvider,
	}
}

func (h *Handler) Stats(cmd *cobra.Command, _ []string) error {
	if err := h.metricsProvider.WriteText(cmd.OutOrStdout()); err != nil {
		return cliErrors.NewInternal("metrics unavailable", err)
	}
	return nil
}

func (h *Handler) Version(cmd *cobra.Command, _ []string) error {
	response.RespondLine(cmd.OutOrStdout(), "%s", version.Info())
	return nil
}
