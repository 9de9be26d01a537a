package cli

import (
	"github.com/spf13/cobra"

	"addressbook/internal/adapters/cli/contact"
	"addressbook/internal/adapters/cli/system"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/metrics"
	"addressbook/internal/platform/middleware"
)

// Router builds a fresh command tree. cobra keeps flag and argument state on
// its commands, so every shell line gets its own tree.
type Router func() *cobra.Command

type RouterDependencies struct {
	Logger          logger.Logger
	MetricsProvider *metrics.Provider
	ContactHandler  *contact.Handler
	SystemHandler   *system.Handler
}

func NewRouter(deps RouterDependencies) Router {
	return func() *cobra.Command {
		return newRootCommand(deps)
	}
}

func newRootCommand(deps RouterDependencies) *cobra.Command {
	wrap := func(run middleware.RunFunc) middleware.RunFunc {
		return middleware.Chain(run,
			middleware.CommandLogger(deps.Logger),
			middleware.Metrics(deps.MetricsProvider),
			ErrorHandler,
			middleware.Recovery(deps.Logger),
		)
	}

	root := &cobra.Command{
		Use:           "addressbook",
		Short:         "Manage an in-memory address book",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	contacts := deps.ContactHandler
	root.AddCommand(
		&cobra.Command{
			Use:   "add FIRST LAST ADDRESS CITY STATE ZIP PHONE EMAIL",
			Short: "Add a contact",
			Args:  cobra.ExactArgs(8),
			RunE:  wrap(contacts.AddContact),
		},
		&cobra.Command{
			Use:   "edit FULL_NAME FIRST LAST ADDRESS CITY STATE ZIP PHONE EMAIL",
			Short: "Replace a contact, keeping its position",
			Args:  cobra.ExactArgs(9),
			RunE:  wrap(contacts.EditContact),
		},
		&cobra.Command{
			Use:   "delete FULL_NAME",
			Short: "Delete every contact with the given full name",
			Args:  cobra.ExactArgs(1),
			RunE:  wrap(contacts.DeleteContact),
		},
		&cobra.Command{
			Use:   "count [CITY_OR_STATE]",
			Short: "Count all contacts, or those in a city or state",
			Args:  cobra.MaximumNArgs(1),
			RunE:  wrap(contacts.CountContacts),
		},
		&cobra.Command{
			Use:   "search FULL_NAME CITY_OR_STATE",
			Short: "Find contacts by full name within a city or state",
			Args:  cobra.ExactArgs(2),
			RunE:  wrap(contacts.SearchContacts),
		},
		&cobra.Command{
			Use:   "view CITY_OR_STATE",
			Short: "List contacts in a city or state",
			Args:  cobra.ExactArgs(1),
			RunE:  wrap(contacts.ViewContacts),
		},
		&cobra.Command{
			Use:       "sort name|city|state|zip",
			Short:     "Reorder the book and print it",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"name", "city", "state", "zip"},
			RunE:      wrap(contacts.SortContacts),
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List all contacts in book order",
			Args:    cobra.NoArgs,
			RunE:    wrap(contacts.ListContacts),
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: "Add contacts from a YAML file",
			Args:  cobra.ExactArgs(1),
			RunE:  wrap(contacts.ImportContacts),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Print command metrics in Prometheus text format",
			Args:  cobra.NoArgs,
			RunE:  wrap(deps.SystemHandler.Stats),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			RunE:  wrap(deps.SystemHandler.Version),
		},
	)

	return root
}
