package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
)

// NewRootCommand builds the bookshelf command tree. Running the binary
// without a subcommand starts the HTTP server.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Catalog of books, authors and publishers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			entrypoint.Run(config.NewConfig(), version)
		},
	}

	root.AddCommand(
		NewServeCommand(version),
		NewSeedCommand(),
	)
	return root
}

func NewServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default if no command given)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			entrypoint.Run(config.NewConfig(), version)
		},
	}
}
