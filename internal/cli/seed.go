package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/bootstrap"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/repository"
)

// SeedCommand loads the sample catalog into a database without serving it.
type SeedCommand struct {
	DatabasePath string
	LogLevel     string
}

func NewSeedCommand() *cobra.Command {
	seed := &SeedCommand{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into a database",
		Long: "Load one publisher, two authors and two books into the database.\n" +
			"Seeding is skipped when a publisher already exists. The default\n" +
			"database is in-memory, so pass -db with a file path to keep the data.",
		Example: "  bookshelf seed --db ./bookshelf.db",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed.Run(cmd)
		},
	}

	cmd.Flags().StringVar(&seed.DatabasePath, "db", config.DefaultDatabasePath, "Database path or SQLite DSN")
	cmd.Flags().StringVar(&seed.LogLevel, "log-level", "warn", "SQL log level (silent, error, warn, info)")
	return cmd
}

func (s *SeedCommand) Run(cmd *cobra.Command) error {
	db, err := database.NewDatabase(config.Database{
		Path:         s.DatabasePath,
		LogLevel:     s.LogLevel,
		MaxOpenConns: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	loader := bootstrap.NewLoader(
		repository.NewAuthorRepository(db.DB),
		repository.NewBookRepository(db.DB),
		repository.NewPublisherRepository(db.DB),
	)
	summary, err := loader.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Seed Summary")
	fmt.Fprintln(out, "============")
	if summary.Skipped {
		fmt.Fprintln(out, "Data already present, nothing inserted")
	}
	fmt.Fprintf(out, "Publishers:      %d\n", summary.Publishers)
	fmt.Fprintf(out, "Authors:         %d\n", summary.Authors)
	fmt.Fprintf(out, "Books:           %d\n", summary.Books)
	fmt.Fprintf(out, "Publisher books: %d\n", summary.PublisherBooks)
	return nil
}
