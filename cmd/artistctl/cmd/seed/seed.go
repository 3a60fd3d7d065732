package seed

import (
	"fmt"

	"github.com/saransh1220/artistly/cmd/artistctl/backend"
	"github.com/saransh1220/artistly/internal/modules/artist"
	"github.com/saransh1220/artistly/internal/modules/identity"
	"github.com/spf13/cobra"
)

// Command writes the demo users and artist catalog. Existing collections are kept.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo users and artists into empty collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := backend.Open(ctx)
			if err != nil {
				return err
			}
			defer b.Close()

			store := b.Storage.Store()
			bus := b.Changes.Bus()

			if err := identity.NewModule(store, bus, b.Config, b.Logger).Service().SeedDemoUsers(ctx); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}

			artists := artist.NewModule(ctx, store, bus, nil, b.Logger)
			defer artists.Close()
			if err := artists.Service().SeedDemoCatalog(ctx); err != nil {
				return fmt.Errorf("seed artists: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Seed complete")
			return nil
		},
	}
}
