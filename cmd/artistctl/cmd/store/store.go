package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/saransh1220/artistly/cmd/artistctl/backend"
	storagedomain "github.com/saransh1220/artistly/internal/modules/storage/domain"
	"github.com/spf13/cobra"
)

var aliases = map[string]string{
	"artists":  storagedomain.KeyArtists,
	"bookings": storagedomain.KeyBookings,
	"users":    storagedomain.KeyUsers,
	"session":  storagedomain.KeySession,
}

// resolveKey accepts a short alias or a full persisted key.
func resolveKey(name string) (string, error) {
	if key, ok := aliases[name]; ok {
		return key, nil
	}
	for _, key := range aliases {
		if key == name {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown key %q (want one of %s)", name, strings.Join(aliasNames(), ", "))
}

func aliasNames() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DumpCommand prints the JSON blob stored under a key.
func DumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <key>",
		Short: "Print the JSON stored under a key (artists, bookings, users, session)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(args[0])
			if err != nil {
				return err
			}
			b, err := backend.Open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			raw, err := b.Storage.Store().Get(cmd.Context(), key)
			if errors.Is(err, storagedomain.ErrKeyNotFound) {
				return fmt.Errorf("%s is empty", key)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}

			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return fmt.Errorf("%s holds invalid JSON: %w", key, err)
			}
			out.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
}

// ResetCommand deletes a key and notifies running servers.
func ResetCommand() *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "reset <key>",
		Short: "Delete the data stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete %s without --yes", key)
			}
			b, err := backend.Open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			if err := b.Storage.Store().Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
			b.Changes.Bus().Publish(cmd.Context(), key)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", key)
			return nil
		},
	}

	c.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return c
}
