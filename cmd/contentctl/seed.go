package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peecock/content-admin/backend/go-services/internal/content/repository"
	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
)

func newSeedCmd() *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Write the default content document if the file does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo := repository.NewFileRepo(args[0])
			_, err := repo.Load(ctx)
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left unchanged\n", args[0])
				return nil
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}
			if err := service.New(repo, service.WithVersion(version)).Init(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "1.0.0", "Version stamped on the seeded document")
	return cmd
}
