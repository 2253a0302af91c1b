package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

// errInvalidContent is returned after the field errors have been printed.
var errInvalidContent = errors.New("content document is invalid")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a content JSON file",
		Long:  "Validates a content JSON file against the same rules the server enforces and prints every failing field.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read content file: %w", err)
			}
			var doc content.Document
			if err := content.DecodeStrict(data, &doc); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			doc.Normalize()

			out := cmd.OutOrStdout()
			err = content.Validate(&doc)
			var ve *apperr.ValidationError
			switch {
			case err == nil:
				fmt.Fprintf(out, "%s: ok\n", args[0])
				return nil
			case errors.As(err, &ve):
				for _, f := range ve.Fields {
					fmt.Fprintf(out, "%s: %s\n", f.Field, f.Message)
				}
				return errInvalidContent
			default:
				return err
			}
		},
	}
}
