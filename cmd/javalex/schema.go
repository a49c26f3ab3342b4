package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"javalex/internal/diagfmt"
)

func newSchemaCmd() *cobra.Command {
	var validate string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of `tokenize --format json` output",
		Long: `Without flags prints the schema. With --validate checks a token listing
("-" reads stdin) against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if validate == "" {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", diagfmt.TokenSchema())
				return err
			}

			var (
				data []byte
				err  error
			)
			if validate == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(validate) // #nosec G304 -- path comes from the user
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", validate, err)
			}
			if err := diagfmt.ValidateTokensJSON(data); err != nil {
				return fmt.Errorf("%s: %w", validate, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", validate)
			return nil
		},
	}
	cmd.Flags().StringVar(&validate, "validate", "", "validate a JSON token listing instead of printing the schema")
	return cmd
}
