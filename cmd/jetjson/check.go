package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jetjson"
)

func newCheckCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "check --schema schema.json [file|-]",
		Short: "Validate a JSON document against a JSON Schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaBytes, err := os.ReadFile(schemaPath) //nolint:gosec // Schema path from CLI flag is expected.
			if err != nil {
				return fmt.Errorf("reading schema: %w", err)
			}

			var schema jsonschema.Schema

			err = json.Unmarshal(schemaBytes, &schema)
			if err != nil {
				return fmt.Errorf("decoding schema: %w", err)
			}

			resolved, err := schema.Resolve(nil)
			if err != nil {
				return fmt.Errorf("resolving schema: %w", err)
			}

			data, err := readInput(args)
			if err != nil {
				return err
			}

			ctx := jetjson.NewContext()
			defer ctx.Close()

			root, err := ctx.Parse(data)
			if err != nil {
				return err
			}

			doc, err := root.Interface()
			if err != nil {
				return err
			}

			err = resolved.Validate(doc)
			if err != nil {
				return fmt.Errorf("document does not match schema: %w", err)
			}

			slog.Debug("document validated", "schema", schemaPath, "bytes", len(data))
			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "JSON Schema file (required)")

	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
