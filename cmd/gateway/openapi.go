package main

import (
	"encoding/json"
	"fmt"

	"github.com/DanielPopoola/card-payment-gateway/docs"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func openapiCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI 3 document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := docs.OpenAPI3()
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode openapi document: %w", err)
			}

			switch format {
			case "json":
			case "yaml":
				var tree interface{}
				if err := json.Unmarshal(data, &tree); err != nil {
					return err
				}
				if data, err = yaml.Marshal(tree); err != nil {
					return fmt.Errorf("encode openapi document: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")

	return cmd
}
