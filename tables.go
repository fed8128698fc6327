package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the IMT bracket tables in use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := loadTables()
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(tables)
		},
	}
}
