package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/wordsolver/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration after the config file and flags are applied.
With --output the YAML is saved to a file that --config can read back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return config.Encode(cmd.OutOrStdout(), opts.cfg)
			}
			if err := config.Write(output, opts.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the YAML to this file")
	return cmd
}
