package main

import (
	"github.com/spf13/cobra"

	"enumlabel-generator/internal/clierr"
	"enumlabel-generator/internal/plan"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [packages]",
		Short: "Print the compiled label tables as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			data, err := plan.ExportYAML(res.plan)
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "exporting plan", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
