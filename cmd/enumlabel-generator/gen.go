package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enumlabel-generator/internal/clierr"
	"enumlabel-generator/internal/gen"
)

func newGenCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate label files for annotated enums",
		Long: `Generate one <type>_label.go file per annotated enum in the given packages
(default "."). Files already up to date are not rewritten. Type errors in
existing generated files are ignored, so stale output is simply replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			g := gen.NewGenerator(res.config.GeneratorConfig(), opts.logger)

			files, err := g.Generate(cmd.Context(), res.plan)
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "generating code", err)
			}

			out := cmd.OutOrStdout()

			if dryRun {
				for _, f := range files {
					_, _ = fmt.Fprintln(out, f.Path())
				}

				return nil
			}

			written, err := gen.WriteFiles(files)
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "writing files", err)
			}

			for _, path := range written {
				opts.logger.Info("wrote file", zap.String("path", path))
				_, _ = fmt.Fprintln(out, path)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the files that would be generated without writing them")

	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Verify that generated label files are up to date",
		Long:  `Render every annotated enum and compare the result with the files on disk. Exits with status 3 when any file is missing or outdated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(res.config.GeneratorConfig(), opts.logger).Generate(cmd.Context(), res.plan)
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "generating code", err)
			}

			stale, err := gen.Check(files)
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "checking files", err)
			}

			for _, s := range stale {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			if len(stale) > 0 {
				return clierr.Newf(clierr.ExitStale, "%d generated file(s) out of date", len(stale))
			}

			return nil
		},
	}
}
