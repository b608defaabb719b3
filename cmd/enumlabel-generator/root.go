package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/internal/clierr"
	"enumlabel-generator/internal/diagnostic"
	"enumlabel-generator/internal/mapping"
	"enumlabel-generator/internal/plan"
)

// version is set with -ldflags "-X main.version=...".
var version = "0.0.0-dev"

// rootOptions holds the global flags and the logger shared by subcommands.
type rootOptions struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

// NewRootCmd constructs the root Cobra command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "enumlabel-generator",
		Short: "Generate label lookups for Go enums",
		Long: `enumlabel-generator reads //enumlabel:generate and //enumlabel:label directives
and generates Label, FromLabel and Labels functions for each annotated enum.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			opts.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"configuration file (default: "+mapping.DefaultFileName+" if present)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.ExitUsage, "invalid flags", err)
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "enumlabel-generator version %s\n", version)
		},
	})

	cmd.AddCommand(newGenCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))

	return cmd
}

// runResult is the outcome of the shared load, analyze and resolve pipeline.
type runResult struct {
	config *mapping.ConfigFile
	plan   *plan.ResolvedPlan
}

// loadConfig reads the configuration file named by --config, or the default
// file when it exists, or returns the defaults.
func (o *rootOptions) loadConfig() (*mapping.ConfigFile, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(mapping.DefaultFileName); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return mapping.Parse(nil)
			}

			return nil, clierr.Wrap(clierr.ExitUsage, "reading configuration", err)
		}

		path = mapping.DefaultFileName
	}

	cf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "loading configuration", err)
	}

	o.logger.Debug("loaded configuration", zap.String("path", path), zap.Int("enums", len(cf.Enums)))

	return cf, nil
}

// resolve runs configuration loading, package analysis and table compilation.
func (o *rootOptions) resolve(cmd *cobra.Command, patterns []string) (*runResult, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cf, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	analyzer := analyze.NewAnalyzer(analyze.Config{
		BuildTags:       cf.BuildTags,
		GeneratedSuffix: cf.Suffix,
	}, o.logger)

	graph, err := analyzer.LoadPackages(cmd.Context(), patterns...)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitFailure, "loading packages", err)
	}

	diags := analyzer.Diagnostics()

	cfgDiags := mapping.Validate(cf, graph)
	diags.Merge(*cfgDiags)

	if cfgDiags.HasErrors() {
		printDiagnostics(cmd.ErrOrStderr(), diags)
		return nil, clierr.Wrap(clierr.ExitUsage, "invalid configuration", cfgDiags.Error())
	}

	if n := mapping.Apply(cf, graph); n > 0 {
		o.logger.Debug("applied configuration overrides", zap.Int("enums", n))
	}

	p := plan.Resolve(graph.Selected())
	diags.Merge(p.Diagnostics)

	printDiagnostics(cmd.ErrOrStderr(), diags)

	if diags.HasErrors() {
		return nil, clierr.Wrap(clierr.ExitFailure, "analysis failed", diags.Error())
	}

	for _, re := range p.Enums {
		o.logger.Info("resolved enum", zap.String("summary", re.Summary()))
	}

	return &runResult{config: cf, plan: p}, nil
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
