package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enumlabel-generator/internal/match"
	"enumlabel-generator/internal/plan"
)

// DefaultRuntimePackage is the import path of the package holding the error
// types returned by generated code.
const DefaultRuntimePackage = "enumlabel-generator/pkg/enumlabel"

// DefaultSuffix is appended to the snake-cased type name to form the output file name.
const DefaultSuffix = "_label.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the snake-cased type name, e.g. "_label.go".
	Suffix string
	// RuntimePackage is the import path of the runtime error package.
	RuntimePackage string
	// Workers bounds the number of enums rendered concurrently.
	Workers int
	// DebugUnformatted writes a *.unformatted.go sidecar when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:         DefaultSuffix,
		RuntimePackage: DefaultRuntimePackage,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
// Zero fields of config fall back to their defaults.
func NewGenerator(config GeneratorConfig, logger *zap.Logger) *Generator {
	def := DefaultGeneratorConfig()
	if config.Suffix == "" {
		config.Suffix = def.Suffix
	}

	if config.RuntimePackage == "" {
		config.RuntimePackage = def.RuntimePackage
	}

	if config.Workers <= 0 {
		config.Workers = def.Workers
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Type is the fully qualified enum type the file was generated for.
	Type string
	// Dir is the package directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "payment_method_label.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the destination path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders one file per enum of the plan. Enums are rendered
// concurrently; the returned files are in plan order.
func (g *Generator) Generate(ctx context.Context, p *plan.ResolvedPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, len(p.Enums))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)

	for i := range p.Enums {
		re := &p.Enums[i]

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := g.generateEnum(re)
			if err != nil {
				return fmt.Errorf("generating %s: %w", re.Info.ID, err)
			}

			g.logger.Debug("rendered enum",
				zap.String("type", re.Info.ID.Short()),
				zap.String("file", file.Filename),
				zap.Int("bytes", len(file.Content)))

			files[i] = *file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// Filename returns the output file name for a type name.
func (g *Generator) Filename(typeName string) string {
	return match.SnakeCase(typeName) + g.config.Suffix
}

// generateEnum generates the file for a single enum.
func (g *Generator) generateEnum(re *plan.ResolvedEnum) (*GeneratedFile, error) {
	data := g.buildTemplateData(re)

	var buf bytes.Buffer
	if err := labelTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Type:     re.Info.ID.String(),
		Dir:      re.Info.Dir,
		Filename: data.Filename,
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			if derr := writeDebugUnformatted(file.Dir, file.Filename, buf.Bytes()); derr != nil {
				g.logger.Warn("writing unformatted sidecar", zap.Error(derr))
			}
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}
