package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"enumlabel-generator/internal/common"
	"enumlabel-generator/internal/diagnostic"
	"enumlabel-generator/options"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Config controls package loading.
type Config struct {
	// Dir is the directory patterns are resolved from; empty means the current directory.
	Dir string
	// BuildTags are passed to the build system as -tags.
	BuildTags []string
	// GeneratedSuffix names the files this tool writes. Type errors found
	// only in such files are logged and skipped, so stale output does not
	// block its own regeneration.
	GeneratedSuffix string
}

// Analyzer loads Go packages and extracts labeled enums.
type Analyzer struct {
	config Config
	logger *zap.Logger
	graph  *EnumGraph
	diags  diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer. A nil logger disables logging.
func NewAnalyzer(config Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		config: config,
		logger: logger,
		graph:  NewEnumGraph(),
	}
}

// LoadPackages loads the specified packages and collects their enums.
// Patterns are standard Go package patterns (e.g., "./...", "enumlabel-generator/examples/payment").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*EnumGraph, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.config.Dir,
	}

	if len(a.config.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.config.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if a.inGeneratedFile(e) {
				a.logger.Warn("ignoring error in generated file",
					zap.String("package", pkg.PkgPath), zap.String("error", e.Error()))
				continue
			}

			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// inGeneratedFile reports whether e is a type error located in a file
// carrying the generated suffix.
func (a *Analyzer) inGeneratedFile(e packages.Error) bool {
	if a.config.GeneratedSuffix == "" || e.Kind != packages.TypeError {
		return false
	}

	return strings.HasSuffix(errorFile(e.Pos), a.config.GeneratedSuffix)
}

// errorFile strips the line and column from a "file:line:col" position.
func errorFile(pos string) string {
	for range 2 {
		i := strings.LastIndexByte(pos, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(pos[i+1:]); err != nil {
			break
		}

		pos = pos[:i]
	}

	return pos
}

// Graph returns the current enum graph.
func (a *Analyzer) Graph() *EnumGraph {
	return a.graph
}

// Diagnostics returns problems found in directives.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// processPackage extracts enum types and their members from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return fmt.Errorf("package %s has no type information", pkg.PkgPath)
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if file, ok := common.First(pkg.GoFiles); ok {
		pkgInfo.Dir = filepath.Dir(file)
	}

	byName := make(map[string]*EnumInfo)
	var order []*EnumInfo

	// Types first, so that constants declared before their type are still found.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				if info := a.analyzeTypeSpec(pkg, pkgInfo, gen, ts); info != nil {
					byName[info.ID.Name] = info
					order = append(order, info)
				}
			}
		}
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				a.analyzeValueSpec(pkg, byName, gen, spec.(*ast.ValueSpec))
			}
		}
	}

	for _, info := range order {
		if !info.HasDirective && len(info.Members) == 0 {
			continue
		}

		a.graph.Enums[info.ID] = info
		pkgInfo.Enums = append(pkgInfo.Enums, info.ID)

		if info.HasDirective {
			a.logger.Debug("found labeled enum",
				zap.String("type", info.ID.String()),
				zap.String("policy", info.PolicyArg),
				zap.Int("members", len(info.Members)))
		}
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// analyzeTypeSpec returns an EnumInfo for named integer and string types.
func (a *Analyzer) analyzeTypeSpec(pkg *packages.Package, pkgInfo *PackageInfo, gen *ast.GenDecl, ts *ast.TypeSpec) *EnumInfo {
	if ts.Assign.IsValid() || ts.TypeParams != nil {
		return nil
	}

	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil
	}

	var docs []*ast.CommentGroup
	if !gen.Lparen.IsValid() {
		docs = append(docs, gen.Doc)
	}
	docs = append(docs, ts.Doc, ts.Comment)

	dir, hasDirective := FindDirective(GenerateDirective, docs...)
	pos := pkg.Fset.Position(ts.Name.Pos())

	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		if hasDirective {
			a.diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeUnsupportedUnderlying,
				Message:  fmt.Sprintf("underlying type %s is not an integer or string type", obj.Type().Underlying()),
				Enum:     pkg.PkgPath + "." + obj.Name(),
				Pos:      pos.String(),
			})
		}

		return nil
	}

	info := &EnumInfo{
		ID:           TypeID{PkgPath: pkg.PkgPath, Name: obj.Name()},
		PkgName:      pkg.Name,
		Dir:          pkgInfo.Dir,
		Underlying:   basic.Name(),
		HasDirective: hasDirective,
		Scope:        pkg.Types.Scope().Names(),
		Pos:          pos,
	}

	if hasDirective {
		info.PolicyArg = PolicyArg(dir.Arg)
		if p, err := options.ParsePolicy(info.PolicyArg); err == nil {
			info.Policy = p
		}
	}

	return info
}

// analyzeValueSpec appends the constants of a value spec to their enum.
func (a *Analyzer) analyzeValueSpec(pkg *packages.Package, byName map[string]*EnumInfo, gen *ast.GenDecl, vs *ast.ValueSpec) {
	var docs []*ast.CommentGroup
	if !gen.Lparen.IsValid() {
		docs = append(docs, gen.Doc)
	}
	docs = append(docs, vs.Doc, vs.Comment)

	for _, id := range vs.Names {
		if id.Name == "_" {
			continue
		}

		con, ok := pkg.TypesInfo.Defs[id].(*types.Const)
		if !ok {
			continue
		}

		named, ok := types.Unalias(con.Type()).(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}

		info, ok := byName[named.Obj().Name()]
		if !ok {
			continue
		}

		pos := pkg.Fset.Position(id.Pos())
		label := Absent()

		if d, ok := FindDirective(LabelDirective, docs...); ok {
			l, err := ParseLabel(d.Arg)
			if err != nil {
				a.diags.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticError,
					Code:     diagnostic.CodeLabelMalformed,
					Message:  err.Error(),
					Enum:     info.ID.String(),
					Member:   id.Name,
					Pos:      pos.String(),
				})
			}

			label = l
		}

		info.Members = append(info.Members, MemberInfo{
			Name:       id.Name,
			Label:      label,
			ConstValue: con.Val().ExactString(),
			Pos:        pos,
		})
	}
}
