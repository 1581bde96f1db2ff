// Package bundle turns a contest solution that imports library packages
// into a single self-contained file: every declaration of every bundleable
// import is copied into the solution and qualified references are rewritten
// to plain identifiers.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/format"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-toolsmith/astcopy"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"
)

var ErrNameConflict = errors.New("declaration name conflict")

// DefaultHosts are the import path hosts inlined when none are configured.
var DefaultHosts = []string{"github.com", "golang.org"}

type Bundler struct {
	hosts    set[string]
	resolver Resolver
	logger   *slog.Logger
}

func New(hosts []string, resolver Resolver, logger *slog.Logger) *Bundler {
	if len(hosts) == 0 {
		hosts = DefaultHosts
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bundler{
		hosts:    makeSetFromSlice(hosts),
		resolver: resolver,
		logger:   logger,
	}
}

// state is the per-call bookkeeping of Bundle.
type state struct {
	fset     *token.FileSet
	target   *ast.File
	visited  set[string]
	names    set[string]
	pkgNames map[string]string // import path -> package name
}

// importRef is an import spec; name is empty unless the import is renamed.
type importRef struct {
	name string
	path string
}

// Bundle returns src with all bundleable imports inlined.
func (b *Bundler) Bundle(src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, 0)
	if err != nil {
		return nil, err
	}

	st := &state{
		fset:     fset,
		target:   f,
		visited:  set[string]{},
		names:    set[string]{},
		pkgNames: map[string]string{},
	}
	own := len(f.Decls)
	for _, decl := range f.Decls {
		for _, name := range declNames(decl) {
			st.names.add(name)
		}
	}

	refs := b.bundleableImports(f.Imports)
	aliases, err := b.inlineImports(st, refs)
	if err != nil {
		return nil, err
	}
	for i, decl := range f.Decls[:own] {
		f.Decls[i] = unqualify(decl, aliases)
	}
	for _, ref := range refs {
		astutil.DeleteNamedImport(fset, f, ref.name, ref.path)
	}

	b.logger.Info("bundled solution",
		slog.Int("packages", len(st.visited)),
		slog.Int("decls", len(f.Decls)),
	)
	return formatAst(f, fset)
}

// inlineImports inlines every package in refs and returns the local name
// each one is referenced by.
func (b *Bundler) inlineImports(st *state, refs []importRef) (map[string]string, error) {
	aliases := map[string]string{}
	for _, ref := range refs {
		if err := b.inlinePackage(st, ref.path); err != nil {
			return nil, err
		}
		// import で alias が貼ってあったらそれを使う
		name := ref.name
		if name == "" {
			name = st.pkgNames[ref.path]
		}
		aliases[name] = ref.path
	}
	return aliases, nil
}

func (b *Bundler) inlinePackage(st *state, importPath string) error {
	if st.visited.has(importPath) {
		return nil
	}
	st.visited.add(importPath)

	dir, err := b.resolver.Resolve(importPath)
	if err != nil {
		return err
	}
	pkgs, err := parser.ParseDir(st.fset, dir, buildFilter(dir), 0)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("%w: no Go files in %s", ErrPackageNotFound, dir)
	}
	b.logger.Debug("inlining package",
		slog.String("import_path", importPath),
		slog.String("dir", dir),
	)

	for _, pkgName := range sortedKeys(pkgs) {
		st.pkgNames[importPath] = pkgName
		pkg := pkgs[pkgName]
		for _, filename := range sortedKeys(pkg.Files) {
			if err := b.inlineFile(st, pkg.Files[filename]); err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
		}
	}
	return nil
}

func (b *Bundler) inlineFile(st *state, f *ast.File) error {
	aliases, err := b.inlineImports(st, b.bundleableImports(f.Imports))
	if err != nil {
		return err
	}
	for _, impt := range f.Imports {
		path, _ := strconv.Unquote(impt.Path.Value)
		if b.isBundleable(path) {
			continue
		}
		name := ""
		if impt.Name != nil {
			name = impt.Name.Name
		}
		astutil.AddNamedImport(st.fset, st.target, name, path)
	}

	for _, decl := range f.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			continue
		}
		for _, name := range declNames(decl) {
			if st.names.has(name) {
				return fmt.Errorf("%w: %s", ErrNameConflict, name)
			}
			st.names.add(name)
		}
		st.target.Decls = append(st.target.Decls, unqualify(astcopy.Decl(decl), aliases))
	}
	return nil
}

// bundleableImports returns the bundleable imports sorted by path.
func (b *Bundler) bundleableImports(specs []*ast.ImportSpec) []importRef {
	var refs []importRef
	for _, impt := range specs {
		path, err := strconv.Unquote(impt.Path.Value)
		if err != nil || !b.isBundleable(path) {
			continue
		}
		ref := importRef{path: path}
		if impt.Name != nil {
			ref.name = impt.Name.Name
		}
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(x, y importRef) int { return strings.Compare(x.path, y.path) })
	return refs
}

func (b *Bundler) isBundleable(importPath string) bool {
	host, _, _ := strings.Cut(importPath, "/")
	return b.hosts.has(host)
}

// unqualify rewrites pkg.Name selectors to Name for every pkg in aliases.
func unqualify(decl ast.Decl, aliases map[string]string) ast.Decl {
	if len(aliases) == 0 {
		return decl
	}
	return astutil.Apply(decl, func(c *astutil.Cursor) bool {
		sel, _ := c.Node().(*ast.SelectorExpr)
		if sel == nil {
			return true
		}
		if ident, _ := sel.X.(*ast.Ident); ident != nil {
			if _, ok := aliases[ident.Name]; ok {
				c.Replace(sel.Sel)
				return false
			}
		}
		return true
	}, nil).(ast.Decl)
}

// declNames lists the package-level names a declaration introduces. Methods,
// init functions and blank identifiers never conflict.
func declNames(decl ast.Decl) []string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv != nil || d.Name.Name == "init" {
			return nil
		}
		return []string{d.Name.Name}
	case *ast.GenDecl:
		var names []string
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				names = append(names, s.Name.Name)
			case *ast.ValueSpec:
				for _, n := range s.Names {
					names = append(names, n.Name)
				}
			}
		}
		return lo.Filter(names, func(n string, _ int) bool { return n != "_" })
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// buildFilter keeps the non-test files of dir that the default build
// context would compile: build constraints and _GOOS/_GOARCH suffixes apply.
func buildFilter(dir string) func(fs.FileInfo) bool {
	return func(f fs.FileInfo) bool {
		if strings.HasSuffix(f.Name(), "_test.go") {
			return false
		}
		ok, err := build.Default.MatchFile(dir, f.Name())
		return err == nil && ok
	}
}

func formatAst(f any, fset *token.FileSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := format.Node(buf, fset, f); err != nil {
		return nil, err
	}
	return imports.Process("", buf.Bytes(), nil)
}
