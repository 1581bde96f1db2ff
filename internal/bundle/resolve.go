package bundle

import (
	"errors"
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/mod/semver"
	"golang.org/x/tools/go/packages"
)

var ErrPackageNotFound = errors.New("package not found")

// Resolver maps an import path to the directory holding its sources.
type Resolver interface {
	Resolve(importPath string) (string, error)
}

// PackagesResolver asks the go command, run from Dir, where a package lives.
// It sees the module graph of Dir, including the main module itself.
type PackagesResolver struct {
	Dir string
}

func (r PackagesResolver) Resolve(importPath string) (string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  r.Dir,
	}
	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", importPath, err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return "", fmt.Errorf("%w: %s: %v", ErrPackageNotFound, importPath, pkg.Errors[0])
		}
		if len(pkg.GoFiles) > 0 {
			return filepath.Dir(pkg.GoFiles[0]), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPackageNotFound, importPath)
}

// ModCacheResolver finds a package in $GOPATH/pkg/mod by matching
// `<elem>@<version>` directory names. When several versions are cached
// the greatest one by semver precedence wins.
type ModCacheResolver struct {
	GOPATH string
}

func NewModCacheResolver() ModCacheResolver {
	return ModCacheResolver{GOPATH: build.Default.GOPATH}
}

// TODO: read the required version from go.mod instead of taking the greatest cached one.
func (r ModCacheResolver) Resolve(importPath string) (string, error) {
	if !filepath.IsAbs(r.GOPATH) {
		return "", errors.New("gopath must be absolute path")
	}
	dirs := strings.Split(importPath, "/")
	pkgPath := filepath.Join(r.GOPATH, "pkg", "mod")
	for i, elem := range dirs {
		entries, err := os.ReadDir(pkgPath)
		if err != nil {
			break
		}
		pattern := regexp.MustCompile("^" + regexp.QuoteMeta(elem) + "@.+$")
		var versions []string
		for _, entry := range entries {
			if entry.IsDir() && pattern.MatchString(entry.Name()) {
				versions = append(versions, entry.Name())
			}
		}
		if len(versions) > 0 {
			slices.SortFunc(versions, func(x, y string) int {
				return semver.Compare(moduleVersion(x), moduleVersion(y))
			})
			moduleDir := filepath.Join(pkgPath, versions[len(versions)-1])
			return filepath.Join(moduleDir, filepath.Join(dirs[i+1:]...)), nil
		}
		pkgPath = filepath.Join(pkgPath, elem)
	}

	return "", fmt.Errorf(
		`%w: "%v" not found in "%v". Please run following command.
  $ go get "%v"`,
		ErrPackageNotFound, importPath, filepath.Join(r.GOPATH, "pkg", "mod"), importPath,
	)
}

// moduleVersion strips the `<elem>@` prefix of a module cache directory.
func moduleVersion(dirName string) string {
	_, v, _ := strings.Cut(dirName, "@")
	return v
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Resolver

func (c Chain) Resolve(importPath string) (string, error) {
	var errs []error
	for _, r := range c {
		dir, err := r.Resolve(importPath)
		if err == nil {
			return dir, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%w: %s", ErrPackageNotFound, importPath)
	}
	return "", errors.Join(errs...)
}
