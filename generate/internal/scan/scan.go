// Package scan discovers sealed-interface sums in Go packages.
//
// A sum is an interface declaring at least one unexported method. Its
// alternatives are the named non-interface types of the same package whose
// value or pointer method set implements it, in declaration order.
package scan

import (
	"context"
	"fmt"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/wippyai/visit/errors"
	"github.com/wippyai/visit/generate/internal/model"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Package is a loaded Go package ready for scanning.
type Package struct {
	Types *types.Package
	Dir   string
}

// Load type-checks the packages matching patterns, resolved relative to dir.
func Load(ctx context.Context, dir string, patterns ...string) ([]Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Load(fmt.Sprintf("load %s", strings.Join(patterns, " ")), err)
	}

	var msgs []string
	out := make([]Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
		if pkg.Types == nil {
			continue
		}
		p := Package{Types: pkg.Types, Dir: dir}
		if len(pkg.GoFiles) > 0 {
			p.Dir = filepath.Dir(pkg.GoFiles[0])
		}
		out = append(out, p)
	}

	if len(msgs) > 0 {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Detail("package errors:\n  %s", strings.Join(msgs, "\n  ")).
			Build()
	}
	if len(out) == 0 {
		return nil, errors.NotFound(errors.PhaseLoad, "package", strings.Join(patterns, " "))
	}
	return out, nil
}

// Sums returns the sealed-interface sums declared in pkg. When only is
// non-empty, just those interfaces are returned and each must exist.
func Sums(pkg *types.Package, only []string) ([]model.Sum, error) {
	scope := pkg.Scope()
	candidates := typeNames(scope)

	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}
	found := make(map[string]bool, len(only))

	var sums []model.Sum
	for _, obj := range candidates {
		if len(want) > 0 && !want[obj.Name()] {
			continue
		}
		iface, ok := sealedInterface(obj)
		if !ok {
			if want[obj.Name()] {
				e := errors.TypeMismatch(errors.PhaseScan, []string{pkg.Name(), obj.Name()}, obj.Type().String(), "")
				e.Detail = "not a sealed interface"
				return nil, e
			}
			continue
		}
		found[obj.Name()] = true

		sum := model.Sum{
			Name:    obj.Name(),
			Package: pkg.Name(),
			Source:  pkg.Path(),
			Form:    model.FormInterface,
		}
		for _, alt := range candidates {
			if goType, ok := implements(alt, iface); ok {
				sum.Alternatives = append(sum.Alternatives, model.Alternative{
					Name:   model.Export(alt.Name()),
					GoType: goType,
				})
			}
		}
		sums = append(sums, sum)
	}

	var missing []string
	for _, name := range only {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.NotFound(errors.PhaseScan, "sealed interface", pkg.Name()+"."+missing[0])
	}
	return sums, nil
}

// typeNames lists the non-generic named types of scope in declaration order.
func typeNames(scope *types.Scope) []*types.TypeName {
	var out []*types.TypeName
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}
		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos() < out[j].Pos() })
	return out
}

func sealedInterface(obj *types.TypeName) (*types.Interface, bool) {
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok || !iface.IsMethodSet() {
		return nil, false
	}
	for i := 0; i < iface.NumMethods(); i++ {
		if !iface.Method(i).Exported() {
			return iface, true
		}
	}
	return nil, false
}

// implements returns the Go spelling of the alternative (T or *T) if obj
// belongs to the sum described by iface.
func implements(obj *types.TypeName, iface *types.Interface) (string, bool) {
	t := obj.Type()
	if types.IsInterface(t) {
		return "", false
	}
	if types.Implements(t, iface) {
		return obj.Name(), true
	}
	if types.Implements(types.NewPointer(t), iface) {
		return "*" + obj.Name(), true
	}
	return "", false
}
