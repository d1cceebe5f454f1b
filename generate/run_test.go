package generate

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/wippyai/visit/errors"
)

func TestRun_Arities(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Dir: dir,
		Jobs: []Job{{
			Source:  SourceArities,
			Package: "unions",
			Output:  "internal/unions/of_gen.go",
			Arities: "2:3",
		}},
	}

	files, err := Run(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}

	f := files[0]
	wantPath := filepath.Join(dir, "internal", "unions", "of_gen.go")
	if f.Path != wantPath {
		t.Errorf("Path = %q, want %q", f.Path, wantPath)
	}
	if got := strings.Join(f.Sums, ","); got != "Of2,Of3" {
		t.Errorf("Sums = %q, want Of2,Of3", got)
	}

	onDisk, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(onDisk, f.Content) {
		t.Error("written file differs from rendered content")
	}
	if !bytes.HasPrefix(onDisk, []byte("// Code generated by visitgen -arities 2:3.")) {
		t.Errorf("unexpected header: %.60s", onDisk)
	}
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Dir: dir,
		Jobs: []Job{{
			Source:  SourceArities,
			Package: "unions",
			Output:  "of_gen.go",
			Arities: "2:2",
		}},
	}

	files, err := Run(context.Background(), cfg, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(files) != 1 || len(files[0].Content) == 0 {
		t.Fatalf("files = %+v", files)
	}
	if _, err := os.Stat(filepath.Join(dir, "of_gen.go")); !os.IsNotExist(err) {
		t.Errorf("dry run wrote a file: %v", err)
	}
}

func TestRun_CombinesJobErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Dir: dir,
		Jobs: []Job{
			{Source: SourceArities, Package: "unions", Output: "of_gen.go", Arities: "2:2"},
			{Source: SourceWIT, Path: "missing.wit.json", Package: "shapes", Output: "shapes.go"},
			{Source: SourceArities, Package: "unions", Output: "bad.go", Arities: "0:1"},
		},
	}

	files, err := Run(context.Background(), cfg, Options{DryRun: true})
	if err == nil {
		t.Fatal("Run() should fail")
	}
	if len(files) != 1 {
		t.Errorf("successful jobs should still produce files, got %d", len(files))
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	if !strings.HasPrefix(errs[0].Error(), "jobs[1] (wit missing.wit.json)") {
		t.Errorf("first error = %v", errs[0])
	}
	if !strings.HasPrefix(errs[1].Error(), "jobs[2] (arities )") {
		t.Errorf("second error = %v", errs[1])
	}

	var e *errors.Error
	if !stderrors.As(errs[1], &e) || e.Phase != errors.PhaseConfig {
		t.Errorf("arity error should unwrap to a config error: %v", errs[1])
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &Config{Jobs: []Job{{Source: SourceArities, Package: "u", Output: "o.go", Arities: "2:2"}}}
	_, err := Run(ctx, cfg, Options{DryRun: true})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestResolve_UnknownSource(t *testing.T) {
	_, err := Resolve(context.Background(), "", Job{Source: "proto"})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput}) {
		t.Errorf("Resolve() = %v, want config invalid_input", err)
	}
}

func TestPlan_Only(t *testing.T) {
	plan := &Plan{
		Package: "shapes",
		Output:  "shapes_visit.go",
		Sums:    []Sum{interfaceSum, structSum},
	}
	plan.Sums[1].Name = "Figure"

	only, err := plan.Only("Figure")
	if err != nil {
		t.Fatalf("Only() error = %v", err)
	}
	if len(only.Sums) != 1 || only.Sums[0].Name != "Figure" {
		t.Errorf("Only() sums = %+v", only.Sums)
	}
	if len(plan.Sums) != 2 {
		t.Error("Only() modified the original plan")
	}

	if _, err := plan.Only("Missing"); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindNotFound}) {
		t.Errorf("Only(Missing) = %v, want not_found", err)
	}
}

func TestPlan_Render(t *testing.T) {
	plan := &Plan{Package: "shapes", Output: "shapes_visit.go", Sums: []Sum{interfaceSum}}
	f, err := plan.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if f.Path != "shapes_visit.go" || len(f.Sums) != 1 || f.Sums[0] != "Shape" {
		t.Errorf("file = %+v", f)
	}
}

func TestKeepValid(t *testing.T) {
	invalid := Sum{Name: "Lonely", Alternatives: []Alternative{{Name: "Only", GoType: "int"}}}

	got := keepValid([]Sum{interfaceSum, invalid}, false)
	if len(got) != 1 || got[0].Name != "Shape" {
		t.Errorf("keepValid(unrequested) = %+v", got)
	}

	got = keepValid([]Sum{interfaceSum, invalid}, true)
	if len(got) != 2 {
		t.Errorf("requested sums must be kept, got %d", len(got))
	}
}
