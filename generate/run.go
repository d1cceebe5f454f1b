package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/visit/errors"
	"github.com/wippyai/visit/generate/internal/scan"
	"github.com/wippyai/visit/generate/internal/witsrc"
)

// DefaultOutput is the file name go jobs write when no output is set.
const DefaultOutput = "visit_gen.go"

// Options control Run.
type Options struct {
	// DryRun renders files without writing them.
	DryRun bool
}

// File is one rendered output.
type File struct {
	Path    string
	Content []byte
	Sums    []string
}

// Plan is a resolved job: what to render and where it goes.
type Plan struct {
	Job     Job
	Package string
	Output  string
	Sums    []Sum

	minArity, maxArity int
}

// Resolve loads the sources of job. Relative paths are taken from dir.
func Resolve(ctx context.Context, dir string, job Job) (*Plan, error) {
	plan := &Plan{Job: job, Package: job.Package}
	if job.Output != "" {
		plan.Output = resolvePath(dir, job.Output)
	}

	switch job.Source {
	case SourceGo:
		pkgs, err := scan.Load(ctx, dir, job.Path)
		if err != nil {
			return nil, err
		}
		if len(pkgs) > 1 {
			return nil, errors.Unsupported(errors.PhaseScan,
				fmt.Sprintf("pattern %q matched %d packages, want 1", job.Path, len(pkgs)))
		}
		pkg := pkgs[0]
		sums, err := scan.Sums(pkg.Types, job.Types)
		if err != nil {
			return nil, err
		}
		plan.Package = pkg.Types.Name()
		plan.Sums = keepValid(sums, len(job.Types) > 0)
		if plan.Output == "" {
			plan.Output = filepath.Join(pkg.Dir, DefaultOutput)
		}

	case SourceWIT:
		res, err := witsrc.Load(resolvePath(dir, job.Path))
		if err != nil {
			return nil, err
		}
		sums, err := witsrc.Sums(res, job.Package, job.Types)
		if err != nil {
			return nil, err
		}
		plan.Sums = keepValid(sums, len(job.Types) > 0)

	case SourceArities:
		lo, hi, err := ParseArities(job.Arities)
		if err != nil {
			return nil, err
		}
		plan.minArity, plan.maxArity = lo, hi
		return plan, nil

	default:
		return nil, errors.InvalidInput(errors.PhaseConfig, []string{"source"}, "unknown source "+job.Source)
	}

	if len(plan.Sums) == 0 {
		return nil, errors.NotFound(errors.PhaseScan, "sum in", job.Path)
	}
	for _, s := range plan.Sums {
		Logger().Debug("sum discovered",
			zap.String("sum", s.Name),
			zap.Stringer("form", s.Form),
			zap.Int("alternatives", len(s.Alternatives)))
	}
	return plan, nil
}

// keepValid drops sums that cannot be dispatched. Explicitly requested sums
// are kept so that Render reports why they fail.
func keepValid(sums []Sum, requested bool) []Sum {
	if requested {
		return sums
	}
	out := sums[:0]
	for _, s := range sums {
		if err := s.Validate(); err != nil {
			Logger().Debug("skipping sum", zap.String("sum", s.Name), zap.Error(err))
			continue
		}
		out = append(out, s)
	}
	return out
}

// Only returns a copy of p restricted to the named sum.
func (p *Plan) Only(name string) (*Plan, error) {
	for _, s := range p.Sums {
		if s.Name == name {
			cp := *p
			cp.Sums = []Sum{s}
			return &cp, nil
		}
	}
	return nil, errors.NotFound(errors.PhaseGenerate, "sum", name)
}

// Render produces the file of p without writing it.
func (p *Plan) Render() (File, error) {
	f := File{Path: p.Output}
	var err error
	if p.Job.Source == SourceArities {
		f.Content, err = RenderArities(p.Package, p.minArity, p.maxArity)
		for n := p.minArity; n <= p.maxArity; n++ {
			f.Sums = append(f.Sums, fmt.Sprintf("Of%d", n))
		}
	} else {
		f.Content, err = Render(p.Package, p.Sums)
		for _, s := range p.Sums {
			f.Sums = append(f.Sums, s.Name)
		}
	}
	if err != nil {
		return File{}, err
	}
	return f, nil
}

// Write stores f on disk, creating parent directories.
func Write(f File) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return errors.Wrap(errors.PhaseWrite, errors.KindInvalidData, err, "create directory for "+f.Path)
	}
	if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
		return errors.Wrap(errors.PhaseWrite, errors.KindInvalidData, err, "write "+f.Path)
	}
	Logger().Info("generated", zap.String("path", f.Path), zap.Strings("sums", f.Sums))
	return nil
}

// Run resolves, renders and writes every job of cfg. Failing jobs are
// reported together; the files of successful jobs are still returned.
func Run(ctx context.Context, cfg *Config, opts Options) ([]File, error) {
	var (
		files []File
		errs  error
	)
	for i, job := range cfg.Jobs {
		if err := ctx.Err(); err != nil {
			return files, multierr.Append(errs, err)
		}
		f, err := runJob(ctx, cfg.Dir, job, opts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("jobs[%d] (%s %s): %w", i, job.Source, job.Path, err))
			continue
		}
		files = append(files, f)
	}
	return files, errs
}

func runJob(ctx context.Context, dir string, job Job, opts Options) (File, error) {
	plan, err := Resolve(ctx, dir, job)
	if err != nil {
		return File{}, err
	}
	f, err := plan.Render()
	if err != nil {
		return File{}, err
	}
	if !opts.DryRun {
		if err := Write(f); err != nil {
			return File{}, err
		}
	}
	return f, nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}
