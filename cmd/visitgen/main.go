package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/visit/generate"
	"github.com/wippyai/visit/variant"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to visitgen.yaml (default: search upwards from .)")
		source      = flag.String("source", generate.SourceGo, "Source of sums: go or wit")
		path        = flag.String("path", "", "Package pattern (go) or WIT JSON file (wit)")
		pkg         = flag.String("pkg", "", "Package name of the generated file")
		typeList    = flag.String("types", "", "Sums to generate (comma-separated, default: all)")
		output      = flag.String("o", "", "Output file")
		arities     = flag.String("arities", "", "Generate generic unions for a min:max arity range")
		dryRun      = flag.Bool("dry-run", false, "Render without writing files")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	variant.SetLogger(logger)
	generate.SetLogger(logger)

	cfg, err := buildConfig(*configFile, *source, *path, *pkg, *typeList, *output, *arities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: visitgen [-config visitgen.yaml]")
		fmt.Fprintln(os.Stderr, "       visitgen -path ./shapes [-types Shape] [-o file.go]")
		fmt.Fprintln(os.Stderr, "       visitgen -source wit -path shapes.wit.json -pkg shapes -o shapes/shape_visit.go")
		fmt.Fprintln(os.Stderr, "       visitgen -arities 2:10 -pkg variant -o of_gen.go")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *interactive {
		if err := runInteractive(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	files, err := generate.Run(ctx, cfg, generate.Options{DryRun: *dryRun})
	report(files, err, *dryRun)
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// buildConfig turns the flags into a one-job config, or loads visitgen.yaml
// when neither -path nor -arities is given.
func buildConfig(configFile, source, path, pkg, typeList, output, arities string) (*generate.Config, error) {
	var job generate.Job
	switch {
	case arities != "":
		job = generate.Job{Source: generate.SourceArities, Package: pkg, Output: output, Arities: arities}
	case path != "":
		job = generate.Job{Source: source, Path: path, Package: pkg, Output: output}
		if typeList != "" {
			job.Types = strings.Split(typeList, ",")
		}
	default:
		if configFile == "" {
			found, err := generate.FindConfig(".")
			if err != nil {
				return nil, err
			}
			if found == "" {
				return nil, fmt.Errorf("no %s found; pass -path or -arities", generate.ConfigNames[0])
			}
			configFile = found
		}
		return generate.LoadConfig(configFile)
	}

	cfg := &generate.Config{Jobs: []generate.Job{job}}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func report(files []generate.File, err error, dryRun bool) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	verb := "wrote"
	if dryRun {
		verb = "rendered"
	}
	for _, f := range files {
		fmt.Printf("%s %s (%s)\n", render(okStyle, verb), render(pathStyle, f.Path), strings.Join(f.Sums, ", "))
	}
	for _, e := range multierr.Errors(err) {
		fmt.Fprintf(os.Stderr, "%s %v\n", render(failStyle, "failed"), e)
	}
}
