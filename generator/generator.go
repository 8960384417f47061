package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"

	"github.com/ZacxDev/htmlgen/config"
	"github.com/ZacxDev/htmlgen/expand"
)

// WriteError is fatal for the generation pass that hits it.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type Options struct {
	InputDir   string
	OutputDir  string
	ConfigPath string
	Logger     *slog.Logger
}

// Generator routes every registered template to one output file per
// language: <output>/<lang>/<files_mapping[template][lang]>.
type Generator struct {
	in         string
	out        string
	configPath string
	logger     *slog.Logger
}

func New(opts Options) (*Generator, error) {
	in, err := filepath.Abs(opts.InputDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	out, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// Generated pages would be picked up as templates on the next pass.
	if in == out {
		return nil, errors.Errorf("output directory %s must differ from the input directory", out)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		in:         in,
		out:        out,
		configPath: opts.ConfigPath,
		logger:     logger,
	}, nil
}

func (g *Generator) InputDir() string  { return g.in }
func (g *Generator) OutputDir() string { return g.out }

// Run performs one full pass with a freshly loaded configuration document.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	doc, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, doc)
}

// Generate performs one pass against doc. Per-template problems are recorded
// in the report; only write failures and cancellation stop the pass.
func (g *Generator) Generate(ctx context.Context, doc *config.Document) (*Report, error) {
	templates, err := Discover(g.in, g.out)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, path := range templates {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}
		if err := g.generate(path, doc, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (g *Generator) generate(path string, doc *config.Document, report *Report) error {
	name := filepath.Base(path)
	rel := g.relative(path)

	if !doc.Mapping.Has(name) {
		g.logger.Debug("skipping template", "template", rel, "reason", ReasonUnmapped)
		report.Skipped = append(report.Skipped, Skip{Template: rel, Reason: ReasonUnmapped})
		return nil
	}

	page, err := expand.LoadPage(path)
	if err != nil {
		g.logger.Error("skipping template", "template", rel, "reason", ReasonUnreadable, "error", err)
		report.Skipped = append(report.Skipped, Skip{Template: rel, Reason: ReasonUnreadable})
		return nil
	}

	for _, missing := range page.Missing {
		g.warn(report, Warning{Template: rel, Kind: missing.Kind, Ref: missing.Ref})
	}

	for _, lang := range doc.Languages() {
		outName, ok := doc.Mapping.Output(name, lang)
		if !ok {
			g.logger.Debug("skipping language", "template", rel, "lang", lang, "reason", ReasonNoLanguage)
			report.Skipped = append(report.Skipped, Skip{Template: rel, Lang: lang, Reason: ReasonNoLanguage})
			continue
		}

		res := page.Render(lang, doc)
		for _, u := range res.Unresolved {
			g.warn(report, Warning{Template: rel, Lang: lang, Kind: u.Kind, Ref: u.Ref})
		}

		outPath := filepath.Join(g.out, lang, outName)
		if err := writeOutput(outPath, res.Text); err != nil {
			return err
		}

		g.logger.Info("generated", "template", rel, "lang", lang, "path", outPath)
		report.Written = append(report.Written, Output{
			Template: rel,
			Lang:     lang,
			Name:     outName,
			Path:     outPath,
		})
	}

	return nil
}

func (g *Generator) warn(report *Report, w Warning) {
	attrs := []any{"template", w.Template, "kind", w.Kind, "ref", w.Ref}
	if w.Lang != "" {
		attrs = append(attrs, "lang", w.Lang)
	}
	g.logger.Debug("unresolved reference", attrs...)
	report.Warnings = append(report.Warnings, w)
}

func (g *Generator) relative(path string) string {
	rel, err := filepath.Rel(g.in, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// writeOutput replaces path through a temporary file and rename so the
// static server never reads a half-written page.
func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(path, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
