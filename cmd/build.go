package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ZacxDev/htmlgen/generator"
	"github.com/ZacxDev/htmlgen/utils"
)

// newPass returns one generation pass: a fresh config snapshot, every
// template rendered, the optional sitemap, then the report.
func newPass(gen *generator.Generator, opts Options, logger *slog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		start := time.Now()

		report, err := gen.Run(ctx)
		if err != nil {
			return err
		}

		if opts.Origin != "" {
			entries := make([]utils.SitemapEntry, 0, len(report.Written))
			for _, out := range report.Written {
				entries = append(entries, utils.SitemapEntry{Lang: out.Lang, Name: filepath.ToSlash(out.Name)})
			}
			sitemapPath := filepath.Join(gen.OutputDir(), "sitemap.xml")
			if err := utils.WriteSitemap(sitemapPath, opts.Origin, entries, time.Now()); err != nil {
				return err
			}
			logger.Info("generated", "path", sitemapPath)
		}

		logReport(logger, report, time.Since(start))
		return nil
	}
}

func logReport(logger *slog.Logger, report *generator.Report, elapsed time.Duration) {
	for _, skip := range report.Skipped {
		attrs := []any{"template", skip.Template, "reason", skip.Reason}
		if skip.Lang != "" {
			attrs = append(attrs, "lang", skip.Lang)
			logger.Warn("skipped", attrs...)
			continue
		}
		logger.Info("skipped", attrs...)
	}

	for _, w := range report.Warnings {
		attrs := []any{"template", w.Template, "kind", w.Kind, "ref", w.Ref}
		if w.Lang != "" {
			attrs = append(attrs, "lang", w.Lang)
		}
		logger.Warn("unresolved", attrs...)
	}

	logger.Info("generation complete",
		"written", len(report.Written),
		"skipped", len(report.Skipped),
		"warnings", len(report.Warnings),
		"duration", elapsed.Round(time.Millisecond))
}
