package cmd

import (
	"context"
	"log/slog"

	"github.com/ZacxDev/htmlgen/generator"
	"github.com/ZacxDev/htmlgen/watch"
)

func scan(ctx context.Context, gen *generator.Generator, opts Options, pass func(context.Context) error, logger *slog.Logger) error {
	w, err := watch.New(watch.Options{
		Root:    gen.InputDir(),
		Exclude: gen.OutputDir(),
		Files:   []string{opts.JSON},
		Window:  opts.Debounce,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return w.Run(ctx, pass)
}
