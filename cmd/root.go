package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ZacxDev/htmlgen/generator"
	"github.com/ZacxDev/htmlgen/utils"
)

var rootCmd = &cobra.Command{
	Use:   "htmlgen",
	Short: "htmlgen - expand HTML templates into one localized copy per language",
	Long: `htmlgen reads the HTML templates under --in, inlines their #include directives,
substitutes {{key}} translations for every language listed in the --json document and
writes each page to <out>/<lang>/<mapped filename>, rewriting local links to match.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd.Flags())
	if err != nil {
		return err
	}

	logger := utils.NewLogger(cmd.ErrOrStderr(), opts.LogLevel, opts.NoColor)

	gen, err := generator.New(generator.Options{
		InputDir:   opts.In,
		OutputDir:  opts.Out,
		ConfigPath: opts.JSON,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pass := newPass(gen, opts, logger)
	if err := pass(ctx); err != nil {
		if !opts.Blocking() {
			return err
		}
		logger.Error("generation failed", "error", err)
	}

	if !opts.Blocking() {
		return nil
	}

	group, ctx := errgroup.WithContext(ctx)
	if opts.Serve {
		group.Go(func() error {
			return serve(ctx, gen.OutputDir(), opts.Port, logger)
		})
	}
	if opts.Scan {
		group.Go(func() error {
			return scan(ctx, gen, opts, pass, logger)
		})
	}

	return group.Wait()
}

func init() {
	registerFlags(rootCmd.Flags())
}
