package cmd

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/ZacxDev/htmlgen/watch"
)

// Options can come from HTMLGEN_* environment variables; flags set on the
// command line take precedence.
type Options struct {
	In       string        `env:"HTMLGEN_IN"`
	Out      string        `env:"HTMLGEN_OUT"`
	JSON     string        `env:"HTMLGEN_JSON"`
	Serve    bool          `env:"HTMLGEN_SERVE"`
	Scan     bool          `env:"HTMLGEN_SCAN"`
	Port     string        `env:"HTMLGEN_PORT" envDefault:"9010"`
	Origin   string        `env:"HTMLGEN_ORIGIN"`
	LogLevel string        `env:"HTMLGEN_LOG_LEVEL" envDefault:"info"`
	NoColor  bool          `env:"HTMLGEN_NO_COLOR"`
	Debounce time.Duration `env:"HTMLGEN_DEBOUNCE" envDefault:"300ms"`
}

func resolveOptions(flags *pflag.FlagSet) (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return opts, errors.Wrap(err, "reading environment")
	}

	var err error
	str := func(name string, dst *string) {
		if err == nil && flags.Changed(name) {
			*dst, err = flags.GetString(name)
		}
	}
	boolean := func(name string, dst *bool) {
		if err == nil && flags.Changed(name) {
			*dst, err = flags.GetBool(name)
		}
	}

	str("in", &opts.In)
	str("out", &opts.Out)
	str("json", &opts.JSON)
	boolean("serve", &opts.Serve)
	boolean("scan", &opts.Scan)
	str("port", &opts.Port)
	str("origin", &opts.Origin)
	str("log-level", &opts.LogLevel)
	boolean("no-color", &opts.NoColor)
	if err == nil && flags.Changed("debounce") {
		opts.Debounce, err = flags.GetDuration("debounce")
	}
	if err == nil && flags.Changed("serv") {
		var serv bool
		if serv, err = flags.GetBool("serv"); serv {
			opts.Serve = true
		}
	}
	if err != nil {
		return opts, errors.WithStack(err)
	}

	required := []struct{ name, value string }{
		{"in", opts.In},
		{"out", opts.Out},
		{"json", opts.JSON},
	}
	for _, r := range required {
		if r.value == "" {
			return opts, errors.Errorf("--%s is required", r.name)
		}
	}

	return opts, nil
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("in", "", "[REQUIRED] root of the template tree")
	flags.String("out", "", "[REQUIRED] root of the generated output tree")
	flags.String("json", "", "[REQUIRED] configuration document (languages, files_mapping, translations)")
	flags.Bool("serve", false, "serve the output directory over HTTP")
	flags.Bool("serv", false, "alias for --serve")
	flags.Bool("scan", false, "watch the template tree and regenerate on changes")
	flags.StringP("port", "p", "9010", "port for --serve")
	flags.String("origin", "", "site origin; when set, a sitemap.xml is written to the output root")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Bool("no-color", false, "disable colored log output")
	flags.Duration("debounce", watch.DefaultWindow, "quiet period before a batch of changes triggers a pass")

	_ = flags.MarkHidden("serv")
}

// Blocking reports whether the process keeps running after the first pass.
func (o Options) Blocking() bool {
	return o.Serve || o.Scan
}
