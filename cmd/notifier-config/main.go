package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/jcgay/maven-notifier/internal/conf"
	"github.com/jcgay/maven-notifier/internal/l10n"
)

const (
	cliConfig     = "config"
	cliNotifyWith = "notify-with"
	cliOSName     = "os-name"
	cliFormat     = "format"
	cliLogLevel   = "log-level"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	formats := make([]string, 0, len(conf.Formats()))
	for _, f := range conf.Formats() {
		formats = append(formats, string(f))
	}

	return &cli.App{
		Name:  "notifier-config",
		Usage: l10n.T("resolve and print the build notifier configuration"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    cliConfig,
				Aliases: []string{"c"},
				Usage:   l10n.T("read configuration from `FILE` instead of the file next to the executable"),
			},
			&cli.StringFlag{
				Name:    cliNotifyWith,
				EnvVars: []string{conf.NotifyWithKey},
				Usage:   l10n.T("use notifier `IMPLEMENTATION` regardless of the configuration file"),
			},
			&cli.StringFlag{
				Name:  cliOSName,
				Value: conf.HostOSName(),
				Usage: l10n.T("compute defaults as if running on operating system `NAME`"),
			},
			&cli.StringFlag{
				Name:    cliFormat,
				Aliases: []string{"f"},
				Value:   string(conf.FormatProperties),
				Usage:   l10n.T("output format (%v)", strings.Join(formats, ", ")),
			},
			&cli.StringFlag{
				Name:  cliLogLevel,
				Value: "error",
				Usage: l10n.T("set log `LEVEL`"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "keys",
				Usage:  l10n.T("list configuration keys and their defaults"),
				Action: keysAction,
			},
		},
		Before: beforeAction,
		Action: resolveAction,
	}
}

func beforeAction(c *cli.Context) error {
	level, err := log.ParseLevel(c.String(cliLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String(cliLogLevel), err)
	}
	log.SetFlags(0)
	log.SetLevel(level)

	slogLevel := slog.LevelError
	switch {
	case level >= log.LevelDebug:
		slogLevel = slog.LevelDebug
	case level >= log.LevelInfo:
		slogLevel = slog.LevelInfo
	case level >= log.LevelWarn:
		slogLevel = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slogLevel})))

	return nil
}

func newResolver(c *cli.Context) *conf.Resolver {
	r := &conf.Resolver{
		Source: &conf.ConfigSource{Path: c.String(cliConfig)},
		Table:  conf.NewTable(c.String(cliOSName)),
	}
	if c.IsSet(cliNotifyWith) {
		notifyWith := c.String(cliNotifyWith)
		r.NotifyWith = &notifyWith
	}
	return r
}

func resolveAction(c *cli.Context) error {
	res, err := newResolver(c).Resolve()
	if err != nil {
		return fmt.Errorf("cannot resolve configuration: %w", err)
	}

	if res.Fallback != nil {
		log.Infof("using default configuration: %v", res.Fallback)
	} else {
		log.Debugf("read configuration from %v", res.Path)
	}

	return conf.Encode(c.App.Writer, res.Config, conf.Format(c.String(cliFormat)))
}

func keysAction(c *cli.Context) error {
	table := conf.NewTable(c.String(cliOSName))
	return writeKeys(c.App.Writer, table)
}

func writeKeys(w io.Writer, table *conf.Table) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "%v\t%v\n", l10n.T("KEY"), l10n.T("DEFAULT"))
	for _, p := range conf.Properties() {
		def := table.Default(p)
		if p.Computed() {
			def = l10n.T("%v (computed for %v)", def, table.OSName())
		} else if def == "" {
			def = l10n.T("(unset)")
		}
		fmt.Fprintf(tw, "%v\t%v\n", p.Key(), def)
	}
	return tw.Flush()
}
