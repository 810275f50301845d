package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Logger     *log.Logger `optional:"true"`
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the javafmt CLI application with the given version and
// command-line arguments once the fx application starts.
//
// Global Flags:
//   - --config, -c: The settings file (defaults to javafmt.yaml, env JAVAFMT_CONFIG)
//   - --verbose, -v: Log at debug level
//
// Example usage:
//
//	javafmt fmt -w src/
//	javafmt --config style.toml fmt Foo.java
//	javafmt indent --offset 120 Foo.java
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "javafmt",
		Usage: "Format Java source files",
		Description: `javafmt reformats Java source following the IntelliJ IDEA code style
rules. Every option of the style can be set in javafmt.yaml (or javafmt.toml)
or overridden on the command line.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the javafmt settings file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") && p.Logger != nil {
				p.Logger.SetLevel(log.DebugLevel)
			}

			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// setFlag is shared by every command that formats: repeatable style overrides.
func setFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "set",
		Usage: "override a style option, e.g. --set SPACE_BEFORE_IF_PARENTHESES=false",
	}
}

// loadConfig returns the configuration named by --config when it was given explicitly,
// cfg when it was loaded at startup and the defaults otherwise.
func loadConfig(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	if cmd.IsSet("config") {
		return config.LoadConfigFile(cmd.String("config"))
	}

	if cfg == nil {
		return config.Default(), nil
	}

	return cfg, nil
}

// loadSettings resolves the effective style: the configuration's settings with the
// --set overrides applied on a copy.
func loadSettings(cmd *cli.Command, cfg *config.Config) (*format.Settings, error) {
	s := cfg.Settings().Clone()

	if err := config.Apply(s, cmd.StringSlice("set")...); err != nil {
		return nil, errors.Wrap(err, "invalid --set")
	}

	return s, nil
}
