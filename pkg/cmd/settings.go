package cmd

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// settingsCmd prints the effective style: the defaults, overlaid by the settings file
// and the --set overrides. The output is a valid settings file.
//
// Examples:
//
//	# Start a settings file from the defaults
//	javafmt settings > javafmt.yaml
//
//	# Check what an override does, as TOML
//	javafmt settings --format toml --set INDENT_SIZE=2
func settingsCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Print the effective style settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format, yaml or toml",
				Value: "yaml",
				Validator: func(v string) error {
					if v != "yaml" && v != "toml" {
						return errors.Errorf("unsupported format %q, expected yaml or toml", v)
					}

					return nil
				},
			},
			setFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}

			settings, err := loadSettings(cmd, conf)
			if err != nil {
				return err
			}

			out := config.Config{Format: settings, Include: conf.Include, Exclude: conf.Exclude}

			if cmd.String("format") == "toml" {
				return errors.Wrap(toml.NewEncoder(cmd.Writer).Encode(out), "failed to encode settings")
			}

			enc := yaml.NewEncoder(cmd.Writer)
			enc.SetIndent(2)

			if err := enc.Encode(out); err != nil {
				return errors.Wrap(err, "failed to encode settings")
			}

			return errors.Wrap(enc.Close(), "failed to encode settings")
		},
	}
}
