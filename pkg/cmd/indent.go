package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/urfave/cli/v3"
)

// indentCmd answers the editor question of where a line typed at some offset of a file
// should start. It prints the indent column and, when the new line joins an aligned
// group, the alignment column that wins over it.
//
// Example:
//
//	$ javafmt indent --offset 120 Foo.java
//	indent: 8
//	align: 16
func indentCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "indent",
		Usage:     "Print the indent of a line inserted at an offset",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "offset",
				Aliases:  []string{"o"},
				Usage:    "byte offset the new line is inserted at",
				Required: true,
			},
			setFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one file argument is required")
			}

			conf, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}

			settings, err := loadSettings(cmd, conf)
			if err != nil {
				return err
			}

			path := cmd.Args().First()

			file, err := parser.ParseFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to parse file: %s", path)
			}

			pos, err := layout.Indent(file, settings, int(cmd.Int("offset")))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "indent: %d\n", pos.Indent)
			if pos.Aligned {
				fmt.Fprintf(cmd.Writer, "align: %d\n", pos.Align)
			}

			return nil
		},
	}
}
