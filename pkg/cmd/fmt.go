package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// fmtRun holds the resolved options of one fmt invocation.
type fmtRun struct {
	cfg       *config.Config
	settings  *format.Settings
	opts      layout.Options
	writeBack bool
	dump      bool
	writer    io.Writer
}

// fmtCmd creates a CLI command for formatting Java source files, in the manner of
// gofmt: a single file or every matching file below a directory.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted source is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Path handling:
//   - File paths: Format the specified file directly
//   - Directory paths: Format every .java file matched by the include and exclude
//     patterns of the configuration, concurrently, printing in lexicographic order
//
// Files with syntax errors are still formatted: the regions the parser could not
// understand are copied verbatim.
//
// Examples:
//
//	# Format single file to stdout
//	javafmt fmt Foo.java
//
//	# Format all files in a directory tree in-place
//	javafmt fmt -w src/
//
//	# Reformat only bytes 120 to 480 of a file
//	javafmt fmt --range 120:480 Foo.java
//
//	# Override a style option
//	javafmt fmt --set METHOD_BRACE_STYLE=next_line Foo.java
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format Java files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "only reformat the byte range `start:end` of a single file",
			},
			&cli.BoolFlag{
				Name:  "legacy-chains",
				Usage: "use the legacy method call chain algorithm",
			},
			&cli.BoolFlag{
				Name:  "dump-blocks",
				Usage: "print the block tree of each file instead of formatting it",
			},
			setFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			conf, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}

			settings, err := loadSettings(cmd, conf)
			if err != nil {
				return err
			}

			run := &fmtRun{
				cfg:       conf,
				settings:  settings,
				writeBack: cmd.Bool("write"),
				dump:      cmd.Bool("dump-blocks"),
				writer:    cmd.Writer,
				opts:      layout.Options{Logger: slog.Default()},
			}

			if cmd.Bool("legacy-chains") {
				run.opts.ChainStyle = format.ChainLegacy
			}

			if cmd.IsSet("range") {
				r, err := parseRange(cmd.String("range"))
				if err != nil {
					return err
				}

				run.opts.Range = &r
			}

			return run.formatPath(ctx, cmd.Args().First())
		},
	}
}

// parseRange reads a "start:end" byte range.
func parseRange(value string) (syntax.TextRange, error) {
	from, to, ok := strings.Cut(value, ":")
	if !ok {
		return syntax.TextRange{}, errors.Errorf("invalid range %q, expected start:end", value)
	}

	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return syntax.TextRange{}, errors.Wrapf(err, "invalid range start %q", from)
	}

	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return syntax.TextRange{}, errors.Wrapf(err, "invalid range end %q", to)
	}

	if start < 0 || end < start {
		return syntax.TextRange{}, errors.Errorf("invalid range %q", value)
	}

	return syntax.NewRange(start, end), nil
}

// formatPath handles formatting of either a single file or directory recursively.
func (r *fmtRun) formatPath(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return r.formatFile(path)
	}

	if r.opts.Range != nil {
		return errors.New("--range requires a single file")
	}

	return r.formatDirectory(ctx, path)
}

// formatDirectory formats every matching file below dir. Files are formatted
// concurrently; output is written in lexicographic order once all of them succeeded.
func (r *fmtRun) formatDirectory(ctx context.Context, dir string) error {
	files, err := r.javaFiles(dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return errors.Errorf("no Java files found in directory: %s", dir)
	}

	results := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := r.process(file)
			if err != nil {
				return errors.Wrapf(err, "failed to format file: %s", file)
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if err := r.emit(out); err != nil {
			return err
		}
	}

	return nil
}

// javaFiles lists the .java files below dir selected by the configuration, in
// lexicographic order.
func (r *fmtRun) javaFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), consts.JavaExt) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		ok, err := r.cfg.Matches(rel)
		if err != nil {
			return err
		}

		if ok {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	return files, nil
}

// formatFile formats a single file and writes the result.
func (r *fmtRun) formatFile(path string) error {
	out, err := r.process(path)
	if err != nil {
		return err
	}

	return r.emit(out)
}

// process formats the file at path, writing it back in write mode. It returns what
// should be printed: the formatted text, the block dump or nothing.
func (r *fmtRun) process(path string) (string, error) {
	file, err := parser.ParseFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse file: %s", path)
	}

	if n := len(file.Errors); n > 0 {
		slog.Warn("Syntax errors left unformatted", "file", path, "errors", n, "first", file.Errors[0].Error())
	}

	if r.dump {
		var buf strings.Builder

		builder := format.New(r.settings, format.WithLogger(r.opts.Logger), format.WithChainStyle(r.opts.ChainStyle))
		if err := format.WriteDump(&buf, builder.Build(file)); err != nil {
			return "", err
		}

		return buf.String(), nil
	}

	formatted, err := layout.Format(file, r.settings, r.opts)
	if err != nil {
		return "", errors.Wrapf(err, "failed to format file: %s", path)
	}

	slog.Debug("File formatted", "file", path, "changed", formatted != file.Source)

	if !r.writeBack {
		return formatted, nil
	}

	if formatted != file.Source {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return "", errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	}

	return "", nil
}

func (r *fmtRun) emit(out string) error {
	if out == "" {
		return nil
	}

	if _, err := fmt.Fprint(r.writer, out); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
