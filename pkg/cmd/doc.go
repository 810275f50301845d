// Package cmd provides the CLI commands of javafmt.
//
// # Available Commands
//
//   - fmt: Format a Java file, or every Java file below a directory
//   - indent: Print the indent of a line inserted at a byte offset
//   - settings: Print the effective style settings as YAML or TOML
//
// # Command Structure
//
// Each command is implemented as a function returning a *cli.Command, following the
// urfave/cli/v3 pattern, and is registered with the application through the fx
// "commands" group (see Module).
//
// # Global Options
//
//   - --config, -c: The settings file (defaults to javafmt.yaml, env JAVAFMT_CONFIG)
//   - --verbose, -v: Log at debug level
//
// Every command that formats also accepts repeatable --set NAME=VALUE overrides, applied
// after the settings file.
//
// # Example Usage
//
//	javafmt fmt Foo.java                               # Print Foo.java formatted
//	javafmt fmt -w src/                                # Format a source tree in place
//	javafmt fmt --set INDENT_SIZE=2 Foo.java           # Override one option
//	javafmt indent --offset 120 Foo.java               # Ask for the indent at offset 120
//	javafmt settings --format toml > javafmt.toml      # Dump the effective settings
package cmd
