package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the settings file looked up in the working directory
	DefaultConfigFile = "javafmt.yaml"

	// DefaultTOMLConfigFile is used when no DefaultConfigFile exists
	DefaultTOMLConfigFile = "javafmt.toml"

	// ConfigEnvVar overrides the --config flag
	ConfigEnvVar = "JAVAFMT_CONFIG"

	// JavaExt is the extension of the files fmt picks up in directories
	JavaExt = ".java"

	// DefaultInclude selects every Java file below a directory
	DefaultInclude = "**/*" + JavaExt
)
