package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

// ProjectFixture is a temp directory holding Java sources and, optionally, a settings file.
type ProjectFixture struct {
	Dir    string
	Config *config.Config
	t      *testing.T
}

// JavaProject creates an isolated temp directory with the given files, keyed by slash
// separated paths relative to the directory.
func JavaProject(t *testing.T, files map[string]string) *ProjectFixture {
	t.Helper()

	p := &ProjectFixture{Dir: t.TempDir(), t: t}
	for rel, content := range files {
		p.Write(rel, content)
	}

	return p
}

// Path returns the absolute path of rel.
func (p *ProjectFixture) Path(rel string) string {
	return filepath.Join(p.Dir, filepath.FromSlash(rel))
}

// Write creates or replaces the file at rel.
func (p *ProjectFixture) Write(rel, content string) {
	p.t.Helper()

	path := p.Path(rel)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(p.t, os.WriteFile(path, []byte(content), consts.ModeFile))
}

// Read returns the content of the file at rel.
func (p *ProjectFixture) Read(rel string) string {
	p.t.Helper()

	content, err := os.ReadFile(p.Path(rel))
	require.NoError(p.t, err, "Failed to read file: %s", rel)

	return string(content)
}

// WithConfig writes javafmt.yaml into the project and loads it into Config.
func (p *ProjectFixture) WithConfig(yaml string) *ProjectFixture {
	p.t.Helper()

	p.Write(consts.DefaultConfigFile, yaml)

	cfg, err := config.LoadConfigFile(p.Path(consts.DefaultConfigFile))
	require.NoError(p.t, err, "Failed to load config file")

	p.Config = cfg

	return p
}
