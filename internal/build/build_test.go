package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigParsesSidecarFile(t *testing.T) {
	dir := t.TempDir()
	contents := "cc: clang\nflags:\n  - -O2\n  - -Wall\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".calcirc.yaml"), []byte(contents), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "clang", cfg.CC)
	assert.Equal(t, []string{"-O2", "-Wall"}, cfg.Flags)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".calcirc.yaml"), []byte("cc: [unterminated"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestNewCompilerPrefersConfigThenEnvThenDefault(t *testing.T) {
	c := NewCompiler(Config{CC: "clang"})
	assert.Equal(t, "clang", c.CC)

	t.Setenv("CC", "gcc")
	c = NewCompiler(Config{})
	assert.Equal(t, "gcc", c.CC)

	t.Setenv("CC", "")
	c = NewCompiler(Config{})
	assert.Equal(t, defaultCC, c.CC)
}

func TestBuildSurfacesCompilerFailure(t *testing.T) {
	dir := t.TempDir()
	cFile := filepath.Join(dir, "out.c")
	require.NoError(t, os.WriteFile(cFile, []byte("int main(void){return 0;}"), 0o644))

	// "false" exits 1 without consuming its arguments, exercising the
	// non-zero exit path without depending on a real C toolchain.
	c := &Compiler{CC: "false"}
	err := c.Build(cFile, filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestBuildSucceedsWithStubCompiler(t *testing.T) {
	dir := t.TempDir()
	cFile := filepath.Join(dir, "out.c")
	require.NoError(t, os.WriteFile(cFile, []byte("int main(void){return 0;}"), 0o644))

	// "true" exits 0 without consuming its arguments, exercising the
	// success path and the concurrent stdout drain without depending on
	// a real C toolchain.
	c := &Compiler{CC: "true"}
	err := c.Build(cFile, filepath.Join(dir, "out"))
	assert.NoError(t, err)
}
