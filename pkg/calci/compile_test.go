package calci

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileWritesGeneratedSource(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.c")

	err := Compile("print \"hi\"\n", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "#include <stdio.h>\nint main(void){\nprintf(\"hi\");\nreturn 0;\n}\n", string(data))
}

func TestMissingFileMessage(t *testing.T) {
	assert.Equal(t, "Cannot open file foo.calci", MissingFileMessage("foo.calci"))
}
