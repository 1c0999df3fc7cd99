package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo("testdata/../main.c")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(full))
	assert.Equal(t, "main.c", filepath.Base(full))
	assert.Equal(t, filepath.Dir(full), dir)
}

func TestReadSource(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "ret.c")
	require.NoError(t, os.WriteFile(path, []byte("int main(void){return 2;}\n"), 0o644))

	src, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, tmp, src.Dir)
	assert.Equal(t, "int main(void){return 2;}\n", src.Contents)
}

func TestReadSourceErrors(t *testing.T) {
	tmp := t.TempDir()

	_, err := ReadSource(filepath.Join(tmp, "missing.c"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))

	_, err = ReadSource(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
