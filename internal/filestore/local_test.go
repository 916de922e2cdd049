package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesContent(t *testing.T) {
	fs, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	path, err := fs.Save("lead_1_20260831_120000.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fs.Dir(), "lead_1_20260831_120000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestRemoveToleratesMissingFile(t *testing.T) {
	fs, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = fs.Remove(filepath.Join(fs.Dir(), "never_written.pdf"))
	assert.NoError(t, err)
}

func TestSaveThenRemove(t *testing.T) {
	fs, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	path, err := fs.Save("order_2_20260831_120000.bin", strings.NewReader("payload"))
	require.NoError(t, err)

	require.NoError(t, fs.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewLocalCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")

	_, err := NewLocal(base)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
