package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "privatekey.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadKeys(t *testing.T) {
	t.Parallel()

	path := writeKeyFile(t, "  aaa  \n\nbbb\r\n\t\n ccc\n")
	keys, err := LoadKeys(path)
	require.NoError(t, err)
	require.Equal(t, []string{"aaa", "bbb", "ccc"}, keys)
}

func TestLoadKeysKeepsDuplicates(t *testing.T) {
	t.Parallel()

	keys, err := LoadKeys(writeKeyFile(t, "k\nk\n"))
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func TestLoadKeysNoTrailingNewline(t *testing.T) {
	t.Parallel()

	keys, err := LoadKeys(writeKeyFile(t, "only"))
	require.NoError(t, err)
	require.Equal(t, []string{"only"}, keys)
}

func TestLoadKeysMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadKeys(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, ErrKeyFileNotFound)
}

func TestLoadKeysOnlyBlankLines(t *testing.T) {
	t.Parallel()

	_, err := LoadKeys(writeKeyFile(t, "\n   \n\t\n"))
	require.ErrorIs(t, err, ErrEmptyKeySet)

	_, err = LoadKeys(writeKeyFile(t, ""))
	require.ErrorIs(t, err, ErrEmptyKeySet)
}
