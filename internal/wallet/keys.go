package wallet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	ErrKeyFileNotFound = errors.New("key file not found")
	ErrEmptyKeySet     = errors.New("key file contains no keys")
)

// LoadKeys returns the trimmed, non-blank lines of the file at path in file order.
// Keys are not validated here: a malformed key fails only its own wallet.
func LoadKeys(path string) ([]string, error) {
	c, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	var keys []string
	for _, line := range strings.Split(string(c), "\n") {
		if key := strings.TrimSpace(line); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyKeySet, path)
	}
	return keys, nil
}
