package key

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var ErrKeyNotFound = errors.New("private key file not found")

// ReadFile returns the raw contents of the key file at path.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrKeyNotFound
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}
	return raw, nil
}
