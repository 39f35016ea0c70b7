// Package file implements the canonical on-disk token cache: a single
// plaintext file holding the token on its first line. The file's
// modification time is the authoritative reference for token age.
package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zini/nella/pkg/tokencache"
)

// TokenFileName is the fixed cache file name, written to the current
// working directory. The format is shared with other Nella clients, so it
// must stay a bare single-line token.
const TokenFileName = ".nellatoken"

// Store is a file-backed token cache
type Store struct {
	path string
}

// Compile-time check that Store implements tokencache.Store
var _ tokencache.Store = (*Store)(nil)

// New creates a file store over TokenFileName in the current working directory
func New() *Store {
	return &Store{path: TokenFileName}
}

// NewWithPath creates a file store over an explicit path
func NewWithPath(path string) *Store {
	return &Store{path: path}
}

// Save writes the token via a temp-file-and-rename so a concurrent reader
// never observes a partial write. The rename also resets the file mtime,
// which restarts the age clock.
func (s *Store) Save(ctx context.Context, token string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, TokenFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp token file: %w", err)
	}

	if _, err := tmp.WriteString(token + "\n"); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp token file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace token file: %w", err)
	}

	return nil
}

// Load reads the first line of the token file and computes its age from the
// file modification time
func (s *Store) Load(ctx context.Context) (*tokencache.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, tokencache.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read token file: %w", err)
		}
		return nil, fmt.Errorf("%w: empty token file", tokencache.ErrTokenCorrupted)
	}
	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return nil, fmt.Errorf("%w: blank token line", tokencache.ErrTokenCorrupted)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat token file: %w", err)
	}

	return &tokencache.Entry{
		Token: token,
		Age:   time.Since(info.ModTime()),
	}, nil
}

// Invalidate removes the token file. A missing file is not an error.
func (s *Store) Invalidate(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
