package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Store keeps uploaded blobs on a filesystem rooted at the upload directory.
// Paths handed out by Save are relative to that root and use forward slashes.
type Store struct {
	fs afero.Fs
}

// NewStore roots a store at dir on the host filesystem, creating dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{fs: afero.NewBasePathFs(afero.NewOsFs(), dir)}, nil
}

// NewStoreWithFs wraps an existing filesystem. Tests pass afero.NewMemMapFs().
func NewStoreWithFs(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save writes r under {userID}/{uuid}_{name} and returns the relative path and
// the number of bytes written.
func (s *Store) Save(userID int64, name string, r io.Reader) (string, int64, error) {
	dir := fmt.Sprintf("%d", userID)
	if err := s.fs.MkdirAll(dir, 0750); err != nil {
		return "", 0, fmt.Errorf("could not create user directory: %w", err)
	}

	rel := path.Join(dir, uuid.NewString()+"_"+SafeName(name))
	f, err := s.fs.Create(rel)
	if err != nil {
		return "", 0, fmt.Errorf("could not create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(rel)
		return "", 0, fmt.Errorf("could not write file: %w", err)
	}
	return rel, n, nil
}

// Open returns the stored blob for reading. The caller closes it.
func (s *Store) Open(rel string) (afero.File, error) {
	return s.fs.Open(rel)
}

// Size reports the stored size of rel in bytes.
func (s *Store) Size(rel string) (int64, error) {
	info, err := s.fs.Stat(rel)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Remove deletes rel. A blob that is already gone is not an error.
func (s *Store) Remove(rel string) error {
	err := s.fs.Remove(rel)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Fs exposes the underlying filesystem so the router can serve it.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// SafeName strips directory components and characters outside
// [A-Za-z0-9._-] from a client supplied filename.
func SafeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
