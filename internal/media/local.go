package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploads in a directory that is served under urlPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &LocalStore{
		dir:       dir,
		urlPrefix: strings.Trim(urlPrefix, "/"),
	}, nil
}

// Save streams r into a temporary file and renames it to a generated name.
// The returned reference is "<urlPrefix>/<name>".
func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}

	tmp, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, err = io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write temp file: %w", err)
	}

	name := objectName(filename)
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename upload: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

func (s *LocalStore) Remove(ctx context.Context, reference string) error {
	name, ok := strings.CutPrefix(reference, s.urlPrefix+"/")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("reference %q is not a local upload", reference)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
