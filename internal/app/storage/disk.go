package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// diskStore keeps objects under a single directory. All access goes through an os.Root, so
// keys cannot reach outside it.
type diskStore struct {
	root *os.Root
}

func newDiskStore(dir string) (*diskStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory must not be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload directory: %w", err)
	}

	return &diskStore{root: root}, nil
}

func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}

	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}

	return filepath.FromSlash(cleaned), nil
}

// Put writes to a temporary file and renames it into place.
func (d *diskStore) Put(_ context.Context, key string, body io.Reader, size int64, _ string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := d.root.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", key, err)
		}
	}

	tmp := name + ".part"
	f, err := d.root.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", key, err)
	}

	written, err := io.Copy(f, io.LimitReader(body, size+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		err = fmt.Errorf("failed to write %s: %w", key, err)
	case closeErr != nil:
		err = fmt.Errorf("failed to flush %s: %w", key, closeErr)
	case size >= 0 && written != size:
		err = fmt.Errorf("size mismatch for %s: wrote %d of %d bytes", key, written, size)
	}
	if err != nil {
		_ = d.root.Remove(tmp)
		return err
	}

	if err := d.root.Rename(tmp, name); err != nil {
		_ = d.root.Remove(tmp)
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}

	return nil
}

func (d *diskStore) Open(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := d.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("failed to open %s: %w", key, err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, ObjectInfo{}, ErrObjectNotFound
	}

	info := ObjectInfo{
		ContentType: mime.TypeByExtension(filepath.Ext(name)),
		Size:        stat.Size(),
	}
	return f, info, nil
}

func (d *diskStore) Delete(_ context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	if err := d.root.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}
