package storage

import (
	"HelpDesk/config"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LocalStore keeps completed files on the local filesystem under root.
type LocalStore struct {
	root string
}

// NewLocalStore builds a Store rooted at dir.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store dir missing")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{root: dir}, nil
}

// ObjectPath resolves an object name to its path under the store root.
func (s *LocalStore) ObjectPath(object string) string {
	return filepath.Join(s.root, filepath.FromSlash(object))
}

// PutObject writes an object via a temp file and rename.
func (s *LocalStore) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts PutOptions) error {
	dest := s.ObjectPath(object)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".put-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dest)
}

// Promote moves an already-reassembled file into the store by rename,
// so completion stays atomic on the same filesystem.
func (s *LocalStore) Promote(src, object string) (string, error) {
	dest := s.ObjectPath(object)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := os.Rename(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// GetObject opens a stored object.
func (s *LocalStore) GetObject(ctx context.Context, bucket, object string) (io.ReadCloser, ObjectInfo, error) {
	path := s.ObjectPath(object)
	f, err := os.Open(path)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		ObjectName: object,
		Size:       stat.Size(),
	}
	return f, info, nil
}

// RemoveObject deletes a stored object.
func (s *LocalStore) RemoveObject(ctx context.Context, bucket, object string) error {
	err := os.Remove(s.ObjectPath(object))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// InitLocal initializes the local file store.
func InitLocal() {
	store, err := NewLocalStore(config.UploadConfigInstance.StoreDir)
	if err != nil {
		log.Fatalln("init local store fail:", err)
	}
	Default = store
}
