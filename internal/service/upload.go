package service

import (
	"HelpDesk/config"
	"HelpDesk/internal/storage"
	"HelpDesk/model"
	"HelpDesk/utils"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"
)

// ChunkRequest carries one chunk of a dropzone-style upload. UploadID is
// the client-generated token shared by every chunk of one logical file.
type ChunkRequest struct {
	UploadID    string
	FileName    string
	ChunkIndex  int
	ByteOffset  int64
	TotalChunks int
	TotalSize   int64
}

// noExtension marks staging files whose source name had no extension.
const noExtension = ".no_file_extension"

func stagingExt(fileName string) string {
	ext := path.Ext(utils.SecureFilename(fileName))
	if ext == "" || ext == "." {
		return noExtension
	}
	return ext
}

// DatedStagingDir resolves the staging directory for uploads started at
// the given time, creating it if needed. Creation is idempotent.
func DatedStagingDir(now time.Time) (string, error) {
	dir := filepath.Join(
		config.UploadConfigInstance.StagingDir,
		now.Format("2006"),
		now.Format("02-01-2006"),
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// StagingPath is where a partial upload accumulates on disk.
func StagingPath(dir string, req ChunkRequest) string {
	return filepath.Join(dir, req.UploadID+stagingExt(req.FileName))
}

// IsFinalChunk reports whether req signals the end of the upload.
func IsFinalChunk(req ChunkRequest) bool {
	return req.ChunkIndex+1 == req.TotalChunks
}

// WriteChunk writes one chunk at its byte offset into the staging file.
// Chunk 0 against an existing staging file is a Conflict: a new upload
// reusing the id must not silently overwrite an older one. Re-sending a
// later chunk at the same offset just overwrites identical bytes.
func WriteChunk(dir string, req ChunkRequest, r io.Reader) error {
	target := StagingPath(dir, req)
	if req.ChunkIndex == 0 {
		if _, err := os.Stat(target); err == nil {
			return ErrConflict
		}
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Seek(req.ByteOffset, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return nil
}

// CheckComplete reconciles the on-disk size with the declared total once
// the final chunk arrived. On failure the partial file is left in place.
func CheckComplete(dir string, req ChunkRequest, maxBytes int64) (int64, error) {
	stat, err := os.Stat(StagingPath(dir, req))
	if err != nil {
		return 0, err
	}
	if stat.Size() != req.TotalSize {
		return stat.Size(), ErrSizeMismatch
	}
	if maxBytes > 0 && stat.Size() > maxBytes {
		return stat.Size(), ErrTooLarge
	}
	return stat.Size(), nil
}

// FileObjectName builds the store-side object name for a completed file.
func FileObjectName(hash, ext string, now time.Time) string {
	return path.Join("files", now.Format("2006"), now.Format("02-01-2006"), hash+ext)
}

// CompleteUpload finishes a reassembled upload: size check, promotion
// into the file store under a fresh server-generated hash, and a single
// registration write attaching the file to its order.
func CompleteUpload(ctx context.Context, dir string, req ChunkRequest, orderID uint64) (*model.File, error) {
	size, err := CheckComplete(dir, req, config.UploadConfigInstance.MaxFileBytes)
	if err != nil {
		return nil, err
	}

	// The order lookup happens before any irreversible move so a bad
	// order id fails without touching the artifact.
	order, err := GetOrderWithFiles(orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	maxFiles := config.UploadConfigInstance.MaxFilesPerOrder
	if maxFiles > 0 && len(order.Files) >= maxFiles {
		return nil, ErrTooManyFiles
	}

	hash := utils.FileHash()
	object := FileObjectName(hash, stagingExt(req.FileName), time.Now())
	staged := StagingPath(dir, req)

	if storage.Default == nil {
		return nil, fmt.Errorf("storage not initialized")
	}
	switch store := storage.Default.(type) {
	case *storage.LocalStore:
		if _, err := store.Promote(staged, object); err != nil {
			return nil, err
		}
	default:
		f, err := os.Open(staged)
		if err != nil {
			return nil, err
		}
		putErr := storage.Default.PutObject(
			ctx,
			config.AppConfig.BucketName,
			object,
			f,
			size,
			storage.PutOptions{ContentType: ContentTypeFor(req.FileName)},
		)
		f.Close()
		if putErr != nil {
			return nil, putErr
		}
		_ = os.Remove(staged)
	}

	file := &model.File{
		OriginalName: req.FileName,
		Hash:         hash,
		Path:         object,
		TotalSize:    size,
		OrderID:      order.ID,
	}
	if err := RegisterFile(ctx, file); err != nil {
		_ = storage.Default.RemoveObject(ctx, config.AppConfig.BucketName, object)
		return nil, err
	}
	return file, nil
}
