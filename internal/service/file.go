package service

import (
	"HelpDesk/config"
	"HelpDesk/internal/repo"
	"HelpDesk/internal/storage"
	"HelpDesk/model"
	"HelpDesk/utils"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

const fileCacheTTL = 5 * time.Minute

// RegisterFile inserts a file record; the single create is the one
// persistence write of a completed upload.
func RegisterFile(ctx context.Context, file *model.File) error {
	if err := repo.Db.Create(file).Error; err != nil {
		return err
	}
	_ = utils.SetFileToCache(ctx, file, fileCacheTTL)
	return nil
}

// GetFileByHash finds a file by its public hash, favouring the cache.
func GetFileByHash(ctx context.Context, hash string) (*model.File, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return nil, ErrNotFound
	}
	if file, ok := utils.GetFileFromCache(ctx, hash); ok {
		return file, nil
	}
	var file model.File
	if err := repo.Db.Where("hash = ?", hash).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	_ = utils.SetFileToCache(ctx, &file, fileCacheTTL)
	return &file, nil
}

// OpenFile streams a stored file's bytes from the configured store.
func OpenFile(ctx context.Context, file *model.File) (io.ReadCloser, *storage.ObjectInfo, error) {
	if storage.Default == nil {
		return nil, nil, fmt.Errorf("storage not initialized")
	}
	object, info, err := storage.Default.GetObject(ctx, config.AppConfig.BucketName, file.Path)
	if err != nil {
		return nil, nil, err
	}
	return object, &info, nil
}

// ListFiles returns a page of file records, newest first.
func ListFiles(page, perPage int) ([]model.File, int64, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = config.AppConfig.FilesPerPage
	}
	var total int64
	if err := repo.Db.Model(&model.File{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var files []model.File
	err := repo.Db.Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&files).Error
	return files, total, err
}

// DeleteOrderFiles removes an order's file rows and their artifacts.
// Rows go first so a failed artifact removal never leaves a dangling
// record pointing at nothing; orphaned artifacts are only disk waste.
func DeleteOrderFiles(ctx context.Context, order *model.Order) error {
	var files []model.File
	if err := repo.Db.Where("order_id = ?", order.ID).Find(&files).Error; err != nil {
		return err
	}
	for _, file := range files {
		if err := repo.Db.Delete(&model.File{}, file.ID).Error; err != nil {
			return err
		}
		_ = utils.InvalidateFileCache(ctx, file.Hash)
		if storage.Default != nil {
			_ = storage.Default.RemoveObject(ctx, config.AppConfig.BucketName, file.Path)
		}
	}
	return nil
}

// ContentTypeFor returns content type by file extension.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".pdf":
		return "application/pdf"
	case ".doc", ".docx":
		return "application/msword"
	case ".zip":
		return "application/zip"
	case ".log":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
