package config

import (
	"path/filepath"
	"sync"
)

// UploadConfig holds chunked-upload and file-store settings.
type UploadConfig struct {
	StagingDir       string `json:"staging_dir"`        // partial uploads land here
	StoreDir         string `json:"store_dir"`          // completed files (local backend)
	StoreBackend     string `json:"store_backend"`      // local or minio
	MaxFileBytes     int64  `json:"max_file_bytes"`     // 0 disables the cap
	MaxFilesPerOrder int    `json:"max_files_per_order"`
}

var UploadConfigInstance *UploadConfig
var uploadConfigOnce sync.Once

// InitUploadConfig initializes upload config.
func InitUploadConfig() {
	uploadConfigOnce.Do(func() {
		root := getEnv("FILES_STORE_FOLDER", "files_store_folder")
		UploadConfigInstance = &UploadConfig{
			StagingDir:       getEnv("UPLOAD_STAGING_DIR", filepath.Join(root, "staging")),
			StoreDir:         getEnv("UPLOAD_STORE_DIR", filepath.Join(root, "store")),
			StoreBackend:     getEnv("UPLOAD_STORE_BACKEND", "local"),
			MaxFileBytes:     getEnvInt64("UPLOAD_MAX_BYTES", 512*1024*1024), // 512MB
			MaxFilesPerOrder: getEnvInt("UPLOAD_MAX_FILES_PER_ORDER", 5),
		}
	})
}
