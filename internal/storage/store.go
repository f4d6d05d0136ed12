package storage

import (
	"HelpDesk/config"
	"context"
	"io"
	"log"
)

// PutOptions describes upload options for object storage.
type PutOptions struct {
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	ObjectName string
	Size       int64
}

// Store abstracts completed-file storage. Objects are addressed by a
// bucket and a slash-separated object name; the local backend ignores
// the bucket.
type Store interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts PutOptions) error
	GetObject(ctx context.Context, bucket, object string) (io.ReadCloser, ObjectInfo, error)
	RemoveObject(ctx context.Context, bucket, object string) error
}

// Default is the main file store instance.
var Default Store

// InitStore initializes the configured store backend.
func InitStore() {
	switch config.UploadConfigInstance.StoreBackend {
	case "minio":
		InitMinio()
	case "local", "":
		InitLocal()
	default:
		log.Fatalln("unknown store backend:", config.UploadConfigInstance.StoreBackend)
	}
}
