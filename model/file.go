package model

import "time"

// File is a completed upload artifact. Hash is the only handle clients
// may use to fetch it; Path stays server-side.
type File struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	OriginalName string `gorm:"column:original_name;type:varchar(255);not null" json:"original_name"`

	Hash string `gorm:"column:hash;type:varchar(64);uniqueIndex;not null" json:"hash"`
	Path string `gorm:"column:path;type:varchar(512);not null" json:"-"`

	TotalSize int64 `gorm:"column:total_size;not null" json:"total_size"`

	OrderID uint64 `gorm:"column:order_id;not null;index" json:"order_id"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (File) TableName() string {
	return "files"
}
