// Package model contains the GORM persistence models mirroring the SQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Fullname         string    `gorm:"type:varchar(255);not null"`
	AvatarKey        string    `gorm:"type:text;not null;default:''"`
	AvatarURL        string    `gorm:"type:text;not null;default:''"`
	CoverImageKey    string    `gorm:"type:text;not null;default:''"`
	CoverImageURL    string    `gorm:"type:text;not null;default:''"`
	PasswordHash     string    `gorm:"type:text;not null"`
	RefreshTokenHash string    `gorm:"type:varchar(64);not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WatchHistoryModel mirrors the 'watch_history' table. ID preserves watch order.
type WatchHistoryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null"`
	WatchedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
