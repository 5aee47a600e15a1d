package service

import (
	"context"
	"io"

	"vidtube/internal/domain/entity"
)

// Media folders inside the bucket.
const (
	MediaFolderAvatars = "avatars"
	MediaFolderCovers  = "covers"
)

// StagedFile is an upload written to local disk before it reaches the media store.
type StagedFile struct {
	Field        string // Multipart field the file arrived in.
	Path         string // Local path of the staged copy.
	OriginalName string
	ContentType  string
	Size         int64
}

// ObjectInfo describes a stored media object.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// MediaStager persists incoming uploads locally and removes them afterwards.
type MediaStager interface {
	// Stage copies r into the staging area under field.
	Stage(field, originalName, contentType string, r io.Reader) (*StagedFile, error)

	// Discard removes the staged copy. Removing a missing file is not an error.
	Discard(file *StagedFile) error
}

// MediaStorage uploads staged files to durable storage.
type MediaStorage interface {
	// Upload stores the staged file under folder and returns its reference.
	Upload(ctx context.Context, folder string, file *StagedFile) (*entity.Media, error)

	// Delete removes a stored object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Open streams a stored object.
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
}
