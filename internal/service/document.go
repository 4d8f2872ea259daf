package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"certtracker/internal/storage"
)

// MaxUploadSize is the document upload size ceiling.
const MaxUploadSize = 10 << 20 // 10 MiB

// PresignExpiry is how long an upload's retrieval URL stays valid.
const PresignExpiry = 7 * 24 * time.Hour

// allowedExtensions is the filename extension allow-list for uploads.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// UploadResult is returned after a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Filename string `json:"filename"`
}

// DocumentService handles user-owned supporting document uploads. Object
// keys are prefixed with the owner's user ID; that prefix is the sole
// authorization check on deletion.
type DocumentService interface {
	// Upload validates size and extension, stores the content under a
	// user-prefixed key, and returns a time-limited retrieval URL.
	Upload(ctx context.Context, userID, filename string, content []byte, contentType string) (*UploadResult, error)

	// Delete removes an object after verifying the key belongs to the caller.
	Delete(ctx context.Context, userID, key string) error
}

type documentService struct {
	store storage.Storage
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage) DocumentService {
	return &documentService{store: store}
}

func (s *documentService) Upload(ctx context.Context, userID, filename string, content []byte, contentType string) (*UploadResult, error) {
	if filename == "" {
		return nil, &MissingFieldError{Field: "filename"}
	}
	if len(content) == 0 {
		return nil, &MissingFieldError{Field: "file content"}
	}
	if len(content) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrFileTypeNotAllowed
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), ext)

	_, err := s.store.Put(ctx, key, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: contentType,
		Metadata: map[string]string{
			"userId":            userID,
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign url: %w", err)
	}

	return &UploadResult{URL: url, Key: key, Filename: filename}, nil
}

func (s *documentService) Delete(ctx context.Context, userID, key string) error {
	if key == "" {
		return &MissingFieldError{Field: "key"}
	}
	// The leading path segment of the key is the owner.
	if !strings.HasPrefix(key, userID+"/") {
		return ErrForbidden
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
