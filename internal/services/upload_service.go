package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

type UploadService interface {
	// Store validates and persists an uploaded file, returning the public
	// URL the profile stores as an opaque string.
	Store(ctx context.Context, userID, filename, contentType string, size int64, reader io.Reader) (string, error)
	// Open retrieves a stored file for serving.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type UploadServiceImpl struct {
	store storage.Storage
	cfg   *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &UploadServiceImpl{store: store, cfg: cfg}
}

func (s *UploadServiceImpl) Store(ctx context.Context, userID, filename, contentType string, size int64, reader io.Reader) (string, error) {
	if size > s.cfg.Upload.MaxSize {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the %d byte limit", s.cfg.Upload.MaxSize))
	}

	if !s.allowedType(contentType) {
		return "", apperrors.NewBadRequestError("File type not allowed: " + contentType)
	}

	// Per-user directory, random name, original extension preserved.
	path := fmt.Sprintf("users/%s/%s%s", userID, uuid.NewString(), filepath.Ext(filename))

	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *UploadServiceImpl) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(nil)
	}

	reader, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reader, nil
}

func (s *UploadServiceImpl) allowedType(contentType string) bool {
	for _, t := range s.cfg.Upload.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
