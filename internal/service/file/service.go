package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

// Document locates one stored file. Path is the storage key, URL is what
// clients fetch.
type Document struct {
	Path string
	URL  string
}

type FileService interface {
	// UploadDocument stores one employee document. The stored name is
	// uuid-prefixed so repeated uploads of the same filename never collide.
	UploadDocument(ctx context.Context, file io.Reader, filename string) (Document, error)

	// DeleteDocument removes a stored document by its storage path
	DeleteDocument(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadDocument(ctx context.Context, file io.Reader, filename string) (Document, error) {
	ext := filepath.Ext(filename)
	newFilename := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(filename))
	path := filepath.Join("documents", newFilename)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	stored, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return Document{}, fmt.Errorf("failed to upload document: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored, 0*time.Second)
	if err != nil {
		return Document{}, fmt.Errorf("failed to resolve document url: %w", err)
	}

	return Document{Path: stored, URL: url}, nil
}

func (s *fileServiceImpl) DeleteDocument(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
