package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidFileType = errors.New("only PDF files are allowed")

type StorageService interface {
	SaveBrief(file *multipart.FileHeader, userID string) (filename string, path string, err error)
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// SaveBrief copies an uploaded PDF under a unique name prefixed by its owner.
func (s *storageService) SaveBrief(file *multipart.FileHeader, userID string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidFileType, ext)
	}

	prefix := "brief"
	if userID != "" {
		prefix = filepath.Base(userID)
	}

	filename := fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext)
	path := filepath.Join(s.uploadPath, filename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return filename, path, nil
}

func (s *storageService) DeleteFile(filename string) error {
	if err := os.Remove(filepath.Join(s.uploadPath, filepath.Base(filename))); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
