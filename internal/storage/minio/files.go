package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

// Save сохраняет файл под ключом "<prefix>/<id>.<ext>" и возвращает ключ.
// Расширение берётся из content type; для неизвестного типа ключ остаётся без
// расширения. Тип и размер валидируются по конфигу до обращения к хранилищу.
func (s *FilesStorage) Save(ctx context.Context, id string, file models.FileUpload) (string, error) {
	const op = "storage/minio/files/Save"

	if strings.TrimSpace(id) == "" || file.Content == nil {
		return "", storage.ErrInvalidArgument
	}

	if file.Size <= 0 || file.Size > s.cfg.Uploads.MaxSizeBytes {
		return "", storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Uploads.AllowedContentTypes, file.ContentType) {
		return "", storage.ErrInvalidArgument
	}

	var ext string
	switch file.ContentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		ext = ""
	}

	key := path.Join(s.cfg.S3.Prefix, id+ext)

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, file.Content, file.Size, mclient.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return key, nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
