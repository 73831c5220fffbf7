package storage

import (
	"context"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
)

// Images — контракт репозитория картинок.
// Списки отдаются в порядке возрастания user_id (порядок дочернего ключа
// исходного иерархического хранилища) и никогда не превышают limit.
type Images interface {
	// Images возвращает до limit картинок; при непустом userID — только
	// картинки этого пользователя.
	Images(ctx context.Context, limit int32, userID string) ([]models.Image, error)
	// ImagesByCategory возвращает до limit картинок с точным совпадением категории.
	ImagesByCategory(ctx context.Context, category string, limit int32) ([]models.Image, error)
	// ImageByID возвращает картинку по идентификатору.
	ImageByID(ctx context.Context, id string) (*models.Image, error)
	// ReplaceImage целиком перезаписывает документ images/{image.ID}.
	// Частичного патча для картинок не существует — вызывающий обязан
	// передать полный документ.
	ReplaceImage(ctx context.Context, image *models.Image) error
	// DeleteImage удаляет документ по идентификатору.
	DeleteImage(ctx context.Context, id string) error
}

// ImagesStorage — верхнеуровневый интерфейс хранилища картинок.
type ImagesStorage interface {
	Images
}
