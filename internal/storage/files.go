package storage

import (
	"context"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
)

// Files — контракт загрузчика файлов: принимает файл и идентификатор,
// сохраняет содержимое в объектном хранилище и возвращает относительный
// путь (ключ объекта). Один и тот же загрузчик используется и для картинок
// (id — UUID картинки), и для аватаров (id — localId пользователя).
type Files interface {
	// Save сохраняет файл под ключом, производным от id.
	// Возможные ошибки: ErrInvalidArgument (тип/размер вне ограничений).
	Save(ctx context.Context, id string, file models.FileUpload) (string, error)
}

// FilesStorage — алиас-обёртка для внедрения зависимости.
type FilesStorage interface {
	Files
}
