// storage содержит контракты слоя хранилищ gallery-service.
//
// users.go — записи пользователей в документной БД (две разные примитивы записи:
// полная перезапись и частичный merge).
// images.go — записи картинок (чтение списков, полная перезапись, удаление).
// credentials.go — учётки identity-провайдера (email+password).
// files.go — контракт загрузчика файлов в S3/MinIO.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер файла и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Users — контракт репозитория пользователей.
// Две примитивы записи намеренно разведены:
//   - ReplaceUser — полная перезапись документа users/{localId} (регистрация);
//   - MergeUser — частичное слияние полей в существующий документ (апдейт профиля).
type Users interface {
	// UserByID возвращает пользователя по localId.
	UserByID(ctx context.Context, localID string) (*models.User, error)
	// ReplaceUser целиком записывает документ пользователя по user.LocalID.
	ReplaceUser(ctx context.Context, user *models.User) error
	// MergeUser сливает поля user в существующий документ по user.LocalID.
	// Поля, которых нет в user, в документе сохраняются.
	MergeUser(ctx context.Context, user *models.User) error
}

// UsersStorage — верхнеуровневый интерфейс хранилища пользователей.
type UsersStorage interface {
	Users
}
