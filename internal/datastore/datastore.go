// datastore реализует клиент удалённого документного хранилища фото-сервиса:
// высокоуровневые операции над коллекциями users/images плюс фасад
// identity-провайдера (регистрация/вход).
//
// Политика ошибок: каждая операция логирует сырую причину и возвращает
// *ReadableError с текстом из таблицы читаемых ошибок (неизвестные причины
// получают обобщённый текст). Исключения из политики:
//   - «не найдено» отдаётся сентинелом ErrNotFound — это значимый исход,
//     а не сбой запроса;
//   - пустая выдача списков отдаётся сентинелом ErrNoImages, отдельным от
//     ошибки запроса.
package datastore

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-photo-gallery/internal/auth"
	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/log"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/redact"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

var (
	// ErrNoImages — запрос выполнился, но подходящих картинок нет.
	ErrNoImages = errors.New("no images")
	// ErrNotFound — запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
)

// Store — контракт датастор-клиента для верхних слоёв.
type Store interface {
	// Images возвращает до limit картинок (при непустом userID — только
	// картинки этого пользователя) в порядке возрастания user_id.
	Images(ctx context.Context, limit int32, userID string) ([]models.Image, error)
	// CategoryImages возвращает до limit картинок выбранной категории.
	CategoryImages(ctx context.Context, category string, limit int32) ([]models.Image, error)
	// Image возвращает одну картинку по идентификатору.
	Image(ctx context.Context, id string) (*models.Image, error)
	// SaveImage целиком перезаписывает запись картинки.
	SaveImage(ctx context.Context, image *models.Image) error
	// DeleteImage удаляет запись картинки.
	DeleteImage(ctx context.Context, id string) error
	// Register создаёт учётку, проставляет выданный localId в user
	// и сохраняет запись пользователя. Возвращает localId.
	Register(ctx context.Context, user *models.User, password string) (string, error)
	// Login аутентифицирует и возвращает запись пользователя.
	Login(ctx context.Context, email, password string) (*models.User, error)
	// UpdateUser сливает поля user в существующую запись (merge, не replace).
	UpdateUser(ctx context.Context, user *models.User) error
}

// Client — реализация Store поверх storage-контрактов и identity-провайдера.
type Client struct {
	users    storage.UsersStorage
	images   storage.ImagesStorage
	identity auth.Identity
}

// New создаёт новый датастор-клиент.
func New(users storage.UsersStorage, images storage.ImagesStorage, identity auth.Identity) *Client {
	return &Client{
		users:    users,
		images:   images,
		identity: identity,
	}
}

var _ Store = (*Client)(nil)

// Images возвращает до limit картинок в порядке возрастания user_id.
//
// Поведение:
//   - пустая выдача -> ErrNoImages (не пустой срез и не ошибка запроса);
//   - ошибка запроса -> *ReadableError с обобщённым текстом.
func (c *Client) Images(ctx context.Context, limit int32, userID string) ([]models.Image, error) {
	const op = "datastore/Images"

	lg := log.From(ctx).With("op", op, "limit", limit, "user_id", userID)

	items, err := c.images.Images(ctx, limit, userID)
	if err != nil {
		lg.Error("storage error", "err", err)

		return nil, fmt.Errorf("%s: %w", op, readable(err))
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoImages)
	}

	return items, nil
}

// CategoryImages возвращает до limit картинок с точным совпадением категории.
// Контракт выдачи тот же, что у Images.
func (c *Client) CategoryImages(ctx context.Context, category string, limit int32) ([]models.Image, error) {
	const op = "datastore/CategoryImages"

	lg := log.From(ctx).With("op", op, "category", category, "limit", limit)

	items, err := c.images.ImagesByCategory(ctx, category, limit)
	if err != nil {
		lg.Error("storage error", "err", err)

		return nil, fmt.Errorf("%s: %w", op, readable(err))
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoImages)
	}

	return items, nil
}

// Image возвращает одну картинку по идентификатору.
// Отсутствие записи -> ErrNotFound; ошибка запроса переводится в читаемый
// текст так же, как у остальных операций.
func (c *Client) Image(ctx context.Context, id string) (*models.Image, error) {
	const op = "datastore/Image"

	lg := log.From(ctx).With("op", op, "image_id", id)

	img, err := c.images.ImageByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("image not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error", "err", err)

		return nil, fmt.Errorf("%s: %w", op, readable(err))
	}

	return img, nil
}

// SaveImage целиком перезаписывает запись картинки по image.ID.
func (c *Client) SaveImage(ctx context.Context, image *models.Image) error {
	const op = "datastore/SaveImage"

	lg := log.From(ctx).With("op", op)
	if image != nil {
		lg = lg.With("image_id", image.ID)
	}

	if err := c.images.ReplaceImage(ctx, image); err != nil {
		lg.Error("storage error", "err", err)

		return fmt.Errorf("%s: %w", op, readable(err))
	}

	return nil
}

// DeleteImage удаляет запись картинки.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	const op = "datastore/DeleteImage"

	lg := log.From(ctx).With("op", op, "image_id", id)

	if err := c.images.DeleteImage(ctx, id); err != nil {
		lg.Error("storage error", "err", err)

		return fmt.Errorf("%s: %w", op, readable(err))
	}

	return nil
}

// Register создаёт учётку в identity-провайдере, проставляет выданный localId
// в запись пользователя и целиком записывает её в коллекцию users.
//
// Инвариант: LocalID сохранённой записи равен выданному провайдером localId.
func (c *Client) Register(ctx context.Context, user *models.User, password string) (string, error) {
	const op = "datastore/Register"

	lg := log.From(ctx).With("op", op, "email", redact.Email(user.Email))

	localID, err := c.identity.SignUp(ctx, user.Email, password)
	if err != nil {
		lg.Warn("sign-up failed", "err", err)

		return "", fmt.Errorf("%s: %w", op, readable(err))
	}

	user.LocalID = localID
	if user.Likes == nil {
		user.Likes = []string{}
	}

	if err := c.users.ReplaceUser(ctx, user); err != nil {
		lg.Error("storage error on ReplaceUser", "err", err)

		return "", fmt.Errorf("%s: %w", op, readable(err))
	}

	return localID, nil
}

// Login аутентифицирует пару email+password и возвращает запись пользователя.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	const op = "datastore/Login"

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	localID, err := c.identity.SignIn(ctx, email, password)
	if err != nil {
		lg.Warn("sign-in failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, readable(err))
	}

	user, err := c.users.UserByID(ctx, localID)
	if err != nil {
		lg.Error("storage error on UserByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, readable(err))
	}

	return user, nil
}

// UpdateUser сливает поля user в существующую запись users/{localId}.
// Это merge-примитива: полей, не представленных в user, запись не лишается.
func (c *Client) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "datastore/UpdateUser"

	lg := log.From(ctx).With("op", op)
	if user != nil {
		lg = lg.With("user_id", user.LocalID)
	}

	if err := c.users.MergeUser(ctx, user); err != nil {
		lg.Error("storage error", "err", err)

		return fmt.Errorf("%s: %w", op, readable(err))
	}

	return nil
}
