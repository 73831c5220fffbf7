package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/log"
)

// Входные структуры операций над картинками.
type UploadImageInput struct {
	File        *models.FileUpload
	Name        string
	Description string
	Category    string
	Filter      string
}

// UpdateImageInput — полный набор полей для перезаписи карточки.
// CreatedAt и UploadLocation берутся из запроса как есть: перезапись полная,
// ничего из прежней записи автоматически не наследуется.
type UpdateImageInput struct {
	Name           string
	Description    string
	Category       string
	Filter         string
	CreatedAt      int64
	UploadLocation string
}

// Images возвращает до limit картинок всех пользователей.
// limit<=0 означает «по умолчанию» (границы применяет слой хранилища).
func (s *Service) Images(ctx context.Context, limit int32) ([]models.Image, error) {
	const op = "service/images/Images"

	items, err := s.store.Images(ctx, limit, "")
	if err != nil {
		log.From(ctx).With("op", op).Warn("listing failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CategoryImages возвращает до limit картинок выбранной категории.
func (s *Service) CategoryImages(ctx context.Context, category string, limit int32) ([]models.Image, error) {
	const op = "service/images/CategoryImages"

	items, err := s.store.CategoryImages(ctx, category, limit)
	if err != nil {
		log.From(ctx).With("op", op, "category", category).Warn("listing failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// UserImages возвращает до limit картинок текущего пользователя.
// Требует аутентифицированной сессии.
func (s *Service) UserImages(ctx context.Context, sess *models.Session, limit int32) ([]models.Image, error) {
	const op = "service/images/UserImages"

	if !sess.LoggedIn() {
		return nil, fmt.Errorf("%s: %w", op, ErrLoginRequired)
	}

	items, err := s.store.Images(ctx, limit, sess.User.LocalID)
	if err != nil {
		log.From(ctx).With("op", op, "user_id", sess.User.LocalID).Warn("listing failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ImageByID возвращает карточку картинки.
func (s *Service) ImageByID(ctx context.Context, id string) (*models.Image, error) {
	const op = "service/images/ImageByID"

	img, err := s.store.Image(ctx, id)
	if err != nil {
		log.From(ctx).With("op", op, "image_id", id).Warn("fetch failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return img, nil
}

// DeleteImage удаляет карточку картинки.
func (s *Service) DeleteImage(ctx context.Context, id string) error {
	const op = "service/images/DeleteImage"

	if err := s.store.DeleteImage(ctx, id); err != nil {
		log.From(ctx).With("op", op, "image_id", id).Warn("delete failed", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UploadImage загружает новую картинку.
//
// Валидация (первая нарушенная проверка решает): аутентификация, файл,
// name, description, category. Filter не обязателен.
//
// Поведение:
//   - идентификатор картинки генерируется здесь и далее неизменен;
//   - файл уходит в загрузчик под этим идентификатором, путь нормализуется
//     к единственному ведущему слэшу;
//   - user_name/user_avatar — денормализованный снимок текущего пользователя
//     на момент загрузки;
//   - created_at — текущее unix-время в секундах;
//   - возвращает идентификатор новой картинки.
func (s *Service) UploadImage(ctx context.Context, sess *models.Session, input UploadImageInput) (string, error) {
	const op = "service/images/UploadImage"

	lg := log.From(ctx).With("op", op)

	if !sess.LoggedIn() {
		return "", fmt.Errorf("%s: %w", op, ErrUploadLoginRequired)
	}

	switch {
	case input.File == nil || input.File.Filename == "":
		return "", fmt.Errorf("%s: %w", op, ErrFileRequired)
	case input.Name == "":
		return "", fmt.Errorf("%s: %w", op, ErrNameRequired)
	case input.Description == "":
		return "", fmt.Errorf("%s: %w", op, ErrDescriptionRequired)
	case input.Category == "":
		return "", fmt.Errorf("%s: %w", op, ErrCategoryRequired)
	}

	imageID := uuid.NewString()
	lg = lg.With("image_id", imageID)

	key, err := s.files.Save(ctx, imageID, *input.File)
	if err != nil {
		lg.Error("file upload failed", "err", err)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	user := sess.User
	img := &models.Image{
		ID:             imageID,
		UploadLocation: "/" + strings.Trim(key, "/"),
		UserID:         user.LocalID,
		UserName:       user.DisplayName(),
		UserAvatar:     user.Avatar,
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Filter:         input.Filter,
		CreatedAt:      time.Now().Unix(),
	}

	if err := s.store.SaveImage(ctx, img); err != nil {
		lg.Error("image persist failed", "err", err)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return imageID, nil
}

// UpdateImage целиком перезаписывает карточку картинки.
//
// Отличия от UploadImage: файл не загружается; created_at и upload_location
// приходят в запросе и пишутся как есть. Поле, не переданное вызывающим,
// в новой записи не выживает — это полная перезапись, а не патч.
// user_name/user_avatar заново снимаются с текущего пользователя сессии.
func (s *Service) UpdateImage(ctx context.Context, sess *models.Session, imageID string, input UpdateImageInput) error {
	const op = "service/images/UpdateImage"

	lg := log.From(ctx).With("op", op, "image_id", imageID)

	if !sess.LoggedIn() {
		return fmt.Errorf("%s: %w", op, ErrUpdateLoginRequired)
	}

	switch {
	case input.Name == "":
		return fmt.Errorf("%s: %w", op, ErrNameRequired)
	case input.Description == "":
		return fmt.Errorf("%s: %w", op, ErrDescriptionRequired)
	case input.Category == "":
		return fmt.Errorf("%s: %w", op, ErrCategoryRequired)
	}

	user := sess.User
	img := &models.Image{
		ID:             imageID,
		UploadLocation: input.UploadLocation,
		UserID:         user.LocalID,
		UserName:       user.DisplayName(),
		UserAvatar:     user.Avatar,
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Filter:         input.Filter,
		CreatedAt:      input.CreatedAt,
	}

	if err := s.store.SaveImage(ctx, img); err != nil {
		lg.Error("image persist failed", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
