package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/log"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/redact"
)

// Входные структуры аккаунт-операций.
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	// Avatar — опциональный файл; nil либо пустое имя файла означает
	// «аватар не менять».
	Avatar *models.FileUpload
}

// Register регистрирует нового пользователя.
//
// Валидация (первая нарушенная проверка решает):
//   - email обязателен;
//   - пароль обязателен и не короче 6 символов;
//   - подтверждение обязательно и совпадает с паролем.
//
// Поведение:
//   - до прохождения валидации никаких записей в хранилище не происходит;
//   - при успехе сохранённая запись пользователя получает localId,
//     выданный identity-провайдером; имена и аватар создаются пустыми.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	const op = "service/account/Register"

	lg := log.From(ctx).With("op", op, "email", redact.Email(input.Email))

	switch {
	case input.Email == "":
		return fmt.Errorf("%s: %w", op, ErrEmailRequired)
	case input.Password == "":
		return fmt.Errorf("%s: %w", op, ErrPasswordRequired)
	case len(input.Password) < minPasswordLen:
		return fmt.Errorf("%s: %w", op, ErrPasswordTooShort)
	case input.PasswordConfirm == "":
		return fmt.Errorf("%s: %w", op, ErrPasswordConfirmRequired)
	case input.Password != input.PasswordConfirm:
		return fmt.Errorf("%s: %w", op, ErrPasswordMismatch)
	}

	user := &models.User{
		Email:     input.Email,
		FirstName: "",
		LastName:  "",
		Avatar:    "",
		Likes:     []string{},
	}

	if _, err := s.store.Register(ctx, user, input.Password); err != nil {
		lg.Warn("registration failed", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Login аутентифицирует пользователя и кладёт его запись в сессию.
func (s *Service) Login(ctx context.Context, sess *models.Session, input LoginInput) error {
	const op = "service/account/Login"

	lg := log.From(ctx).With("op", op, "email", redact.Email(input.Email))

	switch {
	case input.Email == "":
		return fmt.Errorf("%s: %w", op, ErrEmailRequired)
	case input.Password == "":
		return fmt.Errorf("%s: %w", op, ErrPasswordRequired)
	}

	user, err := s.store.Login(ctx, input.Email, input.Password)
	if err != nil {
		lg.Warn("login failed", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	sess.SetUser(user)

	return nil
}

// UpdateProfile редактирует имя/фамилию и (опционально) аватар текущего
// пользователя.
//
// Поведение:
//   - новый аватар уходит в загрузчик под localId пользователя, путь
//     нормализуется к виду с единственным ведущим слэшем;
//   - запись пользователя пишется merge-примитивой: денормализованные снимки
//     user_name/user_avatar на уже загруженных картинках НЕ обновляются.
func (s *Service) UpdateProfile(ctx context.Context, sess *models.Session, input UpdateProfileInput) error {
	const op = "service/account/UpdateProfile"

	lg := log.From(ctx).With("op", op)

	if !sess.LoggedIn() {
		return fmt.Errorf("%s: %w", op, ErrLoginRequired)
	}

	switch {
	case input.FirstName == "":
		return fmt.Errorf("%s: %w", op, ErrFirstNameRequired)
	case input.LastName == "":
		return fmt.Errorf("%s: %w", op, ErrLastNameRequired)
	}

	if input.Avatar != nil && input.Avatar.Filename != "" {
		key, err := s.files.Save(ctx, sess.User.LocalID, *input.Avatar)
		if err != nil {
			lg.Error("avatar upload failed", "err", err)

			return fmt.Errorf("%s: %w", op, err)
		}

		sess.User.Avatar = "/" + strings.Trim(key, "/")
	}

	sess.User.FirstName = input.FirstName
	sess.User.LastName = input.LastName

	if err := s.store.UpdateUser(ctx, sess.User); err != nil {
		lg.Error("user update failed", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Like — идемпотентный переключатель членства imageID в множестве лайков
// текущего пользователя: like=true добавляет (если ещё нет), like=false
// убирает (если есть). Запись в хранилище происходит только при реальном
// изменении; возвращает, изменилось ли множество.
func (s *Service) Like(ctx context.Context, sess *models.Session, imageID string, like bool) (bool, error) {
	const op = "service/account/Like"

	lg := log.From(ctx).With("op", op, "image_id", imageID, "like", like)

	if !sess.LoggedIn() {
		return false, fmt.Errorf("%s: %w", op, ErrLoginRequired)
	}

	user := sess.User
	changed := false

	if like {
		if !user.Liked(imageID) {
			user.Likes = append(user.Likes, imageID)
			changed = true
		}
	} else {
		if user.Liked(imageID) {
			kept := make([]string, 0, len(user.Likes))
			for _, id := range user.Likes {
				if id != imageID {
					kept = append(kept, id)
				}
			}
			user.Likes = kept
			changed = true
		}
	}

	if changed {
		if err := s.store.UpdateUser(ctx, user); err != nil {
			lg.Error("like persist failed", "err", err)

			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	return changed, nil
}

// Logout сбрасывает текущего пользователя сессии.
func (s *Service) Logout(sess *models.Session) {
	sess.Clear()
}
