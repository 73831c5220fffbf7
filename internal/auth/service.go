package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-photo-gallery/internal/config"
	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/log"
	"github.com/pribylovaa/go-photo-gallery/internal/pkg/redact"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

// Service — identity-провайдер поверх storage.Credentials.
// Пароли хранятся bcrypt-хэшами; после cfg.Auth.MaxLoginAttempts неудачных
// входов подряд учётка временно блокируется (код TOO_MANY_ATTEMPTS_TRY_LATER).
type Service struct {
	cfg   *config.Config
	creds storage.CredentialsStorage
}

// New создаёт новый экземпляр identity-провайдера.
func New(creds storage.CredentialsStorage, cfg *config.Config) *Service {
	return &Service{
		cfg:   cfg,
		creds: creds,
	}
}

var _ Identity = (*Service)(nil)

// SignUp создаёт учётку и возвращает выданный localId.
//
// Поведение:
//   - email нормализуется (TrimSpace + ToLower);
//   - занятый email -> &Error{Code: CodeEmailExists};
//   - прочие ошибки стораджа возвращаются как есть (их переведёт datastore).
func (s *Service) SignUp(ctx context.Context, email, password string) (string, error) {
	const op = "auth/SignUp"

	normEmail := normalizeEmail(email)
	lg := log.From(ctx).With("op", op, "email", redact.Email(normEmail))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		lg.Error("bcrypt failed", "err", err)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	creds := &models.Credentials{
		LocalID:      uuid.NewString(),
		Email:        normEmail,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.creds.SaveCredentials(ctx, creds); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("email already registered")

			return "", &Error{Code: CodeEmailExists, Err: err}
		}

		lg.Error("storage error on SaveCredentials", "err", err)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return creds.LocalID, nil
}

// SignIn проверяет пару email+password и возвращает localId учётки.
//
// Поведение:
//   - неизвестный email -> EMAIL_NOT_FOUND;
//   - отключённая администратором учётка -> USER_DISABLED;
//   - действующая блокировка -> TOO_MANY_ATTEMPTS_TRY_LATER;
//   - неверный пароль -> INVALID_PASSWORD (+ инкремент счётчика неудач);
//   - успех сбрасывает счётчик неудач.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	const op = "auth/SignIn"

	normEmail := normalizeEmail(email)
	lg := log.From(ctx).With("op", op, "email", redact.Email(normEmail))

	creds, err := s.creds.CredentialsByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("email not registered")

			return "", &Error{Code: CodeEmailNotFound, Err: err}
		}

		lg.Error("storage error on CredentialsByEmail", "err", err)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if creds.Disabled {
		lg.Warn("account disabled")

		return "", &Error{Code: CodeUserDisabled}
	}

	if !creds.LockedUntil.IsZero() && creds.LockedUntil.After(time.Now().UTC()) {
		lg.Warn("account locked", "locked_until", creds.LockedUntil)

		return "", &Error{Code: CodeTooManyAttempts}
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		lg.Warn("invalid password")

		// Счётчик ведём по принципу best-effort: неудача записи не должна
		// менять ответ клиенту.
		if recErr := s.creds.RecordFailure(ctx, creds.LocalID, s.cfg.Auth.MaxLoginAttempts, s.cfg.Auth.LockoutDuration); recErr != nil {
			lg.Error("failed to record login failure", "err", recErr)
		}

		return "", &Error{Code: CodeInvalidPassword}
	}

	if creds.FailedAttempts > 0 || !creds.LockedUntil.IsZero() {
		if resetErr := s.creds.ResetFailures(ctx, creds.LocalID); resetErr != nil {
			lg.Error("failed to reset login failures", "err", resetErr)
		}
	}

	return creds.LocalID, nil
}

// normalizeEmail приводит email к каноническому виду для поиска/хранения.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
