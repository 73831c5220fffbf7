package storage

import (
	"context"
	"time"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
)

// Credentials — контракт хранилища учёток identity-провайдера.
type Credentials interface {
	// SaveCredentials создаёт учётку. При занятом email — ErrAlreadyExists.
	SaveCredentials(ctx context.Context, creds *models.Credentials) error
	// CredentialsByEmail возвращает учётку по email (нормализованному).
	CredentialsByEmail(ctx context.Context, email string) (*models.Credentials, error)
	// RecordFailure инкрементирует счётчик неудачных входов; при достижении
	// threshold выставляет locked_until = now + lockout.
	RecordFailure(ctx context.Context, localID string, threshold int32, lockout time.Duration) error
	// ResetFailures сбрасывает счётчик и блокировку после успешного входа.
	ResetFailures(ctx context.Context, localID string) error
}

// CredentialsStorage — верхнеуровневый интерфейс хранилища учёток.
type CredentialsStorage interface {
	Credentials
}
