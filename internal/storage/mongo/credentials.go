package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

var _ storage.CredentialsStorage = (*Mongo)(nil)

// SaveCredentials создаёт учётку identity-провайдера.
// Конфликт по уникальному индексу email маппится в storage.ErrAlreadyExists.
func (m *Mongo) SaveCredentials(ctx context.Context, creds *models.Credentials) error {
	const op = "storage/mongo/SaveCredentials"

	if creds == nil || strings.TrimSpace(creds.LocalID) == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if _, err := m.credentials.InsertOne(ctx, creds); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CredentialsByEmail возвращает учётку по email.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) CredentialsByEmail(ctx context.Context, email string) (*models.Credentials, error) {
	const op = "storage/mongo/CredentialsByEmail"

	var out models.Credentials
	if err := m.credentials.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// RecordFailure инкрементирует счётчик неудачных входов; при достижении
// threshold выставляет locked_until = now + lockout и обнуляет счётчик.
// Инкремент и проверка порога идут в два шага: гонка может лишь заблокировать
// учётку на попытку раньше, но не позже.
func (m *Mongo) RecordFailure(ctx context.Context, localID string, threshold int32, lockout time.Duration) error {
	const op = "storage/mongo/RecordFailure"

	now := time.Now().UTC()

	res := m.credentials.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: localID}}, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "failed_attempts", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now}}},
	})

	var creds models.Credentials
	if err := res.Decode(&creds); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// FindOneAndUpdate вернул документ до инкремента.
	if creds.FailedAttempts+1 >= threshold {
		_, err := m.credentials.UpdateByID(ctx, localID, bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "failed_attempts", Value: 0},
				{Key: "locked_until", Value: now.Add(lockout)},
				{Key: "updated_at", Value: now},
			}},
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// ResetFailures сбрасывает счётчик и блокировку после успешного входа.
func (m *Mongo) ResetFailures(ctx context.Context, localID string) error {
	const op = "storage/mongo/ResetFailures"

	res, err := m.credentials.UpdateByID(ctx, localID, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "failed_attempts", Value: 0},
			{Key: "locked_until", Value: time.Time{}},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
