package models

import "time"

// Credentials — учётная запись identity-провайдера.
// Хранится отдельно от профиля пользователя (коллекция credentials):
// профиль — публичные данные, учётка — секреты и состояние блокировки.
type Credentials struct {
	LocalID        string    `bson:"_id"`
	Email          string    `bson:"email"`
	PasswordHash   string    `bson:"password_hash"`
	Disabled       bool      `bson:"disabled"`
	FailedAttempts int32     `bson:"failed_attempts"`
	LockedUntil    time.Time `bson:"locked_until"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}
