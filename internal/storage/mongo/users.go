package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

// Проверка выполнения контракта верхнего уровня.
var _ storage.UsersStorage = (*Mongo)(nil)

// UserByID возвращает пользователя по localId.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) UserByID(ctx context.Context, localID string) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	id := strings.TrimSpace(localID)
	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var out models.User
	if err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// likes в старых документах может отсутствовать.
	if out.Likes == nil {
		out.Likes = []string{}
	}

	return &out, nil
}

// ReplaceUser целиком записывает документ пользователя по user.LocalID.
// Документ создаётся, если его ещё нет (регистрация).
func (m *Mongo) ReplaceUser(ctx context.Context, user *models.User) error {
	const op = "storage/mongo/ReplaceUser"

	if user == nil || strings.TrimSpace(user.LocalID) == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := m.users.ReplaceOne(ctx, bson.D{{Key: "_id", Value: user.LocalID}}, user, opts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MergeUser сливает поля user в существующий документ по user.LocalID ($set).
// Поля документа, не представленные в user, сохраняются как есть — это
// примитива merge, в отличие от полной перезаписи ReplaceUser.
func (m *Mongo) MergeUser(ctx context.Context, user *models.User) error {
	const op = "storage/mongo/MergeUser"

	if user == nil || strings.TrimSpace(user.LocalID) == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	likes := user.Likes
	if likes == nil {
		likes = []string{}
	}

	set := bson.D{
		{Key: "email", Value: user.Email},
		{Key: "first_name", Value: user.FirstName},
		{Key: "last_name", Value: user.LastName},
		{Key: "avatar", Value: user.Avatar},
		{Key: "likes", Value: likes},
	}

	res, err := m.users.UpdateByID(ctx, user.LocalID, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
