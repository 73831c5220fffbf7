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

var _ storage.ImagesStorage = (*Mongo)(nil)

// limitOrDefault приводит запрошенный размер выдачи к [Default, Max].
func (m *Mongo) limitOrDefault(limit int32) int64 {
	lim := limit
	if lim <= 0 {
		lim = m.cfg.Limits.Default
	}

	if lim > m.cfg.Limits.Max {
		lim = m.cfg.Limits.Max
	}

	return int64(lim)
}

// findImages выполняет выборку с сортировкой и лимитом.
func (m *Mongo) findImages(ctx context.Context, op string, filter bson.D, sort bson.D, limit int32) ([]models.Image, error) {
	findOpts := options.Find().
		SetSort(sort).
		SetLimit(m.limitOrDefault(limit))

	cur, err := m.images.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Image
	for cur.Next(ctx) {
		var img models.Image
		if err := cur.Decode(&img); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, img)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// Images возвращает до limit картинок в порядке возрастания user_id
// (порядок дочернего ключа исходного иерархического хранилища).
// При непустом userID выборка сужается до точного совпадения user_id.
func (m *Mongo) Images(ctx context.Context, limit int32, userID string) ([]models.Image, error) {
	const op = "storage/mongo/Images"

	filter := bson.D{}
	if uid := strings.TrimSpace(userID); uid != "" {
		filter = append(filter, bson.E{Key: "user_id", Value: uid})
	}

	sort := bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: 1}}

	return m.findImages(ctx, op, filter, sort, limit)
}

// ImagesByCategory возвращает до limit картинок с точным совпадением категории.
func (m *Mongo) ImagesByCategory(ctx context.Context, category string, limit int32) ([]models.Image, error) {
	const op = "storage/mongo/ImagesByCategory"

	filter := bson.D{{Key: "category", Value: category}}
	sort := bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: 1}}

	return m.findImages(ctx, op, filter, sort, limit)
}

// ImageByID возвращает картинку по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) ImageByID(ctx context.Context, id string) (*models.Image, error) {
	const op = "storage/mongo/ImageByID"

	imageID := strings.TrimSpace(id)
	if imageID == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var out models.Image
	if err := m.images.FindOne(ctx, bson.D{{Key: "_id", Value: imageID}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// ReplaceImage целиком перезаписывает документ images/{image.ID} (upsert).
// Поля, не представленные в image, в документе не выживают — полная
// перезапись и есть контракт записи картинок.
func (m *Mongo) ReplaceImage(ctx context.Context, image *models.Image) error {
	const op = "storage/mongo/ReplaceImage"

	if image == nil || strings.TrimSpace(image.ID) == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := m.images.ReplaceOne(ctx, bson.D{{Key: "_id", Value: image.ID}}, image, opts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteImage удаляет документ картинки. Отсутствие записи ошибкой не считается:
// повторное удаление идемпотентно.
func (m *Mongo) DeleteImage(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteImage"

	imageID := strings.TrimSpace(id)
	if imageID == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if _, err := m.images.DeleteOne(ctx, bson.D{{Key: "_id", Value: imageID}}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
