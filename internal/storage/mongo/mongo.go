// mongo реализует контракты storage поверх MongoDB.
// mongo.go — подключение, выбор БД и обеспечение индексов.
// users.go / images.go / credentials.go — операции над коллекциями.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pribylovaa/go-photo-gallery/internal/config"
)

const (
	usersCollection       = "users"
	imagesCollection      = "images"
	credentialsCollection = "credentials"
	defaultDBName         = "gallery"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg         *config.Config
	client      *mongodriver.Client
	db          *mongodriver.Database
	users       *mongodriver.Collection
	images      *mongodriver.Collection
	credentials *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.DB.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:         cfg,
		client:      cli,
		db:          db,
		users:       db.Collection(usersCollection),
		images:      db.Collection(imagesCollection),
		credentials: db.Collection(credentialsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые фото-сервису:
// - выборка картинок в порядке дочернего ключа user_id: user_id + _id;
// - выборка по категории: category + _id;
// - учётки: уникальный email.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	imageModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("user_id_asc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("category_asc"),
		},
	}

	if _, err := m.images.Indexes().CreateMany(ctx, imageModels); err != nil {
		return fmt.Errorf("mongo ensure image indexes: %w", err)
	}

	credModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
	}

	if _, err := m.credentials.Indexes().CreateMany(ctx, credModels); err != nil {
		return fmt.Errorf("mongo ensure credential indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся расшифровке, возвращает разумное значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
