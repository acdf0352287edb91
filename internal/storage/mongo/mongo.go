// Package mongo — реализация storage.Storage поверх MongoDB.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/songs-service/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	songsCollection = "songs"
	defaultDBName   = "songs"
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg    *config.Config
	client *mongodriver.Client
	db     *mongodriver.Database
	users  *mongodriver.Collection
	songs  *mongodriver.Collection
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
		cfg:    cfg,
		client: cli,
		db:     db,
		users:  db.Collection(usersCollection),
		songs:  db.Collection(songsCollection),
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

// Ping проверяет доступность базы; используется readiness-проверкой /healthz.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// ensureIndexes создаёт индексы, необходимые сервису:
//   - уникальные username и email у пользователей;
//   - поиск и выборки песен: owner + created_at(desc), owner + title, owner + artist.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	userModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	}

	if _, err := m.users.Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("mongo ensure user indexes: %w", err)
	}

	songModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("owner_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetName("owner_title"),
		},
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "artist", Value: 1}},
			Options: options.Index().SetName("owner_artist"),
		},
	}

	if _, err := m.songs.Indexes().CreateMany(ctx, songModels); err != nil {
		return fmt.Errorf("mongo ensure song indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
