package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// songDoc — схема документа коллекции songs.
type songDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Artist    string             `bson:"artist"`
	Owner     string             `bson:"owner"`
	Genre     string             `bson:"genre,omitempty"`
	Year      int                `bson:"year,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func (d songDoc) toModel() models.Song {
	s := models.Song{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Artist:    d.Artist,
		Owner:     d.Owner,
		Genre:     d.Genre,
		Year:      d.Year,
		CreatedAt: d.CreatedAt.UTC(),
	}

	if d.UpdatedAt != nil {
		s.UpdatedAt = d.UpdatedAt.UTC()
	}

	return s
}

// ownerFilter строит обязательный совместный фильтр (id, owner).
// Некорректный формат id трактуется как «нет такой записи».
func ownerFilter(id, owner string) (bson.D, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, storage.ErrNotFound
	}

	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "owner", Value: owner},
	}, nil
}

// CreateSong создаёт песню и возвращает её с проставленным ID.
func (m *Mongo) CreateSong(ctx context.Context, song models.Song) (*models.Song, error) {
	const op = "storage/mongo/CreateSong"

	doc := songDoc{
		Title:     song.Title,
		Artist:    song.Artist,
		Owner:     song.Owner,
		Genre:     song.Genre,
		Year:      song.Year,
		CreatedAt: toMS(time.Now()),
	}

	res, err := m.songs.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	song.ID = oid.Hex()
	song.CreatedAt = doc.CreatedAt
	return &song, nil
}

// SongByID возвращает песню по паре (id, owner); чужая или несуществующая
// запись -> storage.ErrNotFound.
func (m *Mongo) SongByID(ctx context.Context, id, owner string) (*models.Song, error) {
	const op = "storage/mongo/SongByID"

	filter, err := ownerFilter(id, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc songDoc
	if err := m.songs.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := doc.toModel()
	return &s, nil
}

// SongsByOwner возвращает коллекцию владельца, новые сверху.
func (m *Mongo) SongsByOwner(ctx context.Context, owner string) ([]models.Song, error) {
	const op = "storage/mongo/SongsByOwner"

	filter := bson.D{{Key: "owner", Value: owner}}
	return m.findSongs(ctx, op, filter)
}

// SearchSongs ищет по подстроке в title/artist внутри коллекции владельца.
// Запрос экранируется: спецсимволы regex трактуются буквально.
func (m *Mongo) SearchSongs(ctx context.Context, owner, query string) ([]models.Song, error) {
	const op = "storage/mongo/SearchSongs"

	re := primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(query)), Options: "i"}
	filter := bson.D{
		{Key: "owner", Value: owner},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "artist", Value: re}},
		}},
	}

	return m.findSongs(ctx, op, filter)
}

func (m *Mongo) findSongs(ctx context.Context, op string, filter bson.D) ([]models.Song, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := m.songs.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Song
	for cur.Next(ctx) {
		var doc songDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// UpdateSong сохраняет изменяемые поля по паре (ID, Owner).
func (m *Mongo) UpdateSong(ctx context.Context, song *models.Song) error {
	const op = "storage/mongo/UpdateSong"

	filter, err := ownerFilter(song.ID, song.Owner)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: song.Title},
		{Key: "artist", Value: song.Artist},
		{Key: "genre", Value: song.Genre},
		{Key: "year", Value: song.Year},
		{Key: "updated_at", Value: toMS(time.Now())},
	}}}

	res, err := m.songs.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteSong удаляет песню по паре (id, owner).
func (m *Mongo) DeleteSong(ctx context.Context, id, owner string) error {
	const op = "storage/mongo/DeleteSong"

	filter, err := ownerFilter(id, owner)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.songs.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteSongsByOwner удаляет всю коллекцию владельца. Отсутствие песен — не ошибка.
func (m *Mongo) DeleteSongsByOwner(ctx context.Context, owner string) error {
	const op = "storage/mongo/DeleteSongsByOwner"

	if _, err := m.songs.DeleteMany(ctx, bson.D{{Key: "owner", Value: owner}}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
