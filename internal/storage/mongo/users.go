package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDoc — схема документа коллекции users.
// Пустые updated_at/last_login хранятся как отсутствующие поля (omitempty).
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	FirstName    string             `bson:"first_name,omitempty"`
	LastName     string             `bson:"last_name,omitempty"`
	TokenVersion int64              `bson:"token_version"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    *time.Time         `bson:"updated_at,omitempty"`
	LastLogin    *time.Time         `bson:"last_login,omitempty"`
}

// MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

func toUserDoc(u *models.User) (userDoc, error) {
	doc := userDoc{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		TokenVersion: u.TokenVersion,
		IsActive:     u.IsActive,
		CreatedAt:    toMS(u.CreatedAt),
	}

	if u.ID != "" {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(u.ID))
		if err != nil {
			return userDoc{}, fmt.Errorf("bad user id %q", u.ID)
		}
		doc.ID = oid
	}

	if !u.UpdatedAt.IsZero() {
		t := toMS(u.UpdatedAt)
		doc.UpdatedAt = &t
	}

	if !u.LastLogin.IsZero() {
		t := toMS(u.LastLogin)
		doc.LastLogin = &t
	}

	return doc, nil
}

func (d userDoc) toModel() models.User {
	u := models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		TokenVersion: d.TokenVersion,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt.UTC(),
	}

	if d.UpdatedAt != nil {
		u.UpdatedAt = d.UpdatedAt.UTC()
	}
	if d.LastLogin != nil {
		u.LastLogin = d.LastLogin.UTC()
	}

	return u
}

// CreateUser создаёт пользователя. Дубль username/email -> storage.ErrAlreadyExists.
func (m *Mongo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "storage/mongo/CreateUser"

	doc, err := toUserDoc(user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	doc.CreatedAt = toMS(time.Now())

	res, err := m.users.InsertOne(ctx, doc)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	out := *user
	out.ID = oid.Hex()
	out.CreatedAt = doc.CreatedAt
	return &out, nil
}

// UserByUsername находит пользователя по username; отсутствие -> storage.ErrNotFound.
func (m *Mongo) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage/mongo/UserByUsername"

	return m.findUser(ctx, op, bson.D{{Key: "username", Value: strings.TrimSpace(username)}})
}

// UserByEmail находит пользователя по email; отсутствие -> storage.ErrNotFound.
func (m *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage/mongo/UserByEmail"

	return m.findUser(ctx, op, bson.D{{Key: "email", Value: strings.TrimSpace(email)}})
}

func (m *Mongo) findUser(ctx context.Context, op string, filter bson.D) (*models.User, error) {
	var doc userDoc
	if err := m.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u := doc.toModel()
	return &u, nil
}

// UpdateUser сохраняет изменяемые поля записи по ID.
// token_version намеренно не трогаем: его меняет только BumpTokenVersion.
func (m *Mongo) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "storage/mongo/UpdateUser"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(user.ID))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	set := bson.D{
		{Key: "email", Value: user.Email},
		{Key: "password_hash", Value: user.PasswordHash},
		{Key: "first_name", Value: user.FirstName},
		{Key: "last_name", Value: user.LastName},
		{Key: "is_active", Value: user.IsActive},
	}

	if !user.UpdatedAt.IsZero() {
		set = append(set, bson.E{Key: "updated_at", Value: toMS(user.UpdatedAt)})
	}
	if !user.LastLogin.IsZero() {
		set = append(set, bson.E{Key: "last_login", Value: toMS(user.LastLogin)})
	}

	res, err := m.users.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteUser удаляет пользователя по username; отсутствие -> storage.ErrNotFound.
func (m *Mongo) DeleteUser(ctx context.Context, username string) error {
	const op = "storage/mongo/DeleteUser"

	res, err := m.users.DeleteOne(ctx, bson.D{{Key: "username", Value: strings.TrimSpace(username)}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListUsers возвращает всех пользователей (по дате регистрации, новые сверху).
func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage/mongo/ListUsers"

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := m.users.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.User
	for cur.Next(ctx) {
		var doc userDoc
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

// BumpTokenVersion — атомарная ротация версии refresh-токена.
// Условный апдейт по (username, token_version=expected); 0 совпадений
// означает, что версия уже ушла вперёд (конкурентный refresh или отзыв) —
// storage.ErrVersionConflict.
func (m *Mongo) BumpTokenVersion(ctx context.Context, username string, expected int64) (int64, error) {
	const op = "storage/mongo/BumpTokenVersion"

	filter := bson.D{
		{Key: "username", Value: strings.TrimSpace(username)},
		{Key: "token_version", Value: expected},
	}

	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "token_version", Value: int64(1)}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
	}

	res, err := m.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrVersionConflict)
	}

	return expected + 1, nil
}
