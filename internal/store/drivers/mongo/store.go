package mongo

import (
	"context"

	"github.com/tripmates/userd/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const usersCollection = "users"

// Store is the MongoDB-backed implementation of store.Store.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to the given MongoDB URI and selects dbName.
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *Store) Users() store.Users {
	return &usersRepo{coll: s.db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Duplicate registrations that
// slip past the advisory pre-read fail here with a duplicate-key error,
// which the users repo maps to store.ErrAlreadyExists.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}
