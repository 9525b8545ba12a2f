package db

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by repository lookups when no document matches.
var ErrNotFound = errors.New("db: document not found")

// Store holds the MongoDB client and the typed collection handles. It is
// constructed once at startup and injected into whoever needs persistence;
// there is no package-level client.
type Store struct {
	Client        *mongo.Client
	Users         *mongo.Collection
	Posts         *mongo.Collection
	Notifications *mongo.Collection
}

func Connect(ctx context.Context) (*Store, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database("chirpdb")
	return &Store{
		Client:        client,
		Users:         database.Collection("users"),
		Posts:         database.Collection("posts"),
		Notifications: database.Collection("notifications"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
