package mongoclient

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/package-crud/cmd/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database string
)

// New connects to MongoDB using provided configuration and verifies connectivity.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.GetMongoURI()).
		SetMaxPoolSize(cfg.Mongo.MaxPoolSize)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("unable to connect mongo at %s:%d: %w", cfg.Mongo.Host, cfg.Mongo.Port, err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("unable to ping mongo at %s:%d: %w", cfg.Mongo.Host, cfg.Mongo.Port, err)
	}

	client = c
	database = cfg.Mongo.Database
	return nil
}

// Database returns the configured database handle
func Database() *mongo.Database {
	if client == nil {
		return nil
	}
	return client.Database(database)
}

func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
