package scorestore

import (
	"context"
	"fmt"
)

// Store is a place to keep the highest score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// Config chooses and configures a Store.
type Config struct {
	// File is the score file. Empty means an in-memory store.
	File string
	// MongoURI selects a Mongo store when not empty; File is then ignored.
	MongoURI        string
	MongoDB         string
	MongoCollection string
	Player          string
}

// Open returns the store described by cfg and a function that releases it.
func Open(ctx context.Context, cfg Config) (Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	switch {
	case cfg.MongoURI != "":
		store, client, err := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection, cfg.Player)
		if err != nil {
			return nil, nil, fmt.Errorf("ConnectMongo: %w", err)
		}
		return store, client.Disconnect, nil
	case cfg.File != "":
		return NewFile(cfg.File), noop, nil
	}
	return NewMemory(0), noop, nil
}
