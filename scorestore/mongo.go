package scorestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoTimeout = 5 * time.Second

// scoreDocument is the stored form of a player's high score.
type scoreDocument struct {
	Player    string    `bson:"_id"`
	Score     int       `bson:"score"`
	Session   string    `bson:"session"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo keeps one high score document per player in a MongoDB collection.
type Mongo struct {
	col     *mongo.Collection
	player  string
	session string
}

// NewMongo creates a store for player's score in col. Every Save from this
// store is stamped with the same random session id.
func NewMongo(col *mongo.Collection, player string) *Mongo {
	return &Mongo{
		col:     col,
		player:  player,
		session: uuid.NewString(),
	}
}

// ConnectMongo dials uri, checks the server responds and returns a store for
// player in database db and collection coll. The returned client must be
// disconnected by the caller.
func ConnectMongo(ctx context.Context, uri, db, coll, player string) (*Mongo, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo.Connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	return NewMongo(client.Database(db).Collection(coll), player), client, nil
}

// Session returns the id written with every Save.
func (m *Mongo) Session() string {
	return m.session
}

// Load returns the player's stored score, or 0 if there is none.
func (m *Mongo) Load() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	var doc scoreDocument
	err := m.col.FindOne(ctx, bson.D{{Key: "_id", Value: m.player}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find score: %w", err)
	}
	return doc.Score, nil
}

// Save records score for the player. The stored score only ever goes up, so
// two games finishing at once keep the better result.
func (m *Mongo) Save(score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	update := bson.D{
		{Key: "$max", Value: bson.D{{Key: "score", Value: score}}},
		{Key: "$set", Value: bson.D{
			{Key: "session", Value: m.session},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	}
	filter := bson.D{{Key: "_id", Value: m.player}}
	if _, err := m.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	return nil
}
