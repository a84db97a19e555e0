package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvDocument struct {
	Key       string     `bson:"_id"`
	Value     string     `bson:"value"`
	ExpiresAt *time.Time `bson:"expiresAt,omitempty"`
	UpdatedAt time.Time  `bson:"updatedAt"`
}

// MongoStore stores each key as one document of the kv collection.
type MongoStore struct {
	col *mongo.Collection
	now func() time.Time
}

func NewMongo(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col, now: time.Now}
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}

func (m *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc kvDocument
	if err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}
	// The TTL monitor runs about once a minute, so expired documents can still be read.
	if doc.ExpiresAt != nil && !doc.ExpiresAt.After(m.now()) {
		return nil, false, nil
	}
	return []byte(doc.Value), true, nil
}

func (m *MongoStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := m.now()
	set := bson.M{
		"value":     string(value),
		"updatedAt": now,
	}
	update := bson.M{"$set": set}
	if ttl > 0 {
		set["expiresAt"] = now.Add(ttl)
	} else {
		update["$unset"] = bson.M{"expiresAt": ""}
	}
	_, err := m.col.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	return err
}

func (m *MongoStore) Delete(ctx context.Context, key string) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
