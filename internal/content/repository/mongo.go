package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentID is the _id of the single stored content document.
const documentID = "site"

type mongoRecord struct {
	ID               string `bson:"_id"`
	content.Document `bson:",inline"`
}

// MongoRepo implements a MongoDB-backed repository. The whole document is
// one record replaced on every save.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Load(ctx context.Context) (*content.Document, error) {
	var rec mongoRecord
	err := m.col.FindOne(ctx, bson.M{"_id": documentID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find content: %w", err)
	}
	doc := rec.Document
	doc.Normalize()
	return &doc, nil
}

func (m *MongoRepo) Save(ctx context.Context, doc *content.Document) error {
	rec := mongoRecord{ID: documentID, Document: *doc}
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": documentID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace content: %w", err)
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
