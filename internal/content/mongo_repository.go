package content

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const documentKey = "site-content"

// MongoRepository implements Repository against a Mongo collection, storing the
// whole document as a single keyed record. The coarse read-modify-write model
// is unchanged: Save replaces the record in full and the last write wins.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

type contentRecord struct {
	ID  string   `bson:"_id"`
	Doc Document `bson:"doc"`
}

func (r *MongoRepository) Load(ctx context.Context) (*Document, error) {
	var rec contentRecord
	if err := r.col.FindOne(ctx, bson.M{"_id": documentKey}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: no %q record", ErrNotFound, documentKey)
		}
		return nil, fmt.Errorf("load content record: %w", err)
	}
	return &rec.Doc, nil
}

func (r *MongoRepository) Save(ctx context.Context, doc *Document) error {
	rec := contentRecord{ID: documentKey, Doc: *doc}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": documentKey}, rec, opts); err != nil {
		return fmt.Errorf("save content record: %w", err)
	}
	return nil
}
