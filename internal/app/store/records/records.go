// internal/app/store/records/records.go
package records

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection wraps a mongo collection with the access patterns the
// entity stores share: insert, fetch by id, newest-first listing, and
// single-document field updates. Entity stores own validation and
// default-filling; Collection owns the driver plumbing.
type Collection[T any] struct {
	c *mongo.Collection
}

func New[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{c: db.Collection(name)}
}

// Raw exposes the underlying collection for index management.
func (co *Collection[T]) Raw() *mongo.Collection { return co.c }

func (co *Collection[T]) Insert(ctx context.Context, doc T) error {
	_, err := co.c.InsertOne(ctx, doc)
	return err
}

// GetByID returns mongo.ErrNoDocuments when no document matches.
func (co *Collection[T]) GetByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var out T
	err := co.c.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Find returns all documents matching filter with optional find options.
func (co *Collection[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cur, err := co.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListNewest returns documents matching filter ordered by created_at
// descending, the order every listing in the app uses.
func (co *Collection[T]) ListNewest(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return co.Find(ctx, filter, opts)
}

// UpdateFields applies a $set of the given fields to one document.
// Returns mongo.ErrNoDocuments when the id does not match anything.
func (co *Collection[T]) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if len(set) == 0 {
		return nil
	}
	res, err := co.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetStatus overwrites the document's status field. Any value from the
// collection's vocabulary is accepted regardless of the current value.
func (co *Collection[T]) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return co.UpdateFields(ctx, id, bson.M{"status": status})
}

// Delete removes one document and returns the deleted count (0 or 1).
func (co *Collection[T]) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := co.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (co *Collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return co.c.CountDocuments(ctx, filter)
}

// Now returns the rounded UTC timestamp stores stamp documents with.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
