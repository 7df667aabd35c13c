package db

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	collectionAttribute = "nutshell.db.collection"
	operationAttribute  = "nutshell.db.operation"
)

func annotateSpan(ctx context.Context, collection, operation string) {
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String(collectionAttribute, collection),
		attribute.String(operationAttribute, operation),
	)
}

func byId(id any) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// Insert inserts the specified item into the specified collection.
func Insert(ctx context.Context, d *mongo.Database, collection string, item any) error {
	annotateSpan(ctx, collection, "insert")

	_, err := d.Collection(collection).InsertOne(ctx, item)
	return errors.Wrapf(errors.WithStack(err), "inserting document into '%s'", collection)
}

// FindAll runs the query against the collection and decodes every matching
// document into out, which must be a pointer to a slice. Documents are
// returned in the server's natural order.
func FindAll(ctx context.Context, d *mongo.Database, collection string, query any, out any) error {
	annotateSpan(ctx, collection, "find")

	cur, err := d.Collection(collection).Find(ctx, query)
	if err != nil {
		return errors.Wrapf(err, "finding documents in '%s'", collection)
	}

	return errors.Wrapf(cur.All(ctx, out), "decoding documents from '%s'", collection)
}

// FindOneId decodes the document with the given _id into out. If there is
// no such document the returned error satisfies IsNotFound.
func FindOneId(ctx context.Context, d *mongo.Database, collection string, id any, out any) error {
	annotateSpan(ctx, collection, "find_one")

	err := d.Collection(collection).FindOne(ctx, byId(id)).Decode(out)
	return errors.Wrapf(err, "finding document in '%s'", collection)
}

// FindOneAndSet applies a $set of the given fields to the document with the
// given _id and decodes the updated document into out. The set must not be
// empty. If there is no such document the returned error satisfies
// IsNotFound.
func FindOneAndSet(ctx context.Context, d *mongo.Database, collection string, id any, set bson.M, out any) error {
	if len(set) == 0 {
		return errors.Errorf("no fields to set on document in '%s'", collection)
	}

	annotateSpan(ctx, collection, "find_one_and_update")

	res := d.Collection(collection).FindOneAndUpdate(ctx,
		byId(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	return errors.Wrapf(res.Decode(out), "updating document in '%s'", collection)
}

// RemoveId deletes the document with the given _id. If there is no such
// document the returned error satisfies IsNotFound.
func RemoveId(ctx context.Context, d *mongo.Database, collection string, id any) error {
	annotateSpan(ctx, collection, "delete")

	res, err := d.Collection(collection).DeleteOne(ctx, byId(id))
	if err != nil {
		return errors.Wrapf(err, "deleting document from '%s'", collection)
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(mongo.ErrNoDocuments, "deleting document from '%s'", collection)
	}

	return nil
}

// Ping checks that the primary is reachable.
func Ping(ctx context.Context, d *mongo.Database) error {
	return errors.Wrap(d.Client().Ping(ctx, readpref.Primary()), "pinging database")
}

// =============================================
// ============ Test only functions ============
// =============================================

// Clear removes all documents from a specified collection.
func Clear(ctx context.Context, d *mongo.Database, collection string) error {
	_, err := d.Collection(collection).DeleteMany(ctx, bson.M{})
	return errors.Wrapf(err, "clearing collection '%s'", collection)
}

// ClearCollections clears all documents from all the specified collections,
// returning an error immediately if clearing any one of them fails.
func ClearCollections(ctx context.Context, d *mongo.Database, collections ...string) error {
	for _, collection := range collections {
		if err := Clear(ctx, d, collection); err != nil {
			return err
		}
	}

	return nil
}
