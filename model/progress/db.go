package progress

import (
	"context"

	"github.com/nutshell-app/nutshell/db"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert stores the progress entry, assigning it a new id if it does not
// have one.
func (p *Progress) Insert(ctx context.Context, d *mongo.Database) error {
	if p.Id.IsZero() {
		p.Id = primitive.NewObjectID()
	}

	return errors.Wrapf(db.Insert(ctx, d, Collection, p), "inserting progress entry '%s'", p.Id.Hex())
}

// FindAll returns every progress entry.
func FindAll(ctx context.Context, d *mongo.Database) ([]Progress, error) {
	out := []Progress{}
	if err := db.FindAll(ctx, d, Collection, bson.M{}, &out); err != nil {
		return nil, errors.Wrap(err, "finding all progress entries")
	}
	return out, nil
}

// FindOneId returns the progress entry with the given id, or nil if there is
// none.
func FindOneId(ctx context.Context, d *mongo.Database, id primitive.ObjectID) (*Progress, error) {
	p := &Progress{}
	err := db.FindOneId(ctx, d, Collection, id, p)
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding progress entry '%s'", id.Hex())
	}
	return p, nil
}

// UpdateOne applies the update to the progress entry with the given id and
// returns the updated entry, or nil if there is no such entry.
func UpdateOne(ctx context.Context, d *mongo.Database, id primitive.ObjectID, u Update) (*Progress, error) {
	if u.IsEmpty() {
		return FindOneId(ctx, d, id)
	}

	p := &Progress{}
	err := db.FindOneAndSet(ctx, d, Collection, id, u.setDocument(), p)
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating progress entry '%s'", id.Hex())
	}
	return p, nil
}

// Remove deletes the progress entry with the given id. If there is no such
// entry the returned error satisfies db.IsNotFound.
func Remove(ctx context.Context, d *mongo.Database, id primitive.ObjectID) error {
	return errors.Wrapf(db.RemoveId(ctx, d, Collection, id), "removing progress entry '%s'", id.Hex())
}
