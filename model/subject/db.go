package subject

import (
	"context"

	"github.com/nutshell-app/nutshell/db"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert stores the subject, assigning it a new id if it does not have one.
func (s *Subject) Insert(ctx context.Context, d *mongo.Database) error {
	if s.Id.IsZero() {
		s.Id = primitive.NewObjectID()
	}
	s.Lessons = normalizeLessons(s.Lessons)

	return errors.Wrapf(db.Insert(ctx, d, Collection, s), "inserting subject '%s'", s.Id.Hex())
}

// FindAll returns every subject.
func FindAll(ctx context.Context, d *mongo.Database) ([]Subject, error) {
	out := []Subject{}
	if err := db.FindAll(ctx, d, Collection, bson.M{}, &out); err != nil {
		return nil, errors.Wrap(err, "finding all subjects")
	}
	return out, nil
}

// FindOneId returns the subject with the given id, or nil if there is none.
func FindOneId(ctx context.Context, d *mongo.Database, id primitive.ObjectID) (*Subject, error) {
	s := &Subject{}
	err := db.FindOneId(ctx, d, Collection, id, s)
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding subject '%s'", id.Hex())
	}
	return s, nil
}

// UpdateOne applies the update to the subject with the given id and returns
// the updated subject, or nil if there is no such subject.
func UpdateOne(ctx context.Context, d *mongo.Database, id primitive.ObjectID, u Update) (*Subject, error) {
	if u.IsEmpty() {
		return FindOneId(ctx, d, id)
	}

	s := &Subject{}
	err := db.FindOneAndSet(ctx, d, Collection, id, u.setDocument(), s)
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating subject '%s'", id.Hex())
	}
	return s, nil
}

// Remove deletes the subject with the given id. If there is no such subject
// the returned error satisfies db.IsNotFound.
func Remove(ctx context.Context, d *mongo.Database, id primitive.ObjectID) error {
	return errors.Wrapf(db.RemoveId(ctx, d, Collection, id), "removing subject '%s'", id.Hex())
}
