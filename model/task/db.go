package task

import (
	"context"

	"github.com/nutshell-app/nutshell/db"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert stores the task, assigning it a new id if it does not have one.
func (t *Task) Insert(ctx context.Context, d *mongo.Database) error {
	if t.Id.IsZero() {
		t.Id = primitive.NewObjectID()
	}

	return errors.Wrapf(db.Insert(ctx, d, Collection, t), "inserting task '%s'", t.Id.Hex())
}

// FindAll returns every task.
func FindAll(ctx context.Context, d *mongo.Database) ([]Task, error) {
	out := []Task{}
	if err := db.FindAll(ctx, d, Collection, bson.M{}, &out); err != nil {
		return nil, errors.Wrap(err, "finding all tasks")
	}
	return out, nil
}

// FindOneId returns the task with the given id, or nil if there is none.
func FindOneId(ctx context.Context, d *mongo.Database, id primitive.ObjectID) (*Task, error) {
	t := &Task{}
	err := db.FindOneId(ctx, d, Collection, id, t)
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding task '%s'", id.Hex())
	}
	return t, nil
}

// UpdateOne applies the update to the task with the given id and returns the
// updated task, or nil if there is no such task.
func UpdateOne(ctx context.Context, d *mongo.Database, id primitive.ObjectID, u Update) (*Task, error) {
	if u.IsEmpty() {
		return FindOneId(ctx, d, id)
	}

	t := &Task{}
	err := db.FindOneAndSet(ctx, d, Collection, id, u.setDocument(), t)
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating task '%s'", id.Hex())
	}
	return t, nil
}

// Remove deletes the task with the given id. If there is no such task the
// returned error satisfies db.IsNotFound.
func Remove(ctx context.Context, d *mongo.Database, id primitive.ObjectID) error {
	return errors.Wrapf(db.RemoveId(ctx, d, Collection, id), "removing task '%s'", id.Hex())
}
