package data

import (
	"context"

	"github.com/nutshell-app/nutshell"
	"github.com/nutshell-app/nutshell/db"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBConnector implements Connector against the environment's database.
type DBConnector struct {
	env nutshell.Environment
}

// NewDBConnector returns a connector that uses the database owned by env.
func NewDBConnector(env nutshell.Environment) *DBConnector {
	return &DBConnector{env: env}
}

func (dc *DBConnector) db() (*mongo.Database, error) {
	d := dc.env.DB()
	if d == nil {
		return nil, errors.New("database is not configured")
	}
	return d, nil
}

func (dc *DBConnector) Ping(ctx context.Context) error {
	d, err := dc.db()
	if err != nil {
		return err
	}
	return db.Ping(ctx, d)
}

// parseId converts a path identifier. A malformed identifier cannot match any
// record, so ok is false rather than an error being returned.
func parseId(id string) (oid primitive.ObjectID, ok bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}
