package task

import (
	"github.com/mongodb/anser/bsonutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "tasks"

// Task is a to-do item attached to a subject for a given date.
type Task struct {
	Id          primitive.ObjectID `bson:"_id"`
	Description string             `bson:"description"`
	SubjectId   primitive.ObjectID `bson:"subjectId"`
	Date        string             `bson:"date"`
	Completed   bool               `bson:"completed"`
}

var (
	IdKey          = bsonutil.MustHaveTag(Task{}, "Id")
	DescriptionKey = bsonutil.MustHaveTag(Task{}, "Description")
	SubjectIdKey   = bsonutil.MustHaveTag(Task{}, "SubjectId")
	DateKey        = bsonutil.MustHaveTag(Task{}, "Date")
	CompletedKey   = bsonutil.MustHaveTag(Task{}, "Completed")
)

// Update holds the fields of a task to replace. Nil fields are left
// unchanged.
type Update struct {
	Description *string
	SubjectId   *primitive.ObjectID
	Date        *string
	Completed   *bool
}

func (u Update) IsEmpty() bool {
	return u.Description == nil && u.SubjectId == nil && u.Date == nil && u.Completed == nil
}

func (u Update) setDocument() bson.M {
	set := bson.M{}
	if u.Description != nil {
		set[DescriptionKey] = *u.Description
	}
	if u.SubjectId != nil {
		set[SubjectIdKey] = *u.SubjectId
	}
	if u.Date != nil {
		set[DateKey] = *u.Date
	}
	if u.Completed != nil {
		set[CompletedKey] = *u.Completed
	}
	return set
}

// Apply modifies t in place with the non-nil fields of the update.
func (u Update) Apply(t *Task) {
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.SubjectId != nil {
		t.SubjectId = *u.SubjectId
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
}
