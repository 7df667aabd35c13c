package progress

import (
	"github.com/mongodb/anser/bsonutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "progresses"

// Progress records whether a subject was worked on for a given date. The
// SubjectId is not checked against the subjects collection.
type Progress struct {
	Id        primitive.ObjectID `bson:"_id"`
	SubjectId primitive.ObjectID `bson:"subjectId,omitempty"`
	Date      string             `bson:"date"`
	Completed bool               `bson:"completed"`
}

var (
	IdKey        = bsonutil.MustHaveTag(Progress{}, "Id")
	SubjectIdKey = bsonutil.MustHaveTag(Progress{}, "SubjectId")
	DateKey      = bsonutil.MustHaveTag(Progress{}, "Date")
	CompletedKey = bsonutil.MustHaveTag(Progress{}, "Completed")
)

// Update holds the fields of a progress entry to replace. Nil fields are left
// unchanged.
type Update struct {
	SubjectId *primitive.ObjectID
	Date      *string
	Completed *bool
}

func (u Update) IsEmpty() bool {
	return u.SubjectId == nil && u.Date == nil && u.Completed == nil
}

func (u Update) setDocument() bson.M {
	set := bson.M{}
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

// Apply modifies p in place with the non-nil fields of the update.
func (u Update) Apply(p *Progress) {
	if u.SubjectId != nil {
		p.SubjectId = *u.SubjectId
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
	if u.Completed != nil {
		p.Completed = *u.Completed
	}
}
