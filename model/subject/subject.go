package subject

import (
	"github.com/mongodb/anser/bsonutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "subjects"

// Subject is a course of study made up of an ordered list of lessons.
type Subject struct {
	Id      primitive.ObjectID `bson:"_id"`
	Name    string             `bson:"name"`
	Lessons []Lesson           `bson:"lessons"`
}

// Lesson is a single unit of a subject. The Id is chosen by the client and
// is only meaningful within its subject.
type Lesson struct {
	Id        int    `bson:"id"`
	Name      string `bson:"name"`
	Completed bool   `bson:"completed"`
}

var (
	IdKey      = bsonutil.MustHaveTag(Subject{}, "Id")
	NameKey    = bsonutil.MustHaveTag(Subject{}, "Name")
	LessonsKey = bsonutil.MustHaveTag(Subject{}, "Lessons")
)

// Update holds the fields of a subject to replace. Nil fields are left
// unchanged.
type Update struct {
	Name    *string
	Lessons *[]Lesson
}

// IsEmpty returns true if the update does not change anything.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Lessons == nil
}

func (u Update) setDocument() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set[NameKey] = *u.Name
	}
	if u.Lessons != nil {
		set[LessonsKey] = normalizeLessons(*u.Lessons)
	}
	return set
}

// Apply modifies s in place with the non-nil fields of the update.
func (u Update) Apply(s *Subject) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Lessons != nil {
		s.Lessons = normalizeLessons(*u.Lessons)
	}
}

// normalizeLessons ensures lessons are stored as an empty array rather than
// null.
func normalizeLessons(lessons []Lesson) []Lesson {
	if lessons == nil {
		return []Lesson{}
	}
	return lessons
}
