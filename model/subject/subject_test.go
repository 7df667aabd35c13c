package subject

import (
	"context"
	"testing"

	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/db"
	"github.com/nutshell-app/nutshell/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUpdateApply(t *testing.T) {
	s := Subject{Name: "Math", Lessons: []Lesson{{Id: 1, Name: "Sets"}}}

	Update{}.Apply(&s)
	assert.Equal(t, "Math", s.Name)
	assert.Len(t, s.Lessons, 1)

	Update{Name: utility.ToStringPtr("Physics")}.Apply(&s)
	assert.Equal(t, "Physics", s.Name)
	assert.Len(t, s.Lessons, 1)

	var lessons []Lesson
	Update{Lessons: &lessons}.Apply(&s)
	assert.NotNil(t, s.Lessons)
	assert.Empty(t, s.Lessons)
}

func TestUpdateSetDocument(t *testing.T) {
	assert.Empty(t, Update{}.setDocument())
	assert.True(t, Update{}.IsEmpty())

	set := Update{Name: utility.ToStringPtr("Math")}.setDocument()
	assert.Equal(t, "Math", set[NameKey])
	assert.NotContains(t, set, LessonsKey)
}

type subjectSuite struct {
	suite.Suite
	ctx context.Context
	d   *mongo.Database
}

func TestSubjectDB(t *testing.T) {
	suite.Run(t, &subjectSuite{})
}

func (s *subjectSuite) SetupSuite() {
	s.ctx = context.Background()
	s.d = testutil.NewEnvironment(s.ctx, s.T()).DB()
}

func (s *subjectSuite) SetupTest() {
	s.Require().NoError(db.Clear(s.ctx, s.d, Collection))
}

func (s *subjectSuite) TestInsertAndFindAll() {
	subj := &Subject{Name: "Math"}
	s.Require().NoError(subj.Insert(s.ctx, s.d))
	s.False(subj.Id.IsZero())

	subjects, err := FindAll(s.ctx, s.d)
	s.Require().NoError(err)
	s.Require().Len(subjects, 1)
	s.Equal("Math", subjects[0].Name)
	s.Equal(subj.Id, subjects[0].Id)
	s.NotNil(subjects[0].Lessons)
	s.Empty(subjects[0].Lessons)
}

func (s *subjectSuite) TestFindAllEmpty() {
	subjects, err := FindAll(s.ctx, s.d)
	s.NoError(err)
	s.NotNil(subjects)
	s.Empty(subjects)
}

func (s *subjectSuite) TestFindOneIdMissing() {
	subj, err := FindOneId(s.ctx, s.d, primitive.NewObjectID())
	s.NoError(err)
	s.Nil(subj)
}

func (s *subjectSuite) TestUpdateOne() {
	subj := &Subject{Name: "Math", Lessons: []Lesson{{Id: 1, Name: "Sets"}}}
	s.Require().NoError(subj.Insert(s.ctx, s.d))

	lessons := []Lesson{{Id: 1, Name: "Sets", Completed: true}, {Id: 2, Name: "Groups"}}
	updated, err := UpdateOne(s.ctx, s.d, subj.Id, Update{Lessons: &lessons})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal("Math", updated.Name)
	s.Equal(lessons, updated.Lessons)

	unchanged, err := UpdateOne(s.ctx, s.d, subj.Id, Update{})
	s.Require().NoError(err)
	s.Require().NotNil(unchanged)
	s.Equal(updated, unchanged)

	missing, err := UpdateOne(s.ctx, s.d, primitive.NewObjectID(), Update{Name: utility.ToStringPtr("x")})
	s.NoError(err)
	s.Nil(missing)
}

func (s *subjectSuite) TestRemove() {
	subj := &Subject{Name: "Math"}
	s.Require().NoError(subj.Insert(s.ctx, s.d))

	s.NoError(Remove(s.ctx, s.d, subj.Id))
	err := Remove(s.ctx, s.d, subj.Id)
	s.Error(err)
	s.True(db.IsNotFound(err))

	found, err := FindOneId(s.ctx, s.d, subj.Id)
	s.NoError(err)
	s.Nil(found)
}

func TestKeys(t *testing.T) {
	require.Equal(t, "_id", IdKey)
	assert.Equal(t, "name", NameKey)
	assert.Equal(t, "lessons", LessonsKey)
}
