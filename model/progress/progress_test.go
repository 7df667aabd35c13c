package progress

import (
	"context"
	"testing"

	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/db"
	"github.com/nutshell-app/nutshell/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUpdateApply(t *testing.T) {
	subjectId := primitive.NewObjectID()
	p := Progress{SubjectId: subjectId, Date: "2024-01-01"}

	Update{Completed: utility.ToBoolPtr(true)}.Apply(&p)
	assert.True(t, p.Completed)
	assert.Equal(t, subjectId, p.SubjectId)
	assert.Equal(t, "2024-01-01", p.Date)
}

func TestUpdateSetDocument(t *testing.T) {
	assert.True(t, Update{}.IsEmpty())

	set := Update{Date: utility.ToStringPtr("2024-01-02"), Completed: utility.ToBoolPtr(false)}.setDocument()
	assert.Len(t, set, 2)
	assert.Equal(t, "2024-01-02", set[DateKey])
	assert.Equal(t, false, set[CompletedKey])
}

type progressSuite struct {
	suite.Suite
	ctx context.Context
	d   *mongo.Database
}

func TestProgressDB(t *testing.T) {
	suite.Run(t, &progressSuite{})
}

func (s *progressSuite) SetupSuite() {
	s.ctx = context.Background()
	s.d = testutil.NewEnvironment(s.ctx, s.T()).DB()
}

func (s *progressSuite) SetupTest() {
	s.Require().NoError(db.Clear(s.ctx, s.d, Collection))
}

func (s *progressSuite) TestInsertWithoutSubject() {
	p := &Progress{Date: "2024-01-01"}
	s.Require().NoError(p.Insert(s.ctx, s.d))

	found, err := FindOneId(s.ctx, s.d, p.Id)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.True(found.SubjectId.IsZero())
	s.Equal("2024-01-01", found.Date)
}

func (s *progressSuite) TestUpdateMissingLeavesStorageUnchanged() {
	p := &Progress{SubjectId: primitive.NewObjectID(), Date: "2024-01-01"}
	s.Require().NoError(p.Insert(s.ctx, s.d))

	updated, err := UpdateOne(s.ctx, s.d, primitive.NewObjectID(), Update{Completed: utility.ToBoolPtr(true)})
	s.NoError(err)
	s.Nil(updated)

	entries, err := FindAll(s.ctx, s.d)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(*p, entries[0])
}

func (s *progressSuite) TestUpdateOne() {
	p := &Progress{SubjectId: primitive.NewObjectID(), Date: "2024-01-01"}
	s.Require().NoError(p.Insert(s.ctx, s.d))

	updated, err := UpdateOne(s.ctx, s.d, p.Id, Update{Completed: utility.ToBoolPtr(true)})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.True(updated.Completed)
	s.Equal(p.SubjectId, updated.SubjectId)
	s.Equal(p.Date, updated.Date)
}

func (s *progressSuite) TestRemove() {
	p := &Progress{Date: "2024-01-01"}
	s.Require().NoError(p.Insert(s.ctx, s.d))

	s.NoError(Remove(s.ctx, s.d, p.Id))
	s.True(db.IsNotFound(Remove(s.ctx, s.d, p.Id)))
}

func (s *progressSuite) TestEmptyUpdateReturnsStoredEntry() {
	p := &Progress{Date: "2024-01-01", Completed: true}
	s.Require().NoError(p.Insert(s.ctx, s.d))

	found, err := UpdateOne(s.ctx, s.d, p.Id, Update{})
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(*p, *found)

	missing, err := UpdateOne(s.ctx, s.d, primitive.NewObjectID(), Update{})
	s.NoError(err)
	s.Nil(missing)
}
