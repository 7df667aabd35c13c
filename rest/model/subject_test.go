package model

import (
	"testing"

	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/model/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAPISubjectBuildFromService(t *testing.T) {
	s := subject.Subject{
		Id:      primitive.NewObjectID(),
		Name:    "Math",
		Lessons: []subject.Lesson{{Id: 1, Name: "Sets", Completed: true}},
	}

	api := APISubject{}
	api.BuildFromService(s)
	assert.Equal(t, s.Id.Hex(), utility.FromStringPtr(api.Id))
	assert.Equal(t, "Math", utility.FromStringPtr(api.Name))
	require.Len(t, api.Lessons, 1)
	assert.Equal(t, 1, utility.FromIntPtr(api.Lessons[0].Id))
	assert.True(t, utility.FromBoolPtr(api.Lessons[0].Completed))

	api.BuildFromService(subject.Subject{Id: s.Id, Name: "Empty"})
	assert.NotNil(t, api.Lessons)
	assert.Empty(t, api.Lessons)
}

func TestAPISubjectToUpdate(t *testing.T) {
	t.Run("NoFields", func(t *testing.T) {
		api := APISubject{}
		assert.True(t, api.ToUpdate().IsEmpty())
	})
	t.Run("EmptyLessonsReplaceList", func(t *testing.T) {
		api := APISubject{Lessons: []APILesson{}}
		u := api.ToUpdate()
		require.NotNil(t, u.Lessons)
		assert.Empty(t, *u.Lessons)
		assert.Nil(t, u.Name)
	})
	t.Run("NameOnly", func(t *testing.T) {
		api := APISubject{Name: utility.ToStringPtr("Physics")}
		u := api.ToUpdate()
		assert.Equal(t, "Physics", utility.FromStringPtr(u.Name))
		assert.Nil(t, u.Lessons)
	})
}

func TestAPISubjectToService(t *testing.T) {
	api := APISubject{
		Id:   utility.ToStringPtr("ignored"),
		Name: utility.ToStringPtr("Math"),
		Lessons: []APILesson{
			{Id: utility.ToIntPtr(2), Name: utility.ToStringPtr("Groups")},
		},
	}

	s := api.ToService()
	assert.True(t, s.Id.IsZero())
	assert.Equal(t, "Math", s.Name)
	assert.Equal(t, []subject.Lesson{{Id: 2, Name: "Groups"}}, s.Lessons)
}
