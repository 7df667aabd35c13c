package model

import (
	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/model/subject"
)

type APISubject struct {
	Id      *string     `json:"_id"`
	Name    *string     `json:"name"`
	Lessons []APILesson `json:"lessons"`
}

type APILesson struct {
	Id        *int    `json:"id"`
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}

// BuildFromService converts from a service level subject.Subject to an
// APISubject.
func (s *APISubject) BuildFromService(v subject.Subject) {
	s.Id = utility.ToStringPtr(v.Id.Hex())
	s.Name = utility.ToStringPtr(v.Name)
	s.Lessons = make([]APILesson, 0, len(v.Lessons))
	for _, l := range v.Lessons {
		lesson := APILesson{}
		lesson.BuildFromService(l)
		s.Lessons = append(s.Lessons, lesson)
	}
}

// ToService returns a new service level subject. The id is left for the
// database layer to assign.
func (s *APISubject) ToService() subject.Subject {
	return subject.Subject{
		Name:    utility.FromStringPtr(s.Name),
		Lessons: s.lessonsToService(),
	}
}

// ToUpdate returns an update containing only the fields set on s.
func (s *APISubject) ToUpdate() subject.Update {
	u := subject.Update{Name: s.Name}
	if s.Lessons != nil {
		lessons := s.lessonsToService()
		u.Lessons = &lessons
	}

	return u
}

func (s *APISubject) lessonsToService() []subject.Lesson {
	lessons := make([]subject.Lesson, 0, len(s.Lessons))
	for _, l := range s.Lessons {
		lessons = append(lessons, l.ToService())
	}
	return lessons
}

func (l *APILesson) BuildFromService(v subject.Lesson) {
	l.Id = utility.ToIntPtr(v.Id)
	l.Name = utility.ToStringPtr(v.Name)
	l.Completed = utility.ToBoolPtr(v.Completed)
}

func (l *APILesson) ToService() subject.Lesson {
	return subject.Lesson{
		Id:        utility.FromIntPtr(l.Id),
		Name:      utility.FromStringPtr(l.Name),
		Completed: utility.FromBoolPtr(l.Completed),
	}
}
