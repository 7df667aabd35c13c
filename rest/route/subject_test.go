package route

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evergreen-ci/gimlet"
	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/model/subject"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/nutshell-app/nutshell/rest/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubjectRouteSuite struct {
	sc  *data.MockConnector
	ctx context.Context
	id  primitive.ObjectID

	suite.Suite
}

func TestSubjectRouteSuite(t *testing.T) {
	suite.Run(t, new(SubjectRouteSuite))
}

func (s *SubjectRouteSuite) SetupTest() {
	s.ctx = context.Background()
	s.id = primitive.NewObjectID()
	s.sc = &data.MockConnector{
		CachedSubjects: []subject.Subject{
			{Id: s.id, Name: "Math", Lessons: []subject.Lesson{{Id: 1, Name: "Sets"}}},
		},
	}
}

func (s *SubjectRouteSuite) TestGetAll() {
	h := makeFetchSubjects(s.sc).Factory()
	s.NoError(h.Parse(s.ctx, httptest.NewRequest(http.MethodGet, "/api/subjects", nil)))

	resp := h.Run(s.ctx)
	s.Equal(http.StatusOK, resp.Status())
	subjects, ok := resp.Data().([]model.APISubject)
	s.Require().True(ok)
	s.Require().Len(subjects, 1)
	s.Equal(s.id.Hex(), utility.FromStringPtr(subjects[0].Id))
}

func (s *SubjectRouteSuite) TestGetAllStorageError() {
	s.sc.StoredError = errors.New("connection refused")
	h := makeFetchSubjects(s.sc)

	resp := h.Run(s.ctx)
	s.Equal(http.StatusInternalServerError, resp.Status())
}

func (s *SubjectRouteSuite) TestCreate() {
	h := makeCreateSubject(s.sc).Factory()
	body := []byte(`{"name": "Physics", "lessons": []}`)
	s.NoError(h.Parse(s.ctx, httptest.NewRequest(http.MethodPost, "/api/subjects", bytes.NewReader(body))))

	resp := h.Run(s.ctx)
	s.Equal(http.StatusOK, resp.Status())
	created, ok := resp.Data().(*model.APISubject)
	s.Require().True(ok)
	s.Equal("Physics", utility.FromStringPtr(created.Name))
	s.Len(s.sc.CachedSubjects, 2)
}

func (s *SubjectRouteSuite) TestCreateMalformedBody() {
	h := makeCreateSubject(s.sc).Factory()
	err := h.Parse(s.ctx, httptest.NewRequest(http.MethodPost, "/api/subjects", bytes.NewReader([]byte(`{"name":`))))
	s.Error(err)
}

func (s *SubjectRouteSuite) TestUpdate() {
	h := makeUpdateSubject(s.sc).Factory()
	req := httptest.NewRequest(http.MethodPut, "/api/subjects/"+s.id.Hex(), bytes.NewReader([]byte(`{"name": "Algebra"}`)))
	req = gimlet.SetURLVars(req, map[string]string{"id": s.id.Hex()})
	s.Require().NoError(h.Parse(s.ctx, req))

	resp := h.Run(s.ctx)
	s.Equal(http.StatusOK, resp.Status())
	updated, ok := resp.Data().(*model.APISubject)
	s.Require().True(ok)
	s.Equal("Algebra", utility.FromStringPtr(updated.Name))
	s.Len(updated.Lessons, 1)
}

func (s *SubjectRouteSuite) TestUpdateNotFound() {
	h := makeUpdateSubject(s.sc).Factory()
	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodPut, "/api/subjects/"+id, bytes.NewReader([]byte(`{"name": "Algebra"}`)))
	req = gimlet.SetURLVars(req, map[string]string{"id": id})
	s.Require().NoError(h.Parse(s.ctx, req))

	resp := h.Run(s.ctx)
	s.Equal(http.StatusNotFound, resp.Status())
	s.Equal("Math", s.sc.CachedSubjects[0].Name)
}

func (s *SubjectRouteSuite) TestDeleteTwice() {
	for _, expected := range []int{http.StatusOK, http.StatusNotFound} {
		h := makeDeleteSubject(s.sc).Factory()
		req := httptest.NewRequest(http.MethodDelete, "/api/subjects/"+s.id.Hex(), nil)
		req = gimlet.SetURLVars(req, map[string]string{"id": s.id.Hex()})
		s.Require().NoError(h.Parse(s.ctx, req))

		resp := h.Run(s.ctx)
		s.Equal(expected, resp.Status())
	}
	s.Empty(s.sc.CachedSubjects)
}

func (s *SubjectRouteSuite) TestDeleteMessage() {
	h := &subjectDeleteHandler{id: s.id.Hex(), sc: s.sc}
	resp := h.Run(s.ctx)
	s.Require().Equal(http.StatusOK, resp.Status())

	out, err := json.Marshal(resp.Data())
	s.Require().NoError(err)
	s.JSONEq(`{"message": "Subject deleted"}`, string(out))
}
