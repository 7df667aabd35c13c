package route

import (
	"context"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/nutshell-app/nutshell/rest/model"
)

const subjectResource = "Subject"

///////////////////////////////////////////////////////////////////////
//
// GET /api/subjects

type subjectsGetHandler struct {
	sc data.Connector
}

func makeFetchSubjects(sc data.Connector) gimlet.RouteHandler {
	return &subjectsGetHandler{sc: sc}
}

// Factory creates an instance of the handler.
func (h *subjectsGetHandler) Factory() gimlet.RouteHandler {
	return &subjectsGetHandler{sc: h.sc}
}

func (h *subjectsGetHandler) Parse(ctx context.Context, r *http.Request) error { return nil }

// Run returns every subject.
func (h *subjectsGetHandler) Run(ctx context.Context) gimlet.Responder {
	subjects, err := h.sc.FindAllSubjects(ctx)
	if err != nil {
		return internalError(ctx, err, "fetching subjects")
	}

	return gimlet.NewJSONResponse(subjects)
}

///////////////////////////////////////////////////////////////////////
//
// POST /api/subjects

type subjectPostHandler struct {
	subject model.APISubject
	sc      data.Connector
}

func makeCreateSubject(sc data.Connector) gimlet.RouteHandler {
	return &subjectPostHandler{sc: sc}
}

func (h *subjectPostHandler) Factory() gimlet.RouteHandler {
	return &subjectPostHandler{sc: h.sc}
}

func (h *subjectPostHandler) Parse(ctx context.Context, r *http.Request) error {
	return readBody(r, &h.subject, "subject")
}

// Run stores the subject and returns it with its new id.
func (h *subjectPostHandler) Run(ctx context.Context) gimlet.Responder {
	created, err := h.sc.CreateSubject(ctx, h.subject)
	if err != nil {
		return internalError(ctx, err, "creating subject")
	}

	return gimlet.NewJSONResponse(created)
}

///////////////////////////////////////////////////////////////////////
//
// PUT /api/subjects/{id}

type subjectPutHandler struct {
	id      string
	subject model.APISubject
	sc      data.Connector
}

func makeUpdateSubject(sc data.Connector) gimlet.RouteHandler {
	return &subjectPutHandler{sc: sc}
}

func (h *subjectPutHandler) Factory() gimlet.RouteHandler {
	return &subjectPutHandler{sc: h.sc}
}

func (h *subjectPutHandler) Parse(ctx context.Context, r *http.Request) error {
	h.id = gimlet.GetVars(r)["id"]
	return readBody(r, &h.subject, "subject")
}

// Run replaces the fields present in the request body and returns the
// updated subject.
func (h *subjectPutHandler) Run(ctx context.Context) gimlet.Responder {
	updated, err := h.sc.UpdateSubject(ctx, h.id, h.subject)
	if err != nil {
		return internalError(ctx, err, "updating subject '%s'", h.id)
	}
	if updated == nil {
		return notFound(subjectResource)
	}

	return gimlet.NewJSONResponse(updated)
}

///////////////////////////////////////////////////////////////////////
//
// DELETE /api/subjects/{id}

type subjectDeleteHandler struct {
	id string
	sc data.Connector
}

func makeDeleteSubject(sc data.Connector) gimlet.RouteHandler {
	return &subjectDeleteHandler{sc: sc}
}

func (h *subjectDeleteHandler) Factory() gimlet.RouteHandler {
	return &subjectDeleteHandler{sc: h.sc}
}

func (h *subjectDeleteHandler) Parse(ctx context.Context, r *http.Request) error {
	h.id = gimlet.GetVars(r)["id"]
	return nil
}

func (h *subjectDeleteHandler) Run(ctx context.Context) gimlet.Responder {
	found, err := h.sc.DeleteSubject(ctx, h.id)
	if err != nil {
		return internalError(ctx, err, "deleting subject '%s'", h.id)
	}
	if !found {
		return notFound(subjectResource)
	}

	return deleted(subjectResource)
}
