package route

import (
	"context"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/nutshell-app/nutshell/rest/model"
)

const (
	progressResource      = "Progress"
	progressEntryResource = "Progress entry"
)

///////////////////////////////////////////////////////////////////////
//
// GET /api/progress

type progressGetHandler struct {
	sc data.Connector
}

func makeFetchProgress(sc data.Connector) gimlet.RouteHandler {
	return &progressGetHandler{sc: sc}
}

func (h *progressGetHandler) Factory() gimlet.RouteHandler {
	return &progressGetHandler{sc: h.sc}
}

func (h *progressGetHandler) Parse(ctx context.Context, r *http.Request) error { return nil }

// Run returns every progress entry.
func (h *progressGetHandler) Run(ctx context.Context) gimlet.Responder {
	entries, err := h.sc.FindAllProgress(ctx)
	if err != nil {
		return internalError(ctx, err, "fetching progress entries")
	}

	return gimlet.NewJSONResponse(entries)
}

///////////////////////////////////////////////////////////////////////
//
// POST /api/progress

type progressPostHandler struct {
	progress model.APIProgress
	sc       data.Connector
}

func makeCreateProgress(sc data.Connector) gimlet.RouteHandler {
	return &progressPostHandler{sc: sc}
}

func (h *progressPostHandler) Factory() gimlet.RouteHandler {
	return &progressPostHandler{sc: h.sc}
}

// Parse reads the progress entry and rejects a malformed subjectId.
func (h *progressPostHandler) Parse(ctx context.Context, r *http.Request) error {
	if err := readBody(r, &h.progress, "progress entry"); err != nil {
		return err
	}
	if _, err := h.progress.ToService(); err != nil {
		return badRequest(err)
	}

	return nil
}

func (h *progressPostHandler) Run(ctx context.Context) gimlet.Responder {
	created, err := h.sc.CreateProgress(ctx, h.progress)
	if err != nil {
		return internalError(ctx, err, "creating progress entry")
	}

	return gimlet.NewJSONResponse(created)
}

///////////////////////////////////////////////////////////////////////
//
// PUT /api/progress/{id}

type progressPutHandler struct {
	id       string
	progress model.APIProgress
	sc       data.Connector
}

func makeUpdateProgress(sc data.Connector) gimlet.RouteHandler {
	return &progressPutHandler{sc: sc}
}

func (h *progressPutHandler) Factory() gimlet.RouteHandler {
	return &progressPutHandler{sc: h.sc}
}

func (h *progressPutHandler) Parse(ctx context.Context, r *http.Request) error {
	h.id = gimlet.GetVars(r)["id"]
	if err := readBody(r, &h.progress, "progress entry"); err != nil {
		return err
	}
	if _, err := h.progress.ToUpdate(); err != nil {
		return badRequest(err)
	}

	return nil
}

func (h *progressPutHandler) Run(ctx context.Context) gimlet.Responder {
	updated, err := h.sc.UpdateProgress(ctx, h.id, h.progress)
	if err != nil {
		return internalError(ctx, err, "updating progress entry '%s'", h.id)
	}
	if updated == nil {
		return notFound(progressResource)
	}

	return gimlet.NewJSONResponse(updated)
}

///////////////////////////////////////////////////////////////////////
//
// DELETE /api/progress/{id}

type progressDeleteHandler struct {
	id string
	sc data.Connector
}

func makeDeleteProgress(sc data.Connector) gimlet.RouteHandler {
	return &progressDeleteHandler{sc: sc}
}

func (h *progressDeleteHandler) Factory() gimlet.RouteHandler {
	return &progressDeleteHandler{sc: h.sc}
}

func (h *progressDeleteHandler) Parse(ctx context.Context, r *http.Request) error {
	h.id = gimlet.GetVars(r)["id"]
	return nil
}

func (h *progressDeleteHandler) Run(ctx context.Context) gimlet.Responder {
	found, err := h.sc.DeleteProgress(ctx, h.id)
	if err != nil {
		return internalError(ctx, err, "deleting progress entry '%s'", h.id)
	}
	if !found {
		return notFound(progressResource)
	}

	return deleted(progressEntryResource)
}
