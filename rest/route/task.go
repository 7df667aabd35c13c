package route

import (
	"context"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/nutshell-app/nutshell/rest/model"
	"github.com/pkg/errors"
)

const taskResource = "Task"

///////////////////////////////////////////////////////////////////////
//
// GET /api/tasks

type tasksGetHandler struct {
	sc data.Connector
}

func makeFetchTasks(sc data.Connector) gimlet.RouteHandler {
	return &tasksGetHandler{sc: sc}
}

func (h *tasksGetHandler) Factory() gimlet.RouteHandler {
	return &tasksGetHandler{sc: h.sc}
}

func (h *tasksGetHandler) Parse(ctx context.Context, r *http.Request) error { return nil }

// Run returns every task.
func (h *tasksGetHandler) Run(ctx context.Context) gimlet.Responder {
	tasks, err := h.sc.FindAllTasks(ctx)
	if err != nil {
		return internalError(ctx, err, "fetching tasks")
	}

	return gimlet.NewJSONResponse(tasks)
}

///////////////////////////////////////////////////////////////////////
//
// POST /api/tasks

type taskPostHandler struct {
	task model.APITask
	sc   data.Connector
}

func makeCreateTask(sc data.Connector) gimlet.RouteHandler {
	return &taskPostHandler{sc: sc}
}

func (h *taskPostHandler) Factory() gimlet.RouteHandler {
	return &taskPostHandler{sc: h.sc}
}

// Parse reads the task and checks that description, subjectId and date are
// all present.
func (h *taskPostHandler) Parse(ctx context.Context, r *http.Request) error {
	if err := readBody(r, &h.task, "task"); err != nil {
		return err
	}
	if err := h.task.ValidateCreate(); err != nil {
		return badRequest(err)
	}

	return nil
}

// Run stores the task and responds with 201 Created.
func (h *taskPostHandler) Run(ctx context.Context) gimlet.Responder {
	created, err := h.sc.CreateTask(ctx, h.task)
	if err != nil {
		return internalError(ctx, err, "creating task")
	}

	resp := gimlet.NewJSONResponse(created)
	if err = resp.SetStatus(http.StatusCreated); err != nil {
		return gimlet.MakeJSONInternalErrorResponder(errors.Wrapf(err, "setting status code %d", http.StatusCreated))
	}

	return resp
}

///////////////////////////////////////////////////////////////////////
//
// PUT /api/tasks/{id}

type taskPutHandler struct {
	id   string
	task model.APITask
	sc   data.Connector
}

func makeUpdateTask(sc data.Connector) gimlet.RouteHandler {
	return &taskPutHandler{sc: sc}
}

func (h *taskPutHandler) Factory() gimlet.RouteHandler {
	return &taskPutHandler{sc: h.sc}
}

func (h *taskPutHandler) Parse(ctx context.Context, r *http.Request) error {
	h.id = gimlet.GetVars(r)["id"]
	if err := readBody(r, &h.task, "task"); err != nil {
		return err
	}
	if _, err := h.task.ToUpdate(); err != nil {
		return badRequest(err)
	}

	return nil
}

func (h *taskPutHandler) Run(ctx context.Context) gimlet.Responder {
	updated, err := h.sc.UpdateTask(ctx, h.id, h.task)
	if err != nil {
		return internalError(ctx, err, "updating task '%s'", h.id)
	}
	if updated == nil {
		return notFound(taskResource)
	}

	return gimlet.NewJSONResponse(updated)
}

///////////////////////////////////////////////////////////////////////
//
// DELETE /api/tasks/{id}

type taskDeleteHandler struct {
	id string
	sc data.Connector
}

func makeDeleteTask(sc data.Connector) gimlet.RouteHandler {
	return &taskDeleteHandler{sc: sc}
}

func (h *taskDeleteHandler) Factory() gimlet.RouteHandler {
	return &taskDeleteHandler{sc: h.sc}
}

func (h *taskDeleteHandler) Parse(ctx context.Context, r *http.Request) error {
	h.id = gimlet.GetVars(r)["id"]
	return nil
}

func (h *taskDeleteHandler) Run(ctx context.Context) gimlet.Responder {
	found, err := h.sc.DeleteTask(ctx, h.id)
	if err != nil {
		return internalError(ctx, err, "deleting task '%s'", h.id)
	}
	if !found {
		return notFound(taskResource)
	}

	return deleted(taskResource)
}
