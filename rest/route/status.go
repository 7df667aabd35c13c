package route

import (
	"context"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/mongodb/grip/message"
	"github.com/nutshell-app/nutshell"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/pkg/errors"
)

///////////////////////////////////////////////////////////////////////
//
// GET /api/status

type statusHandler struct {
	sc data.Connector
}

func makeStatusHandler(sc data.Connector) gimlet.RouteHandler {
	return &statusHandler{sc: sc}
}

func (h *statusHandler) Factory() gimlet.RouteHandler {
	return &statusHandler{sc: h.sc}
}

func (h *statusHandler) Parse(ctx context.Context, r *http.Request) error { return nil }

// Run reports whether the database can be reached.
func (h *statusHandler) Run(ctx context.Context) gimlet.Responder {
	if err := h.sc.Ping(ctx); err != nil {
		err = errors.Wrap(err, "checking database status")
		gimlet.GetLogger(ctx).Error(message.WrapError(err, message.Fields{
			"message": "service is unhealthy",
		}))
		return gimlet.MakeJSONInternalErrorResponder(err)
	}

	return gimlet.NewJSONResponse(struct {
		Status string `json:"status"`
		Build  string `json:"build"`
	}{
		Status: "ok",
		Build:  nutshell.BuildRevision,
	})
}
