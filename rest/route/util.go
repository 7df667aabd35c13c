package route

import (
	"context"
	"fmt"
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/evergreen-ci/utility"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

// readBody decodes the JSON request body into out.
func readBody(r *http.Request, out any, what string) error {
	body := utility.NewRequestReader(r)
	defer body.Close()

	return errors.Wrapf(utility.ReadJSON(body, out), "reading %s from request body", what)
}

// badRequest returns a parse error that is reported to the caller unchanged.
func badRequest(err error) error {
	return gimlet.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func notFound(resource string) gimlet.Responder {
	return gimlet.MakeJSONErrorResponder(gimlet.ErrorResponse{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
	})
}

func deleted(resource string) gimlet.Responder {
	return gimlet.NewJSONResponse(struct {
		Message string `json:"message"`
	}{
		Message: fmt.Sprintf("%s deleted", resource),
	})
}

// internalError logs err and returns a responder that echoes it to the
// caller.
func internalError(ctx context.Context, err error, msg string, args ...any) gimlet.Responder {
	err = errors.Wrapf(err, msg, args...)
	gimlet.GetLogger(ctx).Error(message.WrapError(err, message.Fields{
		"message": "request failed",
	}))

	return gimlet.MakeJSONInternalErrorResponder(err)
}
