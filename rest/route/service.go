package route

import (
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/nutshell-app/nutshell"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/pkg/errors"
)

// AttachHandler registers every REST route on app. The routes share the
// given connector.
func AttachHandler(app *gimlet.APIApp, sc data.Connector) {
	app.AddRoute("/status").Get().RouteHandler(makeStatusHandler(sc))

	app.AddRoute("/subjects").Get().RouteHandler(makeFetchSubjects(sc))
	app.AddRoute("/subjects").Post().RouteHandler(makeCreateSubject(sc))
	app.AddRoute("/subjects/{id}").Put().RouteHandler(makeUpdateSubject(sc))
	app.AddRoute("/subjects/{id}").Delete().RouteHandler(makeDeleteSubject(sc))

	app.AddRoute("/progress").Get().RouteHandler(makeFetchProgress(sc))
	app.AddRoute("/progress").Post().RouteHandler(makeCreateProgress(sc))
	app.AddRoute("/progress/{id}").Put().RouteHandler(makeUpdateProgress(sc))
	app.AddRoute("/progress/{id}").Delete().RouteHandler(makeDeleteProgress(sc))

	app.AddRoute("/tasks").Get().RouteHandler(makeFetchTasks(sc))
	app.AddRoute("/tasks").Post().RouteHandler(makeCreateTask(sc))
	app.AddRoute("/tasks/{id}").Put().RouteHandler(makeUpdateTask(sc))
	app.AddRoute("/tasks/{id}").Delete().RouteHandler(makeDeleteTask(sc))
}

// GetHandler builds the REST application under the API prefix and returns it
// as an http.Handler. Requests are logged, panics are recovered, and CORS
// headers are added for the configured origins.
func GetHandler(sc data.Connector, conf nutshell.CORSConfig) (http.Handler, error) {
	app := gimlet.NewApp()
	app.SetPrefix(nutshell.APIRoutePrefix)
	app.ResetMiddleware()
	app.AddMiddleware(gimlet.MakeRecoveryLogger())
	app.AddMiddleware(NewCORSMiddleware(conf))

	AttachHandler(app, sc)

	h, err := app.Handler()
	if err != nil {
		return nil, errors.Wrap(err, "resolving REST routes")
	}
	return h, nil
}
