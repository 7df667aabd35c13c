package operations

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/message"
	"github.com/mongodb/grip/recovery"
	"github.com/nutshell-app/nutshell"
	"github.com/nutshell-app/nutshell/rest/data"
	"github.com/nutshell-app/nutshell/rest/route"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	shutdownTimeout = 30 * time.Second
	closeTimeout    = 10 * time.Second
)

func startWebService() cli.Command {
	return cli.Command{
		Name:   "web",
		Usage:  "start the nutshell REST API",
		Flags:  serviceConfigFlags(),
		Before: mergeBeforeFuncs(loadEnvFile(envFileFlagName), requireFileExists(confFlagName)),
		Action: func(c *cli.Context) error {
			grip.SetName("nutshell.web")

			confPath, err := resolveConfPath(c.String(confFlagName))
			if err != nil {
				return errors.Wrap(err, "resolving settings path")
			}
			settings, err := nutshell.NewSettings(confPath)
			if err != nil {
				return errors.Wrap(err, "loading settings")
			}
			if err = setLogLevel(settings.LogLevel); err != nil {
				return errors.Wrap(err, "setting log level")
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			env, err := nutshell.NewEnvironment(ctx, settings)
			if err != nil {
				return errors.Wrap(err, "configuring application environment")
			}

			return runWebService(ctx, env, data.NewDBConnector(env))
		},
	}
}

// setLogLevel replaces the threshold of the global sender. An empty level
// leaves the threshold set from the command line in place.
func setLogLevel(l string) error {
	if l == "" {
		return nil
	}

	sender := grip.GetSender()
	info := sender.Level()
	info.Threshold = level.FromString(l)

	return sender.SetLevel(info)
}

// getWebHandler builds the REST handler, instrumented for tracing when the
// environment has a tracer configured.
func getWebHandler(env nutshell.Environment, sc data.Connector) (http.Handler, error) {
	handler, err := route.GetHandler(sc, env.Settings().CORS)
	if err != nil {
		return nil, errors.Wrap(err, "building REST handler")
	}
	if env.Settings().Tracer.Enabled {
		handler = otelhttp.NewHandler(handler, nutshell.ServiceName)
	}

	return handler, nil
}

// getServer produces an HTTP server instance for a handler.
func getServer(addr string, n http.Handler) *http.Server {
	grip.Notice(message.Fields{
		"action":  "starting service",
		"service": addr,
		"build":   nutshell.BuildRevision,
		"process": grip.Name(),
	})

	return &http.Server{
		Addr:              addr,
		Handler:           n,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      time.Minute,
	}
}

// runWebService serves the REST API until ctx is canceled or the process
// receives SIGTERM or SIGINT. The server is then shut down gracefully and the
// environment is closed.
func runWebService(ctx context.Context, env nutshell.Environment, sc data.Connector) error {
	handler, err := getWebHandler(env, sc)
	if err != nil {
		return err
	}
	server := getServer(fmt.Sprintf(":%d", env.Settings().Port), handler)

	serverErr := make(chan error, 1)
	go func() {
		defer recovery.LogStackTraceAndContinue("nutshell web service")
		serverErr <- server.ListenAndServe()
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer stop()

	catcher := grip.NewBasicCatcher()
	select {
	case err = <-serverErr:
		catcher.Wrap(err, "running web service")
	case <-sigCtx.Done():
		grip.Notice(message.Fields{
			"message": "shutting down web service",
			"process": grip.Name(),
		})
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		catcher.Wrap(server.Shutdown(shutdownCtx), "shutting down web service")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	catcher.Wrap(env.Close(closeCtx), "closing environment")

	grip.Notice(message.Fields{
		"message": "web service stopped",
		"process": grip.Name(),
	})

	return catcher.Resolve()
}
