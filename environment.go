package nutshell

import (
	"context"
	"sync"
	"time"

	"github.com/evergreen-ci/utility"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/mongodb/grip/recovery"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Environment provides process-wide services: the settings and the
// database connection. An Environment is constructed once at startup,
// passed to the components that need it, and closed at shutdown.
type Environment interface {
	// Settings returns the settings object. The settings object is not
	// safe for concurrent modification.
	Settings() *Settings

	Client() *mongo.Client
	DB() *mongo.Database

	// RegisterCloser adds a function object to an internal
	// tracker to be called by the Close method before process
	// termination. The ID is used in reporting, but must be
	// unique or a new closer could overwrite an existing closer.
	RegisterCloser(string, func(context.Context) error)
	// Close calls all registered closers in the environment.
	Close(context.Context) error
}

// NewEnvironment constructs an Environment from the given settings,
// establishing the database client and, if configured, the tracer provider.
//
// The database client is created eagerly but a failing initial ping is only
// logged: requests issued while the server is unreachable fail individually.
func NewEnvironment(ctx context.Context, settings *Settings) (Environment, error) {
	if settings == nil {
		return nil, errors.New("cannot create environment without settings")
	}

	e := &envState{
		settings: settings,
		closers:  map[string]func(context.Context) error{},
	}

	catcher := grip.NewBasicCatcher()
	catcher.Add(e.initDB(ctx))
	catcher.Add(e.initTracer(ctx))

	if catcher.HasErrors() {
		catcher.Wrap(e.Close(ctx), "closing partially initialized environment")
		return nil, errors.WithStack(catcher.Resolve())
	}

	return e, nil
}

type envState struct {
	settings *Settings
	client   *mongo.Client
	mu       sync.RWMutex
	closers  map[string]func(context.Context) error
}

func (e *envState) initDB(ctx context.Context) error {
	client, err := mongo.Connect(ctx, e.settings.Database.mongoOptions())
	if err != nil {
		return errors.Wrap(err, "connecting to the database")
	}
	e.client = client

	e.RegisterCloser("database", func(ctx context.Context) error {
		return errors.Wrap(client.Disconnect(ctx), "disconnecting from the database")
	})

	pingCtx, cancel := context.WithTimeout(ctx, e.settings.Database.ConnectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		grip.Warning(message.WrapError(err, message.Fields{
			"message":  "database is not reachable",
			"database": e.settings.Database.DB,
			"url":      e.settings.Database.redactedURL(),
		}))
		return nil
	}

	grip.Info(message.Fields{
		"message":  "connected to database",
		"database": e.settings.Database.DB,
		"url":      e.settings.Database.redactedURL(),
	})

	return nil
}

func (e *envState) initTracer(ctx context.Context) error {
	if !e.settings.Tracer.Enabled {
		return nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(e.settings.Tracer.CollectorEndpoint)}
	if e.settings.Tracer.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return errors.Wrap(err, "initializing otel exporter")
	}

	r := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(ServiceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
	tp.RegisterSpanProcessor(utility.NewAttributeSpanProcessor())
	otel.SetTracerProvider(tp)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		grip.Error(errors.Wrap(err, "otel error"))
	}))

	e.RegisterCloser("tracer", func(ctx context.Context) error {
		catcher := grip.NewBasicCatcher()
		catcher.Wrap(tp.Shutdown(ctx), "trace provider shutdown")
		catcher.Wrap(exp.Shutdown(ctx), "trace exporter shutdown")
		return catcher.Resolve()
	})

	return errors.Wrap(e.initMetrics(ctx, r), "initializing metrics")
}

// initMetrics exports the HTTP server metrics recorded by the request
// instrumentation to the same collector as the traces.
func (e *envState) initMetrics(ctx context.Context, r *resource.Resource) error {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(e.settings.Tracer.CollectorEndpoint)}
	if e.settings.Tracer.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "making otel metrics exporter")
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(r),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(e.settings.Tracer.MetricsInterval()))),
	)
	otel.SetMeterProvider(mp)

	e.RegisterCloser("meter", func(ctx context.Context) error {
		return errors.Wrap(mp.Shutdown(ctx), "meter provider shutdown")
	})

	return nil
}

func (e *envState) Settings() *Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.settings
}

func (e *envState) Client() *mongo.Client {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.client
}

func (e *envState) DB() *mongo.Database {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.client == nil {
		return nil
	}

	return e.client.Database(e.settings.Database.DB)
}

func (e *envState) RegisterCloser(name string, closer func(context.Context) error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.closers[name]; ok {
		grip.Critical(message.Fields{
			"closer":  name,
			"message": "duplicate closer registered",
			"cause":   "programmer error",
		})
	}
	e.closers[name] = closer
}

// Close runs the registered closers concurrently against a snapshot taken
// when it is called, so a closer may use the environment without blocking.
func (e *envState) Close(ctx context.Context) error {
	e.mu.RLock()
	closers := make(map[string]func(context.Context) error, len(e.closers))
	for name, closer := range e.closers {
		if closer != nil {
			closers[name] = closer
		}
	}
	e.mu.RUnlock()

	grip.Info(message.Fields{
		"message": "closing environment",
		"closers": len(closers),
	})
	if deadline, ok := ctx.Deadline(); ok {
		grip.Debug(message.Fields{
			"message":      "environment close deadline",
			"timeout_secs": time.Until(deadline).Seconds(),
		})
	}

	catcher := grip.NewBasicCatcher()
	wg := &sync.WaitGroup{}
	for name, closer := range closers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer recovery.LogStackTraceAndContinue("environment closer", name)
			catcher.Wrapf(closer(ctx), "running closer '%s'", name)
		}()
	}
	wg.Wait()

	return catcher.Resolve()
}
