package mock

import (
	"context"
	"sync"

	"github.com/mongodb/grip"
	"github.com/nutshell-app/nutshell"
	"go.mongodb.org/mongo-driver/mongo"
)

// this is just a hack to ensure that compile breaks clearly if the
// mock implementation diverges from the interface
var _ nutshell.Environment = &Environment{}

// Environment is an in-memory nutshell.Environment. It has no database
// unless MongoClient is set.
type Environment struct {
	NutshellSettings *nutshell.Settings
	MongoClient      *mongo.Client
	Closers          map[string]func(context.Context) error
	Closed           bool

	mu sync.Mutex
}

// Configure fills in default settings. The path is ignored.
func (e *Environment) Configure(ctx context.Context, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.NutshellSettings == nil {
		e.NutshellSettings = &nutshell.Settings{}
	}
	return e.NutshellSettings.Validate()
}

func (e *Environment) Settings() *nutshell.Settings { return e.NutshellSettings }
func (e *Environment) Client() *mongo.Client        { return e.MongoClient }

func (e *Environment) DB() *mongo.Database {
	if e.MongoClient == nil || e.NutshellSettings == nil {
		return nil
	}
	return e.MongoClient.Database(e.NutshellSettings.Database.DB)
}

func (e *Environment) RegisterCloser(name string, closer func(context.Context) error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Closers == nil {
		e.Closers = map[string]func(context.Context) error{}
	}
	e.Closers[name] = closer
}

func (e *Environment) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	catcher := grip.NewBasicCatcher()
	for name, closer := range e.Closers {
		catcher.Wrapf(closer(ctx), "running closer '%s'", name)
	}
	e.Closed = true

	return catcher.Resolve()
}
