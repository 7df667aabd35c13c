package testutil

import (
	"context"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/nutshell-app/nutshell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// TestDatabase is the database used by integration tests. It is
	// cleared freely, so it must never point at real data.
	TestDatabase = "nutshell_test"

	skipIntegrationEnvVar = "SKIP_INTEGRATION_TESTS"
	reachabilityTimeout   = 2 * time.Second
)

var (
	reachableOnce sync.Once
	reachableErr  error
)

// TestSettings returns settings suitable for integration tests. The database
// URL comes from MONGO_URI when set.
func TestSettings() *nutshell.Settings {
	settings := &nutshell.Settings{
		Database: nutshell.DBSettings{
			URL:                os.Getenv(nutshell.MongoURIEnvVar),
			DB:                 TestDatabase,
			ConnectTimeoutSecs: int(reachabilityTimeout / time.Second),
		},
	}
	// The zero-valued settings above always validate.
	_ = settings.Validate()

	return settings
}

// NewEnvironment returns an environment connected to the test database. The
// test is skipped when SKIP_INTEGRATION_TESTS is set or when no MongoDB
// server is reachable. The environment is closed when the test finishes.
func NewEnvironment(ctx context.Context, t *testing.T) nutshell.Environment {
	if skip, _ := strconv.ParseBool(os.Getenv(skipIntegrationEnvVar)); skip {
		t.Skipf("%s is set, skipping integration test", skipIntegrationEnvVar)
	}

	settings := TestSettings()
	if err := checkReachable(ctx, settings); err != nil {
		t.Skipf("database at '%s' is not reachable: %s", settings.Database.URL, err)
	}

	env, err := nutshell.NewEnvironment(ctx, settings)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, env.Close(context.Background()))
	})

	return env
}

// checkReachable pings the server once per test binary so that suites do
// not each wait out the server selection timeout.
func checkReachable(ctx context.Context, settings *nutshell.Settings) error {
	reachableOnce.Do(func() {
		pingCtx, cancel := context.WithTimeout(ctx, reachabilityTimeout)
		defer cancel()

		client, err := mongo.Connect(pingCtx, options.Client().
			ApplyURI(settings.Database.URL).
			SetServerSelectionTimeout(reachabilityTimeout))
		if err != nil {
			reachableErr = err
			return
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		reachableErr = client.Ping(pingCtx, readpref.Primary())
	})

	return reachableErr
}
