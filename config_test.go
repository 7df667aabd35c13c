package nutshell

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "config_test"

func testConfigFile() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), testDir, "nutshell_settings.yml")
}

// clearSettingsEnv unsets every environment variable NewSettings reads so
// that the developer's shell does not leak into the tests.
func clearSettingsEnv(t *testing.T) {
	for _, name := range []string{MongoURIEnvVar, MongoDBEnvVar, PortEnvVar, LogLevelEnvVar, OtelCollectorEndpointEnvVar} {
		t.Setenv(name, "")
	}
}

func TestNewSettings(t *testing.T) {
	t.Run("DefaultsWithoutFile", func(t *testing.T) {
		clearSettingsEnv(t)

		settings, err := NewSettings("")
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, settings.Port)
		assert.Equal(t, DefaultDatabaseURL, settings.Database.URL)
		assert.Equal(t, DefaultDatabaseName, settings.Database.DB)
		assert.Empty(t, settings.LogLevel)
		assert.Equal(t, []string{"*"}, settings.CORS.AllowedOrigins)
		assert.False(t, settings.Tracer.Enabled)
	})
	t.Run("ReadsFile", func(t *testing.T) {
		clearSettingsEnv(t)

		settings, err := NewSettings(testConfigFile())
		require.NoError(t, err)
		assert.Equal(t, 8080, settings.Port)
		assert.Equal(t, "nutshell_test", settings.Database.DB)
		assert.Equal(t, 2, settings.Database.ConnectTimeoutSecs)
		assert.Equal(t, "debug", settings.LogLevel)
		assert.Equal(t, []string{"http://localhost:3000"}, settings.CORS.AllowedOrigins)
	})
	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		clearSettingsEnv(t)
		t.Setenv(MongoURIEnvVar, "mongodb://db.example.com:27017")
		t.Setenv(PortEnvVar, "5002")

		settings, err := NewSettings(testConfigFile())
		require.NoError(t, err)
		assert.Equal(t, 5002, settings.Port)
		assert.Equal(t, "mongodb://db.example.com:27017", settings.Database.URL)
		assert.Equal(t, "nutshell_test", settings.Database.DB)
	})
	t.Run("CollectorEndpointEnablesTracer", func(t *testing.T) {
		clearSettingsEnv(t)
		t.Setenv(OtelCollectorEndpointEnvVar, "localhost:4317")

		settings, err := NewSettings("")
		require.NoError(t, err)
		assert.True(t, settings.Tracer.Enabled)
		assert.Equal(t, "localhost:4317", settings.Tracer.CollectorEndpoint)
	})
	t.Run("MissingFileFails", func(t *testing.T) {
		clearSettingsEnv(t)

		settings, err := NewSettings(filepath.Join(t.TempDir(), "nonexistent.yml"))
		assert.Error(t, err)
		assert.Nil(t, settings)
	})
	t.Run("MalformedFileFails", func(t *testing.T) {
		clearSettingsEnv(t)
		path := filepath.Join(t.TempDir(), "settings.yml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not, a, number]"), 0600))

		_, err := NewSettings(path)
		assert.Error(t, err)
	})
	t.Run("NonNumericPortFails", func(t *testing.T) {
		clearSettingsEnv(t)
		t.Setenv(PortEnvVar, "five")

		_, err := NewSettings("")
		assert.Error(t, err)
	})
}

func TestSettingsValidate(t *testing.T) {
	for name, test := range map[string]struct {
		settings Settings
		valid    bool
	}{
		"Empty": {
			valid: true,
		},
		"PortOutOfRange": {
			settings: Settings{Port: 70000},
		},
		"NegativePort": {
			settings: Settings{Port: -1},
		},
		"InvalidLogLevel": {
			settings: Settings{LogLevel: "loud"},
		},
		"TracerWithoutEndpoint": {
			settings: Settings{Tracer: TracerConfig{Enabled: true}},
		},
		"NegativeMetricsInterval": {
			settings: Settings{Tracer: TracerConfig{MetricsIntervalSecs: -1}},
		},
		"TracerWithEndpoint": {
			settings: Settings{Tracer: TracerConfig{Enabled: true, CollectorEndpoint: "localhost:4317"}},
			valid:    true,
		},
		"UnsupportedDatabaseScheme": {
			settings: Settings{Database: DBSettings{URL: "postgres://localhost:5432"}},
		},
		"SRVDatabaseScheme": {
			settings: Settings{Database: DBSettings{URL: "mongodb+srv://cluster.example.com"}},
			valid:    true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := test.settings.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSettingsSections(t *testing.T) {
	s := &Settings{}
	ids := map[string]bool{}
	for _, section := range s.Sections() {
		assert.False(t, ids[section.SectionId()], "duplicate section '%s'", section.SectionId())
		ids[section.SectionId()] = true
	}
	assert.Len(t, ids, 3)

	require.NoError(t, s.Validate())
	assert.Equal(t, DefaultDatabaseName, s.Database.DB)
}

func TestTracerConfigMetricsInterval(t *testing.T) {
	c := &TracerConfig{}
	assert.NoError(t, c.ValidateAndDefault())
	assert.Equal(t, defaultMetricsIntervalSecs, c.MetricsIntervalSecs)
	assert.Equal(t, time.Minute, c.MetricsInterval())

	c = &TracerConfig{MetricsIntervalSecs: 15}
	assert.NoError(t, c.ValidateAndDefault())
	assert.Equal(t, 15*time.Second, c.MetricsInterval())
}
