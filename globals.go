package nutshell

const (
	ServiceName = "nutshell"

	// APIRoutePrefix is the path prefix shared by every REST route.
	APIRoutePrefix = "/api"

	DefaultPort         = 5001
	DefaultDatabaseURL  = "mongodb://localhost:27017"
	DefaultDatabaseName = "nutshell"
	DefaultLogLevel     = "info"

	DefaultServiceConfigurationFileName = "/etc/nutshell/settings.yml"
)

// Environment variables consulted by NewSettings. Values found in the
// process environment take precedence over the settings file.
const (
	MongoURIEnvVar              = "MONGO_URI"
	MongoDBEnvVar               = "MONGO_DB"
	PortEnvVar                  = "PORT"
	LogLevelEnvVar              = "LOG_LEVEL"
	OtelCollectorEndpointEnvVar = "OTEL_COLLECTOR_ENDPOINT"
)

var (
	// BuildRevision is the commit the binary was built from. It is set at
	// build time with -ldflags.
	BuildRevision = ""

	// ClientVersion is the version reported by the CLI.
	ClientVersion = "2026-10-19"
)
