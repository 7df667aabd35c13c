package nutshell

import (
	"net/url"
	"time"

	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultConnectTimeout = 5 * time.Second

// DBSettings configures the connection to the backing MongoDB deployment.
type DBSettings struct {
	URL string `yaml:"url"`
	DB  string `yaml:"db"`
	// ConnectTimeoutSecs bounds the ping issued at startup. Requests are not
	// subject to it.
	ConnectTimeoutSecs int `yaml:"connect_timeout_secs"`
}

func (s *DBSettings) SectionId() string { return "database" }

// ValidateAndDefault fills in the default URL and database name and checks
// that the URL is usable as a MongoDB connection string.
func (s *DBSettings) ValidateAndDefault() error {
	if s.URL == "" {
		s.URL = DefaultDatabaseURL
	}
	if s.DB == "" {
		s.DB = DefaultDatabaseName
	}
	if s.ConnectTimeoutSecs <= 0 {
		s.ConnectTimeoutSecs = int(defaultConnectTimeout / time.Second)
	}

	catcher := grip.NewBasicCatcher()
	u, err := url.Parse(s.URL)
	if err != nil {
		catcher.Wrapf(err, "parsing database URL")
	} else {
		catcher.ErrorfWhen(u.Scheme != "mongodb" && u.Scheme != "mongodb+srv", "database URL has unsupported scheme '%s'", u.Scheme)
	}

	return catcher.Resolve()
}

// ConnectTimeout returns the deadline for the startup ping.
func (s *DBSettings) ConnectTimeout() time.Duration {
	return time.Duration(s.ConnectTimeoutSecs) * time.Second
}

func (s *DBSettings) mongoOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(s.URL).
		SetAppName(ServiceName)
}

// redactedURL returns the connection string without credentials so that it
// is safe to log.
func (s *DBSettings) redactedURL() string {
	u, err := url.Parse(s.URL)
	if err != nil {
		return ""
	}
	return u.Redacted()
}
