package nutshell

import (
	"os"
	"strconv"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Settings contains all configuration for the nutshell service. Settings are
// read once at process start.
type Settings struct {
	Database DBSettings   `yaml:"database"`
	Port     int          `yaml:"port"`
	LogLevel string       `yaml:"log_level"`
	Tracer   TracerConfig `yaml:"tracer"`
	CORS     CORSConfig   `yaml:"cors"`
}

// CORSConfig controls the cross-origin headers sent by the REST API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func (c *CORSConfig) SectionId() string { return "cors" }

func (c *CORSConfig) ValidateAndDefault() error {
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// NewSettings builds the service settings. If path is not empty the YAML file
// at that path is read first. Values from the process environment (see the
// *EnvVar constants) override the file, and missing values are defaulted.
func NewSettings(path string) (*Settings, error) {
	settings := &Settings{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading settings file '%s'", path)
		}
		if err = yaml.Unmarshal(data, settings); err != nil {
			return nil, errors.Wrapf(err, "unmarshalling settings file '%s'", path)
		}
	}

	if err := settings.loadEnv(); err != nil {
		return nil, errors.Wrap(err, "reading settings from the environment")
	}

	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating settings")
	}

	return settings, nil
}

func (s *Settings) loadEnv() error {
	if url := os.Getenv(MongoURIEnvVar); url != "" {
		s.Database.URL = url
	}
	if name := os.Getenv(MongoDBEnvVar); name != "" {
		s.Database.DB = name
	}
	if l := os.Getenv(LogLevelEnvVar); l != "" {
		s.LogLevel = l
	}
	if endpoint := os.Getenv(OtelCollectorEndpointEnvVar); endpoint != "" {
		s.Tracer.Enabled = true
		s.Tracer.CollectorEndpoint = endpoint
	}
	if port := os.Getenv(PortEnvVar); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return errors.Wrapf(err, "parsing %s value '%s'", PortEnvVar, port)
		}
		s.Port = p
	}

	return nil
}

// Validate checks every config section and fills in defaults.
func (s *Settings) Validate() error {
	catcher := grip.NewBasicCatcher()

	for _, section := range s.Sections() {
		catcher.Wrapf(section.ValidateAndDefault(), "validating config section '%s'", section.SectionId())
	}

	if s.Port == 0 {
		s.Port = DefaultPort
	}
	catcher.ErrorfWhen(s.Port < 0 || s.Port > 65535, "port %d is out of range", s.Port)

	// An empty level keeps the one given on the command line.
	catcher.ErrorfWhen(s.LogLevel != "" && level.FromString(s.LogLevel) == level.Invalid, "invalid log level '%s'", s.LogLevel)

	return catcher.Resolve()
}
