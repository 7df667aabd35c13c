package nutshell

import (
	"time"

	"github.com/mongodb/grip"
)

const defaultMetricsIntervalSecs = 60

// TracerConfig configures the OpenTelemetry tracer and meter providers. If not
// enabled neither traces nor metrics will be sent.
type TracerConfig struct {
	Enabled           bool   `yaml:"enabled"`
	CollectorEndpoint string `yaml:"collector_endpoint"`
	// Insecure disables TLS on the connection to the collector.
	Insecure            bool `yaml:"insecure"`
	MetricsIntervalSecs int  `yaml:"metrics_interval_secs"`
}

// SectionId returns the ID of this config section.
func (c *TracerConfig) SectionId() string { return "tracer" }

// ValidateAndDefault validates the tracer configuration.
func (c *TracerConfig) ValidateAndDefault() error {
	catcher := grip.NewBasicCatcher()
	catcher.NewWhen(c.Enabled && c.CollectorEndpoint == "", "tracer is enabled but no collector endpoint is set")
	catcher.NewWhen(c.MetricsIntervalSecs < 0, "metrics interval cannot be negative")
	if c.MetricsIntervalSecs == 0 {
		c.MetricsIntervalSecs = defaultMetricsIntervalSecs
	}
	return catcher.Resolve()
}

// MetricsInterval is how often collected metrics are exported.
func (c *TracerConfig) MetricsInterval() time.Duration {
	return time.Duration(c.MetricsIntervalSecs) * time.Second
}
