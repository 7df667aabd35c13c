package nutshell

// In order to add a new config section:
//  1. add the section struct to Settings in config.go
//  2. implement ConfigSection for it
//  3. return it from Settings.Sections below

// ConfigSection is a validated part of the service configuration.
type ConfigSection interface {
	// SectionId returns the key identifying the section in error messages.
	SectionId() string
	// ValidateAndDefault checks the section and fills in missing values.
	ValidateAndDefault() error
}

// Sections returns every config section of s. The sections point into s, so
// defaults applied to them are visible in s.
func (s *Settings) Sections() []ConfigSection {
	return []ConfigSection{
		&s.Database,
		&s.Tracer,
		&s.CORS,
	}
}
