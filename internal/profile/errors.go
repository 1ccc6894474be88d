package profile

import (
	"fmt"
	"strings"
)

type ErrorKind string

const (
	ProfileNotFound     ErrorKind = "profile_not_found"
	MissingAPIKey       ErrorKind = "missing_api_key"
	InvalidInlineConfig ErrorKind = "invalid_inline_config"
)

// ConfigurationError is returned when credentials cannot be resolved.
// It is never transient.
type ConfigurationError struct {
	Kind    ErrorKind
	Profile string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	switch e.Kind {
	case ProfileNotFound:
		return fmt.Sprintf("creem profile %q not found in configuration", e.Profile)
	case MissingAPIKey:
		return "creem api key is required but not configured"
	case InvalidInlineConfig:
		return "invalid inline configuration, missing required fields: " + strings.Join(e.Missing, ", ")
	default:
		return "creem configuration error"
	}
}

// Is matches any *ConfigurationError of the same Kind.
func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrProfileNotFound     = &ConfigurationError{Kind: ProfileNotFound}
	ErrMissingAPIKey       = &ConfigurationError{Kind: MissingAPIKey}
	ErrInvalidInlineConfig = &ConfigurationError{Kind: InvalidInlineConfig}
)
