package profile

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

const DefaultProfile = "default"

// Inline configuration keys, matching the profile table entries.
const (
	KeyAPIKey        = "api_key"
	KeyTestMode      = "test_mode"
	KeyWebhookSecret = "webhook_secret"
)

// Credentials authenticate one client. An empty WebhookSecret means none is configured.
type Credentials struct {
	APIKey        string
	TestMode      bool
	WebhookSecret string
}

// Resolver looks up credentials in a read-only profile table.
// It is safe for concurrent use.
type Resolver struct {
	profiles map[string]Credentials
}

func NewResolver(profiles map[string]Credentials) *Resolver {
	return &Resolver{profiles: maps.Clone(profiles)}
}

func (r *Resolver) ResolveByName(name string) (Credentials, error) {
	creds, ok := r.profiles[name]
	if !ok {
		return Credentials{}, &ConfigurationError{Kind: ProfileNotFound, Profile: name}
	}
	if creds.APIKey == "" {
		return Credentials{}, &ConfigurationError{Kind: MissingAPIKey, Profile: name}
	}
	return creds, nil
}

// ResolveInline builds credentials from an ad-hoc configuration map.
// api_key must be present as a key and non-empty; test_mode defaults to false.
func (r *Resolver) ResolveInline(cfg map[string]any) (Credentials, error) {
	return ResolveInline(cfg)
}

func ResolveInline(cfg map[string]any) (Credentials, error) {
	raw, ok := cfg[KeyAPIKey]
	if !ok {
		return Credentials{}, &ConfigurationError{Kind: InvalidInlineConfig, Missing: []string{KeyAPIKey}}
	}

	apiKey, _ := raw.(string)
	if apiKey == "" {
		return Credentials{}, &ConfigurationError{Kind: MissingAPIKey}
	}

	secret, _ := cfg[KeyWebhookSecret].(string)

	return Credentials{
		APIKey:        apiKey,
		TestMode:      truthy(cfg[KeyTestMode]),
		WebhookSecret: secret,
	}, nil
}

// WebhookSecret returns the signing secret for name, or "" when the profile
// is unknown or has none. It does not require an api key.
func (r *Resolver) WebhookSecret(name string) string {
	return r.profiles[name].WebhookSecret
}

// Names returns the configured profile names.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return false
	}
}
