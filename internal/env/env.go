package env

import "strings"

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) String() string      { return string(e) }

// UnmarshalText accepts any casing; unknown values are left to validation.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Environment(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}
