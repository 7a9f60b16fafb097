package fbbotw

import (
	"errors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAccessToken is returned when no token source yields a page
	// access token. It is raised before any URL is built or request issued.
	ErrMissingAccessToken = errors.New("page access token is missing")

	// ErrMissingPaymentSettings is returned by SetPaymentSettings when no
	// setting was supplied; no request is issued in that case.
	ErrMissingPaymentSettings = errors.New("at least one payment setting is required")
)

// missingTokenGuidance is the fixed diagnostic shown to integrators when
// credential resolution fails on every configured source.
const missingTokenGuidance = "couldn't resolve PAGE_ACCESS_TOKEN: " +
	"define this var in your environment or provide a token source"

// FbbotwError is implemented by all SDK errors.
type FbbotwError interface {
	error
	FbbotwError() // marker method
}

// ConfigError reports a failure to resolve the page access token from the
// configured sources.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingAccessToken
}

// FbbotwError implements the FbbotwError interface.
func (e *ConfigError) FbbotwError() {}

// PaymentSettingsError reports that SetPaymentSettings was called with no
// privacy URL, no public key and no test users. It is a local result: the
// operation performs no network call when it is returned.
type PaymentSettingsError struct{}

func (e *PaymentSettingsError) Error() string {
	return "at least one parameter should be set"
}

// Is implements errors.Is for sentinel error matching.
func (e *PaymentSettingsError) Is(target error) bool {
	return target == ErrMissingPaymentSettings
}

// FbbotwError implements the FbbotwError interface.
func (e *PaymentSettingsError) FbbotwError() {}

// newConfigError builds the ConfigError carrying the fixed guidance message.
func newConfigError() *ConfigError {
	return &ConfigError{Message: missingTokenGuidance}
}
