package fbbotw

import "os"

// EnvAccessToken is the environment variable the default token source reads.
const EnvAccessToken = "PAGE_ACCESS_TOKEN"

// TokenSource supplies a page access token. Sources are consulted in order
// on every call; an empty token (or an error) moves resolution to the next
// source. Nothing is cached, so a source backed by mutable configuration
// takes effect on the very next call.
type TokenSource interface {
	Token() (string, error)
}

// TokenSourceFunc adapts a function to a TokenSource. Use it to plug in a
// host-framework settings object as a fallback source.
type TokenSourceFunc func() (string, error)

// Token implements TokenSource.
func (f TokenSourceFunc) Token() (string, error) {
	return f()
}

// StaticTokenSource returns a source that always yields the given token.
func StaticTokenSource(token string) TokenSource {
	return staticTokenSource(token)
}

type staticTokenSource string

func (s staticTokenSource) Token() (string, error) {
	return string(s), nil
}

// EnvTokenSource reads the named environment variable on every call.
type EnvTokenSource struct {
	// Key is the variable name; EnvAccessToken when empty.
	Key string
}

// Token implements TokenSource.
func (s *EnvTokenSource) Token() (string, error) {
	key := s.Key
	if key == "" {
		key = EnvAccessToken
	}
	return os.Getenv(key), nil
}

// resolveToken walks the source chain and returns the first non-empty
// token. Source errors are skipped in favor of later sources; when the
// whole chain comes up empty the fixed configuration error is returned.
func resolveToken(sources []TokenSource) (string, error) {
	for _, src := range sources {
		token, err := src.Token()
		if err != nil {
			continue
		}
		if token != "" {
			return token, nil
		}
	}
	return "", newConfigError()
}
