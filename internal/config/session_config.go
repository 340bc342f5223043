package config

type SessionConfig interface {
	GetSessionSecret() string
	GetSecureCookies() bool
}

type Session struct{}

var _ SessionConfig = Session{}

// GetSessionSecret returns the HMAC key used to sign the profile cookie.
// The default exists so local development works out of the box; production
// deployments must set SESSION_SECRET.
func (Session) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", "dev-insecure-session-secret")
}

func (s Session) GetSecureCookies() bool {
	return EnvVars{}.GetEnv() != "DEV"
}
