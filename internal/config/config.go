package config

type Config interface {
	EnvConfig
	BackendConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type BackendConfig interface {
	GetBackendURL() string
	GetBackendTimeoutSeconds() int
}

type mainConfig struct {
	EnvVars
	Backend
	Session
}

func New() Config {
	return mainConfig{}
}
