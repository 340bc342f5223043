package config

import "strconv"

const (
	backendURLVar     = "BACKEND_URL"
	backendTimeoutVar = "BACKEND_TIMEOUT_SECONDS"
)

type Backend struct{}

var _ BackendConfig = Backend{}

// GetBackendURL returns the base URL of the REST backend
// (e.g. "https://api.example.com"). All product, cart, order and user
// endpoints are resolved relative to it.
func (Backend) GetBackendURL() string {
	return GetEnv(backendURLVar, "http://localhost:8080")
}

func (Backend) GetBackendTimeoutSeconds() int {
	v := GetEnv(backendTimeoutVar, "10")
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return 10
	}
	return seconds
}
