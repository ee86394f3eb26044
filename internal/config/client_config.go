package config

import (
	"strings"
	"time"
)

// GetAPIBaseURL returns the backend origin without a trailing slash (e.g. "http://127.0.0.1:5000")
func (c mainConfig) GetAPIBaseURL() string {
	return strings.TrimRight(c.APIBaseURL, "/")
}

// GetRequestTimeout returns the backend request timeout. Zero means no timeout.
func (c mainConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// GetTokenMaxAge returns how long the session token cookie survives in the browser
func (c mainConfig) GetTokenMaxAge() time.Duration {
	return c.TokenMaxAge
}

// GetRingRadius returns the radius of the dashboard progress ring
func (c mainConfig) GetRingRadius() float64 {
	return c.RingRadius
}
