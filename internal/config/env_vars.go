package config

import (
	"strings"
)

func (c mainConfig) GetPort() string {
	port := c.Port
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (c mainConfig) GetAppName() string {
	return c.AppName
}

func (c mainConfig) GetEnv() string {
	if c.Env == "" {
		return "DEV"
	}
	return strings.ToUpper(c.Env)
}

func (c mainConfig) GetLogLevel() string {
	return c.LogLevel
}

func (c mainConfig) GetTrustProxyHeaders() bool {
	return c.TrustProxyHeaders
}
