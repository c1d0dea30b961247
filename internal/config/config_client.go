package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientConfig holds settings for the command-line API client.
type ClientConfig struct {
	// ServerAddress is the base URL of the eat-around HTTP API.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is a session token sent as a Bearer credential.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig builds the client config from defaults and CLIENT_*
// environment variables, then validates it.
func GetClientConfig() (*ClientConfig, error) {
	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	cfg := &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		Token:          fromEnv.Client.Token,
	}
	if fromEnv.Client.ServerAddress != "" {
		cfg.ServerAddress = fromEnv.Client.ServerAddress
	}
	if fromEnv.Client.RequestTimeout != 0 {
		cfg.RequestTimeout = fromEnv.Client.RequestTimeout
	}

	return cfg, cfg.validate()
}
