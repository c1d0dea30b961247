package config

import "time"

// Built-in defaults applied before any other source.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultHealthInterval     = 15 * time.Second
	DefaultDBName             = "shop"
	DefaultAuthTokenDuration  = 24 * time.Hour
	DefaultResetTokenDuration = 15 * time.Minute
	DefaultBcryptCost         = 10
	DefaultFoodsTTL           = 5 * time.Minute
	DefaultTokenIssuer        = "eat-around"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        DefaultTokenIssuer,
			AuthTokenDuration:  DefaultAuthTokenDuration,
			ResetTokenDuration: DefaultResetTokenDuration,
			BcryptCost:         DefaultBcryptCost,
		},
		Storage: Storage{
			DB:    DB{Name: DefaultDBName},
			Cache: Cache{FoodsTTL: DefaultFoodsTTL},
		},
		Server: Server{
			HTTPAddress:         DefaultHTTPAddress,
			RequestTimeout:      DefaultRequestTimeout,
			HealthCheckInterval: DefaultHealthInterval,
		},
	}
}
