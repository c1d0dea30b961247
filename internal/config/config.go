// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// eat-around server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the primary store and the catalog cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, password hashing and versioning.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AuthTokenDuration is the lifetime of session tokens.
	// Env: APP_AUTH_TOKEN_DURATION
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION"`

	// ResetTokenDuration is the lifetime of password-reset tokens.
	// Env: APP_RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor used for new password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// RehashLegacyPasswords turns on re-hashing of plaintext legacy
	// passwords after a successful login.
	// Env: APP_REHASH_LEGACY_PASSWORDS
	RehashLegacyPasswords bool `env:"REHASH_LEGACY_PASSWORDS"`

	// Version is reported by the gRPC health service and in startup logs.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the primary store connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis catalog cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the primary store. The DSN scheme picks
// the backend: mongodb:// or mongodb+srv:// for MongoDB, postgres:// or
// postgresql:// for PostgreSQL, file: or a plain path for SQLite.
type DB struct {
	// DSN is the connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by SQL backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Cache holds Redis settings. An empty address disables caching.
type Cache struct {
	// RedisAddress is the host:port of the Redis server.
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional AUTH password.
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the logical database index.
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// FoodsTTL is how long a cached food listing stays valid.
	// Env: STORAGE_CACHE_FOODS_TTL
	FoodsTTL time.Duration `env:"FOODS_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthCheckInterval is how often the gRPC health service pings the
	// storage backends.
	// Env: SERVER_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		build()
}

// GetStorageConfig loads the configuration from the same sources as
// [GetStructuredConfig] but only requires the storage settings to be valid.
// It is used by tools that talk to the stores directly.
func GetStorageConfig() (*Storage, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		buildStorage()
}
