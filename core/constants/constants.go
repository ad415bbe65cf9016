package constants

import "time"

// Database tuning.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Request handling.
const (
	DefaultRequestTimeout = 10 * time.Second
)

// Auth token.
const (
	TokenExpiry    = 90 * 24 * time.Hour
	AuthCookieName = "token"
)

// Redis key prefixes.
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
)

// Pagination defaults for report queries.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)
