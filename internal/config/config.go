package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; sessions are kept in memory unless a database is provided.
	DefaultDatabaseURL = ""

	// DefaultSessionTTL is how long an idle wizard session stays alive.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultPurgeInterval is how often the server sweeps expired sessions.
	DefaultPurgeInterval = 5 * time.Minute

	// DefaultRateLimit is the sustained API requests per second allowed per client IP.
	DefaultRateLimit = 20.0

	// DefaultRateBurst is the API request burst allowed per client IP.
	DefaultRateBurst = 40
)
