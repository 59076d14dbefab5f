package config

import "time"

// Defaults returns the values used for every field left unset by all
// configuration sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFIterations: 210_000,
			KeyCacheTTL:   30 * time.Second,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{DSN: "memory"},
		},
		Server: Server{
			HTTPAddress:     "127.0.0.1:8090",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimit{
				Capacity: 100,
				Window:   time.Minute,
				IdleTTL:  time.Hour,
			},
		},
		Regex: Regex{
			MaxLength:      256,
			MaxQuantifiers: 10,
			MaxRepetition:  100,
			CompileTimeout: 100 * time.Millisecond,
			MatchTimeout:   500 * time.Millisecond,
			Workers:        4,
		},
		Workers: Workers{
			BroadcastInterval:      2 * time.Second,
			RateLimitSweepInterval: 5 * time.Minute,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://127.0.0.1:8090",
			RequestTimeout: 15 * time.Second,
		},
	}
}
