package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// parseFile decodes a JSON or YAML config file, chosen by extension.
// Anything that is not .yaml/.yml is treated as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg := new(StructuredConfig)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
		return cfg, nil
	default:
		return parseJSON(data)
	}
}

// fileJSONConfig mirrors [StructuredConfig] with snake_case keys and
// human readable durations ("30s").
type fileJSONConfig struct {
	App struct {
		InstallationSecret string   `json:"installation_secret"`
		KDFIterations      int      `json:"kdf_iterations"`
		KeyCacheTTL        Duration `json:"key_cache_ttl"`
		Version            string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		AllowedOrigins    []string `json:"allowed_origins"`
		TrustProxyHeaders bool     `json:"trust_proxy_headers"`
		RateLimit         struct {
			Capacity int      `json:"capacity"`
			Window   Duration `json:"window"`
			IdleTTL  Duration `json:"idle_ttl"`
		} `json:"rate_limit"`
	} `json:"server"`

	Regex struct {
		MaxLength      int      `json:"max_length"`
		MaxQuantifiers int      `json:"max_quantifiers"`
		MaxRepetition  int      `json:"max_repetition"`
		CompileTimeout Duration `json:"compile_timeout"`
		MatchTimeout   Duration `json:"match_timeout"`
		Workers        int      `json:"workers"`
	} `json:"regex"`

	Filters struct {
		StrictThresholds bool `json:"strict_thresholds"`
	} `json:"filters"`

	Workers struct {
		BroadcastInterval      Duration `json:"broadcast_interval"`
		RateLimitSweepInterval Duration `json:"rate_limit_sweep_interval"`
	} `json:"workers"`

	Source struct {
		FindingsFile  string   `json:"findings_file"`
		ScopePrefixes []string `json:"scope_prefixes"`
	} `json:"source"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`
}

func parseJSON(data []byte) (*StructuredConfig, error) {
	var j fileJSONConfig
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			InstallationSecret: j.App.InstallationSecret,
			KDFIterations:      j.App.KDFIterations,
			KeyCacheTTL:        time.Duration(j.App.KeyCacheTTL),
			Version:            j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:       j.Server.HTTPAddress,
			RequestTimeout:    time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout:   time.Duration(j.Server.ShutdownTimeout),
			AllowedOrigins:    j.Server.AllowedOrigins,
			TrustProxyHeaders: j.Server.TrustProxyHeaders,
			RateLimit: RateLimit{
				Capacity: j.Server.RateLimit.Capacity,
				Window:   time.Duration(j.Server.RateLimit.Window),
				IdleTTL:  time.Duration(j.Server.RateLimit.IdleTTL),
			},
		},
		Regex: Regex{
			MaxLength:      j.Regex.MaxLength,
			MaxQuantifiers: j.Regex.MaxQuantifiers,
			MaxRepetition:  j.Regex.MaxRepetition,
			CompileTimeout: time.Duration(j.Regex.CompileTimeout),
			MatchTimeout:   time.Duration(j.Regex.MatchTimeout),
			Workers:        j.Regex.Workers,
		},
		Filters: Filters{
			StrictThresholds: j.Filters.StrictThresholds,
		},
		Workers: Workers{
			BroadcastInterval:      time.Duration(j.Workers.BroadcastInterval),
			RateLimitSweepInterval: time.Duration(j.Workers.RateLimitSweepInterval),
		},
		Source: Source{
			FindingsFile:  j.Source.FindingsFile,
			ScopePrefixes: j.Source.ScopePrefixes,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			Token:          j.Adapter.Token,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
