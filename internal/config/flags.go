package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// ParseFlags parses all server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d settings store DSN
//	-c/-config JSON or YAML config file path
//	-installation-secret vault key derivation secret
//	-kdf-iterations PBKDF2 iteration count
//	-origins comma separated CORS allow-list
//	-findings findings file path
//	-scope comma separated in-scope URL prefixes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per window per client
//	-rate-window rate limit window (e.g., "1m")
//	-broadcast-interval finding count poll interval (e.g., "2s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-issue-bridge", flag.ContinueOnError)

	var serverAddress NetAddress
	var dsn, configPath, installationSecret string
	var origins, findingsFile, scope string
	var kdfIterations, rateLimit int
	var requestTimeout, rateWindow, broadcastInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dsn, "d", "", "Settings store DSN")
	fs.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	fs.StringVar(&installationSecret, "installation-secret", "", "Vault key derivation secret")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS allow-list")
	fs.StringVar(&findingsFile, "findings", "", "Findings file path")
	fs.StringVar(&scope, "scope", "", "Comma separated in-scope URL prefixes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per window per client")
	fs.DurationVar(&rateWindow, "rate-window", 0, "Rate limit window (e.g., 1m)")
	fs.DurationVar(&broadcastInterval, "broadcast-interval", 0, "Finding count poll interval (e.g., 2s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			InstallationSecret: installationSecret,
			KDFIterations:      kdfIterations,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(origins),
			RateLimit: RateLimit{
				Capacity: rateLimit,
				Window:   rateWindow,
			},
		},
		Workers: Workers{
			BroadcastInterval: broadcastInterval,
		},
		Source: Source{
			FindingsFile:  findingsFile,
			ScopePrefixes: splitList(scope),
		},
		ConfigFilePath: configPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
