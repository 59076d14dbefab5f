package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8090", want: NetAddress{Host: "localhost", Port: 8090}},
		{name: "ipv4", input: "127.0.0.1:1", want: NetAddress{Host: "127.0.0.1", Port: 1}},
		{name: "all interfaces", input: ":8090", want: NetAddress{Port: 8090}},
		{name: "no port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:abc", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too big", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "not-an-ip:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9100",
		"-d", "settings.json",
		"-config", "bridge.yaml",
		"-installation-secret", "secret",
		"-kdf-iterations", "120000",
		"-origins", "http://a, http://b",
		"-findings", "findings.yaml",
		"-scope", "https://scope.example/",
		"-request-timeout", "5s",
		"-rate-limit", "10",
		"-rate-window", "30s",
		"-broadcast-interval", "1s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9100", cfg.Server.HTTPAddress)
	assert.Equal(t, "settings.json", cfg.Storage.DB.DSN)
	assert.Equal(t, "bridge.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "secret", cfg.App.InstallationSecret)
	assert.Equal(t, 120000, cfg.App.KDFIterations)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "findings.yaml", cfg.Source.FindingsFile)
	assert.Equal(t, []string{"https://scope.example/"}, cfg.Source.ScopePrefixes)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10, cfg.Server.RateLimit.Capacity)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimit.Window)
	assert.Equal(t, time.Second, cfg.Workers.BroadcastInterval)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.Server.AllowedOrigins)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nonsense"})
	assert.Error(t, err)
}
