// Package config provides configuration loading, merging, and validation
// facilities for the bridge service and its CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON or YAML config file
//
// Fields left unset by every source take their value from [Defaults].
// The main entry points are [GetStructuredConfig] for the server and
// [LoadConfig] for bridgectl.
package config
