// Package config loads runtime configuration for the Pulse client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Pulse backend
//	-t int      request timeout in seconds
//	-c/-config  path to a JSON config file
package config
