// Package config resolves runtime configuration from YAML files, environment
// variables, and CLI flags, with precedence: CLI flags > YAML config >
// Environment variables > Defaults. It exposes strongly typed settings to
// the rest of the application, including the operational cap on exhaustive
// search input size.
package config
