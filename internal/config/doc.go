// Package config loads server, database and API settings from an optional
// config.yaml and APP_-prefixed environment variables, then validates them.
package config
