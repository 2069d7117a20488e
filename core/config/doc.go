// Package config loads application configuration from environment
// variables and an optional .env file.
//
// Configuration keys are derived from nested mapstructure tags, with
// underscores joining the path: the storage section's endpoint becomes
// STORAGE_ENDPOINT, the log level LOG_LEVEL, and so on. Defaults come from
// the 'default' struct tags on each section.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	client, err := storage.NewClient(cfg.Storage)
package config
