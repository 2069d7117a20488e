// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("upload finished")
package logger
