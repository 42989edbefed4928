// Package logger provides a structured logging facility based on Zap.
//
// The reconciliation pass has exactly three observable log surfaces:
// progress notifications at debug level, the final summary counts at info
// level, and per-row or per-batch faults at error level.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("reconciliation complete")
package logger
