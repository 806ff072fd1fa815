// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and plain-console or JSON encodings.
//
// # Cycle correlation
//
// The run loop processes one cycle at a time; WithCycleID attaches the cycle's
// identifier to the logger so every log line produced while ingesting,
// reconciling and notifying within that cycle can be correlated.
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
//	log.Info("Cycle started")
//
//	// Inside a cycle:
//	l := logger.WithCycleID(log, cycleID)
//	l.Error("Append failed", zap.Error(err))
package logger
