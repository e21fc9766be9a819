// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every line logged while saving a
// document's items can be correlated with the request that triggered it.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Save failed", zap.Uint64("document_id", id), zap.Error(err))
package logger
