// Package logger builds the zap logger shared by commands, the pipeline and HTTP handlers.
//
// The debug level selects zap's development preset (ISO8601 timestamps), any other level
// the production one. The console format uses colored levels without stack traces.
//
// HTTP handlers derive a request logger with WithRayID so that every entry of a request
// carries its ray_id. Middleware logs each request once it has been handled.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Dataset built", zap.Int("lessons", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
