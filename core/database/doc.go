// Package database opens the relational database used by the roster source and the
// dataset export.
//
// It wraps GORM and supports two drivers:
//   - mysql: production deployments, DSN built from host, port, user and password.
//   - sqlite: local runs and tests, Name is the file path or ":memory:".
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
