// Package config loads the application configuration with Viper.
//
// Values come from the environment, optionally overlaid by a .env file. Defaults are
// declared in `default` struct tags next to each `mapstructure` key and registered by
// reflection. Nested keys map to upper-case environment names (server.port -> SERVER_PORT).
//
// # Configuration Structure
//
//   - Hub: teacher resolver switches. They also honour the bare names
//     USE_HEURISTICS_FOR_TEACHERS and SKIP_UNRECOGNIZED_TEACHERS.
//   - Sources: where structs, teachers and schedules are read from
//   - Output: dataset file and upload settings
//   - Server: HTTP port, API key, cache TTL, refresh schedule
//   - Storage: S3/MinIO credentials and bucket
//   - Database: MySQL or SQLite connection
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
package config
