// Package config loads the service configuration from the environment.
//
// A .env file in the working directory is applied first, then every key is
// read from environment variables named after its section, e.g.
// DATABASE_DRIVER, DATABASE_TABLE_PREFIX, LOCK_REDIS_ADDR, ITEMS_DEFAULT_UNIT.
// Defaults come from the `default` struct tags of each section:
//   - Server: HTTP port, API key and body limit
//   - Storage: MinIO/S3 settings for snapshot export
//   - Log: level and format
//   - Database: driver (mysql, postgres, sqlite), DSN parts and table prefix
//   - Lock: optional redis lock
//   - Items: seed unit and export prefix
package config
