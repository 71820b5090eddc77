// Package config provides application configuration loading.
//
// Configuration is sourced from environment variables, optionally overlaid
// from a .env file, with defaults declared as struct tags on each section's
// Config type. Keys are nested (log, database, server, storage) and map to
// environment variables by replacing dots with underscores, e.g.
// DATABASE_DRIVER -> database.driver.
package config
