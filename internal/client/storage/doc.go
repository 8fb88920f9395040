// Package storage bootstraps the local key/value store: it opens the SQLite
// file and applies embedded goose migrations, or connects to Redis, or hands
// out an in-memory store, depending on configuration.
package storage
