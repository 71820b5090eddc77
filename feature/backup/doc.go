// Package backup exports full-table JSON snapshots of the store, with an
// optional mirror to object storage.
package backup
