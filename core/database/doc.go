// Package database provides the relational store connection.
//
// It wraps GORM with two drivers: sqlite (default, embedded file store) and
// mysql. The connector only opens the connection; schema migration belongs to
// the ledger store.
package database
