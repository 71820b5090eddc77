// Package models defines the ledger entities (customers, accounts,
// transactions), their closed enumerations, and the load mode selector.
package models
