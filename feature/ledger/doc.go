// Package ledger owns the persisted side of the synthetic finance data:
// schema migration, mode-aware batch writes (replace, insert, merge), and
// the bulk reads the generation pipeline and reporting tools rely on.
package ledger
