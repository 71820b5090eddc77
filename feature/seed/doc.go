// Package seed generates the synthetic finance records.
//
// The pipeline runs customers -> accounts -> transactions, because child
// entities need a fully materialized, correctly dated parent. Identifier
// allocation, randomized field population, chronological transaction
// sequencing, running-balance bookkeeping, and load-mode reconciliation each
// live in their own file and compose in Service.Run.
package seed
