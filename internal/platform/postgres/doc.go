// Package postgres contains the PostgreSQL implementations of the store
// interfaces, built on database/sql over the pgx stdlib driver. Aggregate
// values are computed with count queries on every read; no denormalized
// counters are maintained.
package postgres
