// Package service implements the application operations over the store
// contracts: session lifecycle and review recording, catalog listings with
// composed statistics, dashboard aggregates, and the bulk resets. Each
// mutating operation runs inside a single transaction via
// store.RunInTransaction so existence checks and the writes that depend on
// them cannot be split by a concurrent deletion.
package service
