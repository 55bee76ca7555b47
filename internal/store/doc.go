// Package store defines the persistence contracts for the study-tracking
// core: one interface per entity, the shared transaction helper, and the
// sentinel errors implementations must return. Implementations live in
// internal/platform/postgres.
package store
