// Package sqlite implements the store interfaces on top of a local SQLite
// database accessed through sqlx. SQLite is the persistence collaborator of
// this single-user tool: one durable record per word keyed by ID, with the
// review history as an append-only log table.
package sqlite
