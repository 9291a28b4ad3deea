// Package store defines the persistence contracts for the vocabulary
// catalog and its learning state, together with the error taxonomy shared
// by all store implementations. Implementations live under
// internal/platform.
package store
