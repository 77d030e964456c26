// Package store provides a small string-valued key-value store for
// per-user settings that must survive a single session, such as an
// explicitly selected display language.
//
// Two implementations are provided: Memory for tests and single-process
// use, and Redis for durable, shared storage. Both treat an absent key
// as store.ErrNotFound so callers can distinguish "never set" from an
// empty value.
package store
