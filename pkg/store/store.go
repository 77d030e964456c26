package store

import (
	"context"
	"errors"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a key is absent from the store.
	ErrNotFound = errors.New("store: entry not found")

	// ErrEmptyKey is returned when an empty key is used.
	ErrEmptyKey = errors.New("store: key cannot be empty")

	// ErrEmptyConnectionURL is returned when Open is called without a URL.
	ErrEmptyConnectionURL = errors.New("store: connection URL cannot be empty")

	// ErrInvalidConnectionURL is returned when the connection URL cannot be parsed.
	ErrInvalidConnectionURL = errors.New("store: invalid connection URL")
)

// Store is a string-valued key-value store persisted across client
// sessions. It holds small per-user settings such as the last explicitly
// selected display language.
//
// Implementations must treat an absent key as ErrNotFound rather than an
// empty value, so callers can distinguish "never set" from "set to empty".
type Store interface {
	// Get retrieves a value by key. Returns ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
