// Package storage provides the key-value backends the recipe store persists
// through. Every backend holds whole string values under string keys, the
// same contract a browser's local storage offers.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close
var ErrClosed = errors.New("storage: backend closed")

// KeyValue is a string-to-string store. Get reports a missing key with
// ok == false and a nil error; errors are reserved for backend failures.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks kv if it supports health checks and succeeds otherwise
func Ping(ctx context.Context, kv KeyValue) error {
	if p, ok := kv.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
