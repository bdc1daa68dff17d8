// Package common defines shared constants and sentinel errors used across
// the console, storage and pipeline layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Durable-store errors.
	ErrorCorruptValue = errors.New("corrupt stored value")
	ErrorStoreClosed  = errors.New("store closed")
)
