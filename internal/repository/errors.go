// Package repository contains the entity storage layer separated from HTTP
// handlers. Each entity has one storage contract with two interchangeable
// implementations: a volatile in-process one and a durable MySQL-backed one.
// This file defines sentinel errors shared by both so that higher layers can
// distinguish failure scenarios with errors.Is.
package repository

import "errors"

// ErrNotFound is returned when an operation references an entity id that
// does not exist. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
