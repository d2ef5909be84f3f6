// Package store holds the in-memory collections behind the API. These
// sentinel errors let handlers map data-layer failures onto HTTP status
// codes without inspecting error strings.
package store

import "errors"

// ErrNotFound is returned when a lookup references an identifier that does
// not exist in the store. Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned by CreateUser when the requested username is
// already registered. Usernames are unique across the store.
var ErrUsernameTaken = errors.New("username already exists")
