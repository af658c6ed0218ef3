// Package idgen provides task id generators.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"

	"github.com/runoshun/tracker/internal/domain"
)

// NanoIDLength is the length of generated nanoids.
const NanoIDLength = 21

// nanoIDAlphabet leaves out '-' and '_' so an id or id prefix never reads as a CLI flag.
const nanoIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// NanoID generates alphanumeric nanoids.
type NanoID struct {
	next func() string
}

// NewNanoID creates a NanoID generator.
func NewNanoID() (*NanoID, error) {
	next, err := nanoid.CustomASCII(nanoIDAlphabet, NanoIDLength)
	if err != nil {
		return nil, fmt.Errorf("create nanoid generator: %w", err)
	}
	return &NanoID{next: next}, nil
}

// NewID returns a new nanoid.
func (n *NanoID) NewID() string {
	return n.next()
}

// New returns the generator for scheme. An empty scheme means uuid.
func New(scheme string) (domain.IDGenerator, error) {
	switch scheme {
	case "", domain.IDSchemeUUID:
		return UUID{}, nil
	case domain.IDSchemeNanoID:
		return NewNanoID()
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownIDScheme, scheme)
	}
}

var (
	_ domain.IDGenerator = UUID{}
	_ domain.IDGenerator = (*NanoID)(nil)
)
