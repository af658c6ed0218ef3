// Package liststore mirrors a typed value to a durable key/value medium.
//
// A Store keeps the authoritative in-memory snapshot for the session and
// rewrites the whole encoded value under one fixed key on every change.
// Reading a missing or malformed entry at startup yields the default value.
package liststore

import (
	"context"
	"fmt"

	"github.com/runoshun/tracker/internal/domain"
)

// Store is a typed value persisted under a single key.
type Store[T any] struct {
	medium   domain.Medium
	codec    domain.Codec
	logger   domain.Logger
	validate func(T) error
	snapshot T
	key      string
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithCodec sets the value encoding (JSON by default).
func WithCodec[T any](codec domain.Codec) Option[T] {
	return func(s *Store[T]) {
		s.codec = codec
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger[T any](logger domain.Logger) Option[T] {
	return func(s *Store[T]) {
		s.logger = logger
	}
}

// WithValidator rejects decoded values that fail fn; they are treated as malformed.
func WithValidator[T any](fn func(T) error) Option[T] {
	return func(s *Store[T]) {
		s.validate = fn
	}
}

// Open reads key from medium and returns a Store holding the decoded value.
// If the entry is absent, cannot be read, or does not decode, the snapshot
// is def. Open never fails on stored data.
func Open[T any](ctx context.Context, medium domain.Medium, key string, def T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		medium:   medium,
		key:      key,
		codec:    JSONCodec{},
		logger:   domain.NopLogger{},
		snapshot: def,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := medium.Get(ctx, key)
	switch {
	case err != nil:
		s.logger.Warn("store", fmt.Sprintf("read %q: %v; starting from default", key, err))
		return s
	case !ok:
		s.logger.Debug("store", fmt.Sprintf("no entry for %q; starting from default", key))
		return s
	}

	v, ok := TryDecode[T](s.codec, data)
	if ok && s.validate != nil {
		if verr := s.validate(v); verr != nil {
			s.logger.Warn("store", fmt.Sprintf("entry %q is invalid: %v", key, verr))
			ok = false
		}
	}
	if !ok {
		s.logger.Warn("store", fmt.Sprintf("entry %q is malformed; starting from default", key))
		return s
	}

	s.snapshot = v
	return s
}

// Key returns the fixed key the store writes to.
func (s *Store[T]) Key() string {
	return s.key
}

// Read returns the current snapshot.
func (s *Store[T]) Read() T {
	return s.snapshot
}

// Write makes v the snapshot and persists it.
// The snapshot is updated even when persisting fails; the returned error
// then wraps domain.ErrPersist.
func (s *Store[T]) Write(ctx context.Context, v T) error {
	s.snapshot = v
	return s.persist(ctx)
}

// Update replaces the snapshot with fn(snapshot) and persists it.
func (s *Store[T]) Update(ctx context.Context, fn func(T) T) error {
	return s.Write(ctx, fn(s.snapshot))
}

func (s *Store[T]) persist(ctx context.Context) error {
	data, err := s.codec.Marshal(s.snapshot)
	if err != nil {
		s.logger.Error("store", fmt.Sprintf("encode %q: %v", s.key, err))
		return fmt.Errorf("%w: encode: %w", domain.ErrPersist, err)
	}
	if err := s.medium.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("store", fmt.Sprintf("write %q: %v; change kept for this session only", s.key, err))
		return fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}
	return nil
}

// TryDecode decodes data into a T. The second result is false when data
// cannot be decoded; the decode error is not reported.
func TryDecode[T any](codec domain.Codec, data []byte) (T, bool) {
	var v T
	if err := codec.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
