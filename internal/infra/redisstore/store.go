// Package redisstore provides a Redis implementation of domain.Medium.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/runoshun/tracker/internal/domain"
)

// Store keeps each value in a plain Redis string under "<namespace>:<key>".
type Store struct {
	client *redis.Client
	prefix string
}

// Open connects to addr and pings the server.
func Open(ctx context.Context, addr, namespace string) (*Store, error) {
	if addr == "" {
		return nil, domain.ErrMissingStoreAddr
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return New(client, namespace), nil
}

// New wraps an existing client.
func New(client *redis.Client, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{client: client, prefix: namespace + ":"}
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the value under key. Values never expire.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements domain.Medium.
var _ domain.Medium = (*Store)(nil)
