// Package gitstore provides a Git plumbing-based implementation of domain.Medium.
package gitstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/tracker/internal/domain"
)

// Store implements domain.Medium using Git refs and blobs.
//
// Data structure:
//
//	refs/<namespace>/
//	  <key>  → blob (encoded value)
//
// The values never touch the working tree or the commit history.
type Store struct {
	repo      *git.Repository
	namespace string // e.g., "tracker"
	mu        sync.RWMutex
}

// Open opens the repository at repoPath, creating a bare one if missing.
func Open(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpen(repoPath)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(repoPath, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{
		repo:      repo,
		namespace: namespace,
	}
}

// refPrefix returns the ref prefix for this namespace.
func (s *Store) refPrefix() string {
	return "refs/" + s.namespace + "/"
}

// keyRef returns the ref name for a key.
func (s *Store) keyRef(key string) (plumbing.ReferenceName, error) {
	name := plumbing.ReferenceName(s.refPrefix() + key)
	if key == "" || strings.ContainsAny(key, " ~^:?*[\\") || strings.Contains(key, "..") ||
		strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") || strings.HasSuffix(key, ".lock") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStoreKey, key)
	}
	return name, nil
}

// ValidateKey reports whether key can be used as a ref name.
func (s *Store) ValidateKey(key string) error {
	_, err := s.keyRef(key)
	return err
}

// Get reads the blob the key's ref points at.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	name, err := s.keyRef(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes value as a new blob and points the key's ref at it.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	name, err := s.keyRef(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob(value)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(name, hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set ref: %w", err)
	}
	return nil
}

func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}

// Ensure Store implements domain.Medium.
var _ domain.Medium = (*Store)(nil)
