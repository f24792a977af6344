package catalog

import (
	"errors"
	"sync"

	"github.com/avelsher/armory/internal/armory"
)

// ErrEmptyCatalog indicates an attempt to install a catalog with no items.
var ErrEmptyCatalog = errors.New("catalog must contain at least one item")

// Storage provides access to the armor catalog the solvers draw from.
type Storage interface {
	Items() (armory.Items, error)
	Replace(items armory.Items) error
}

// MemoryStorage keeps the catalog in-memory and guards access with a
// RWMutex. Items themselves are shared immutable handles; only the slice is
// copied on the way in and out.
type MemoryStorage struct {
	mu    sync.RWMutex
	items armory.Items
}

// NewMemoryStorage initialises storage with the built-in default catalog.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: DefaultItems()}
}

// Items returns a defensive copy of the current catalog.
func (s *MemoryStorage) Items() (armory.Items, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneItems(s.items), nil
}

// Replace installs a new catalog. The provided collection must be non-empty.
func (s *MemoryStorage) Replace(items armory.Items) error {
	if len(items) == 0 {
		return ErrEmptyCatalog
	}
	clone := cloneItems(items)

	s.mu.Lock()
	s.items = clone
	s.mu.Unlock()

	return nil
}

func cloneItems(src armory.Items) armory.Items {
	out := make(armory.Items, len(src))
	copy(out, src)
	return out
}
