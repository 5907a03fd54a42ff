// Package rfq holds the quote-request lists users build while browsing the
// catalogue.
package rfq

import (
	"sync"

	"petro-catalog/internal/model"
)

// List is an ordered set of quote-request items keyed by product id.
// Insertion order is preserved; adding an id that is already present is a
// no-op. Lists live for the lifetime of their session.
type List struct {
	mu    sync.RWMutex
	items []model.RFQItem
	index map[string]struct{}
}

// NewList creates an empty quote-request list.
func NewList() *List {
	return &List{
		index: make(map[string]struct{}),
	}
}

// Add appends the item unless an item with the same id is already present.
// Returns true when the item was added.
func (l *List) Add(item model.RFQItem) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.index[item.ID]; exists {
		return false
	}
	l.items = append(l.items, item)
	l.index[item.ID] = struct{}{}
	return true
}

// Contains reports whether an item with the given id is in the list.
func (l *List) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, exists := l.index[id]
	return exists
}

// Count returns the number of distinct ids held.
func (l *List) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Items returns a copy of the list in insertion order.
func (l *List) Items() []model.RFQItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.RFQItem, len(l.items))
	copy(out, l.items)
	return out
}

// Remove deletes the item with the given id, preserving the order of the
// rest. Returns true when an item was removed.
func (l *List) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.index[id]; !exists {
		return false
	}
	delete(l.index, id)
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every item.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.index = make(map[string]struct{})
}
