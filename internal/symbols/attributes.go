package symbols

import (
	"fmt"
	"sort"
	"sync"

	"github.com/funvibe/cs2dec/internal/params"
	"github.com/funvibe/cs2dec/internal/typesystem"
)

// AttributeTable maps attribute (param) ids to the stack type of their values.
type AttributeTable struct {
	mu    sync.RWMutex
	types map[int]*typesystem.Atomic
}

func NewAttributeTable() *AttributeTable {
	return &AttributeTable{types: make(map[int]*typesystem.Atomic)}
}

// Populate loads every record from store and returns the resulting table
// size. A later record with the same id replaces the earlier one.
func (t *AttributeTable) Populate(store params.Store) (int, error) {
	records, err := store.Records()
	if err != nil {
		return 0, fmt.Errorf("loading attributes: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, rec := range records {
		t.types[rec.ID] = typesystem.DecodeCompact(rec.StackType)
	}
	return len(t.types), nil
}

// Lookup returns the stack type of attribute id.
func (t *AttributeTable) Lookup(id int) (*typesystem.Atomic, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	typ, ok := t.types[id]
	return typ, ok
}

// TypeOf is Lookup with unknown attributes reported as typesystem.Unknown.
func (t *AttributeTable) TypeOf(id int) *typesystem.Atomic {
	if typ, ok := t.Lookup(id); ok {
		return typ
	}
	return typesystem.Unknown
}

func (t *AttributeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.types)
}

// IDs returns the known attribute ids in ascending order.
func (t *AttributeTable) IDs() []int {
	t.mu.RLock()
	ids := make([]int, 0, len(t.types))
	for id := range t.types {
		ids = append(ids, id)
	}
	t.mu.RUnlock()
	sort.Ints(ids)
	return ids
}

// Attributes is the process-wide attribute table.
var Attributes = NewAttributeTable()

// PopulateAttributes fills the process-wide table from store and returns
// its size.
func PopulateAttributes(store params.Store) (int, error) {
	return Attributes.Populate(store)
}
