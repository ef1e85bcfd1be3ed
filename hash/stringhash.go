package hash

import (
	"github.com/lyraproj/boxiter/eval"
)

// Mutable and order preserving hash with string keys and eval.Value values. Used as the storage
// of the Dict and Set containers

type (
	stringEntry struct {
		key   string
		value eval.Value
	}

	StringHash struct {
		entries []*stringEntry
		index   map[string]int
	}
)

// NewStringHash returns an empty *StringHash initialized with given capacity
func NewStringHash(capacity int) *StringHash {
	return &StringHash{make([]*stringEntry, 0, capacity), make(map[string]int, capacity)}
}

// EachPair calls the given consumer function once for each key/value pair in this hash
func (h *StringHash) EachPair(consumer func(key string, value eval.Value)) {
	for _, e := range h.entries {
		consumer(e.key, e.value)
	}
}

// EachValue calls the given consumer function once for each value in this hash
func (h *StringHash) EachValue(consumer func(value eval.Value)) {
	for _, e := range h.entries {
		consumer(e.value)
	}
}

// Equals compares two hashes for equality. Hashes are considered equal if the have
// the same size and contains the same key/value associations irrespective of order
func (h *StringHash) Equals(other interface{}) bool {
	oh, ok := other.(*StringHash)
	if !ok || len(h.entries) != len(oh.entries) {
		return false
	}

	for _, e := range h.entries {
		oi, ok := oh.index[e.key]
		if !(ok && eval.Equals(e.value, oh.entries[oi].value)) {
			return false
		}
	}
	return true
}

// Get returns a value from the hash or nil together with a boolean to indicate if the key was present or not
func (h *StringHash) Get(key string) (eval.Value, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Delete the entry for the given key from the hash. Returns the old value or nil if not found
func (h *StringHash) Delete(key string) (oldValue eval.Value) {
	p, ok := h.index[key]
	if !ok {
		return nil
	}
	oldValue = h.entries[p].value
	delete(h.index, key)
	for k, v := range h.index {
		if v > p {
			h.index[k] = v - 1
		}
	}
	copy(h.entries[p:], h.entries[p+1:])
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return
}

// Includes returns true if the hash contains the given key
func (h *StringHash) Includes(key string) bool {
	_, ok := h.index[key]
	return ok
}

// IsEmpty returns true if the hash has no entries
func (h *StringHash) IsEmpty() bool {
	return len(h.entries) == 0
}

// KeyAt returns the key of the entry at the given position in insertion order
func (h *StringHash) KeyAt(pos int) string {
	return h.entries[pos].key
}

// Keys returns the keys of the hash in the order that they were first entered
func (h *StringHash) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Put adds a new key/value association to the hash or replace the value of an existing association
func (h *StringHash) Put(key string, value eval.Value) (oldValue eval.Value) {
	if p, ok := h.index[key]; ok {
		e := h.entries[p]
		oldValue = e.value
		e.value = value
	} else {
		h.index[key] = len(h.entries)
		h.entries = append(h.entries, &stringEntry{key, value})
	}
	return
}

// Len returns the number of entries in the hash
func (h *StringHash) Len() int {
	return len(h.entries)
}

// Values returns the values of the hash in the order that their respective keys were first entered
func (h *StringHash) Values() []eval.Value {
	values := make([]eval.Value, len(h.entries))
	for i, e := range h.entries {
		values[i] = e.value
	}
	return values
}
