// Package orderedmap provides a generic map that remembers insertion order.
// Overwriting an existing key keeps its original position; iteration order is
// therefore first-seen order, which is what attribute serialization needs.
package orderedmap

import "iter"

type Map[K comparable, V any] struct {
	entries []K
	values  map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Set stores value under key. A key that is already present keeps its
// position in the iteration order; only its value is replaced.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.values[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.entries {
		if k == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	copy(keys, m.entries)
	return keys
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.entries = m.entries[:0]
	clear(m.values)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			if !yield(k, m.values[k]) {
				break
			}
		}
	}
}
