package catalog

// orderedMap is a string-keyed map that remembers insertion order.
// Listings expose entries in the order they were added; re-inserting an
// existing key removes the old entry first, so the key moves to the end.
type orderedMap[V any] struct {
	keys  []string
	index map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{
		index: make(map[string]V),
	}
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.index[key]
	return v, ok
}

func (m *orderedMap[V]) has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// set inserts or replaces the entry under key. A replaced key is moved to
// the end of the iteration order (remove-then-insert semantics).
func (m *orderedMap[V]) set(key string, value V) {
	if _, ok := m.index[key]; ok {
		m.removeKey(key)
	}
	m.keys = append(m.keys, key)
	m.index[key] = value
}

// delete removes the entry under key and reports whether it existed.
func (m *orderedMap[V]) delete(key string) bool {
	if _, ok := m.index[key]; !ok {
		return false
	}
	m.removeKey(key)
	delete(m.index, key)
	return true
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

// each visits entries in insertion order.
func (m *orderedMap[V]) each(fn func(key string, value V)) {
	for _, k := range m.keys {
		fn(k, m.index[k])
	}
}

func (m *orderedMap[V]) removeKey(key string) {
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}
