package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderedKeys[V any](m *orderedMap[V]) []string {
	var keys []string
	m.each(func(k string, _ V) {
		keys = append(keys, k)
	})
	return keys
}

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("c", 1)
	m.set("a", 2)
	m.set("b", 3)

	assert.Equal(t, []string{"c", "a", "b"}, orderedKeys(m))
	assert.Equal(t, 3, m.len())
}

func TestOrderedMap_ReplaceMovesToEnd(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("a", 1)
	m.set("b", 2)
	m.set("a", 3)

	assert.Equal(t, []string{"b", "a"}, orderedKeys(m))
	assert.Equal(t, 2, m.len())

	v, ok := m.get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestOrderedMap_Delete(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("a", 1)
	m.set("b", 2)
	m.set("c", 3)

	assert.True(t, m.delete("b"))
	assert.False(t, m.delete("b"))
	assert.Equal(t, []string{"a", "c"}, orderedKeys(m))

	_, ok := m.get("b")
	assert.False(t, ok)
	assert.False(t, m.has("b"))
}

func TestOrderedMap_Empty(t *testing.T) {
	m := newOrderedMap[int]()
	assert.Equal(t, 0, m.len())
	assert.Empty(t, orderedKeys(m))
	assert.False(t, m.delete("x"))
}
