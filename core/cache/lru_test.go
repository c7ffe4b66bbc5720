package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/cache"
)

func TestLRUCache_Basics(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())

	v, ok = c.Remove("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = c.Remove("b")
	assert.False(t, ok)

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[int, string](2)
	var evicted []int
	c.SetEvictCallback(func(k int, _ string) { evicted = append(evicted, k) })

	c.Put(1, "one")
	c.Put(2, "two")
	_, _ = c.Get(1) // 2 is now least recently used
	c.Put(3, "three")

	_, ok := c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, []int{2}, evicted)

	c.Remove(1)
	c.Clear()
	assert.Equal(t, []int{2}, evicted)
}

func TestLRUCache_MinimumCapacity(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](0)
	c.Put("a", 1)
	c.Put("b", 2)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("b")
	assert.True(t, ok)
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[int, int](64)
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				c.Put(w*1000+i, i)
				c.Get(i)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}
