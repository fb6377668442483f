package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	kv := NewKeyVal()

	require.NoError(t, kv.Set("username", "john"))

	val, ok := kv.Get("username")
	require.True(t, ok)
	assert.Equal(t, "john", val)
}

func TestGetAbsentKey(t *testing.T) {
	kv := NewKeyVal()

	_, ok := kv.Get("nonexistent")
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	kv := NewKeyVal()

	require.NoError(t, kv.Set("k", "v1"))
	require.NoError(t, kv.Set("k", "v2"))

	val, ok := kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", val)
	assert.Equal(t, 1, kv.Len())
}

func TestDeleteIsIdempotent(t *testing.T) {
	kv := NewKeyVal()

	require.NoError(t, kv.Set("k", "v"))
	require.NoError(t, kv.Delete("k"))

	_, ok := kv.Get("k")
	assert.False(t, ok)

	// absent key, still no error
	require.NoError(t, kv.Delete("k"))
	require.NoError(t, kv.Delete("never-existed"))
	assert.Equal(t, 0, kv.Len())
}

func TestKeysAreCaseSensitive(t *testing.T) {
	kv := NewKeyVal()

	require.NoError(t, kv.Set("K", "upper"))
	require.NoError(t, kv.Set("k", "lower"))

	upper, ok := kv.Get("K")
	require.True(t, ok)
	lower, ok := kv.Get("k")
	require.True(t, ok)

	assert.Equal(t, "upper", upper)
	assert.Equal(t, "lower", lower)
}

func TestKeysSorted(t *testing.T) {
	kv := NewKeyVal()

	require.NoError(t, kv.Set("zebra", "1"))
	require.NoError(t, kv.Set("apple", "2"))
	require.NoError(t, kv.Set("mango", "3"))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, kv.Keys())
}

func TestConcurrentSetsOnSameKey(t *testing.T) {
	kv := NewKeyVal()

	const n = 32
	written := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		written[fmt.Sprintf("value_%d", i)] = true
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			value := fmt.Sprintf("value_%d", i)
			require.NoError(t, kv.Set("shared", value))

			got, ok := kv.Get("shared")
			assert.True(t, ok)
			assert.True(t, written[got], "observed a value nobody wrote: %q", got)
		}(i)
	}
	wg.Wait()

	final, ok := kv.Get("shared")
	require.True(t, ok)
	assert.True(t, written[final])
	assert.Equal(t, 1, kv.Len())
}
