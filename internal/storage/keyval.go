package storage

import (
	"sort"
	"sync"
)

// Store is what the command executor works against. The interface exists so
// the instrumented wrapper can sit in front of the map implementation.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, bool)
	Delete(key string) error
	Keys() []string
	Len() int
}

type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Store = (*KV)(nil)

func NewKeyVal() *KV {
	return &KV{
		data: make(map[string]string),
	}
}

func (kv *KV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}

func (kv *KV) Get(key string) (string, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	val, ok := kv.data[key]
	return val, ok
}

// Delete removes key if present. Deleting an absent key is not an error.
func (kv *KV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return nil
}

// Keys returns every stored key in sorted order.
func (kv *KV) Keys() []string {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	keys := make([]string, 0, len(kv.data))
	for k := range kv.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (kv *KV) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return len(kv.data)
}
