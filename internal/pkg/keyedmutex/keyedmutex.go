package keyedmutex

import "sync"

// KeyedMutex serializes critical sections per string key while letting
// distinct keys proceed in parallel. Entries are created lazily and kept for
// the lifetime of the mutex; the key space here (product ids, order ids) is
// small and bounded by the catalog.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
