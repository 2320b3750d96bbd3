package cache

import "sync"

// MemoryRequestCacher is the in-process RequestCacher used when no redis
// server is configured.
type MemoryRequestCacher struct {
	MaxNumber int

	mu      sync.Mutex
	entries map[string][]string
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{
		MaxNumber: maxNumber,
		entries:   make(map[string][]string),
	}
}

func (library *MemoryRequestCacher) Write(key string, value []byte) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	list := append([]string{string(value)}, library.entries[key]...)
	if len(list) > library.MaxNumber {
		list = list[:library.MaxNumber]
	}
	library.entries[key] = list
	return nil
}

func (library *MemoryRequestCacher) Read(key string) ([]string, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	return append([]string{}, library.entries[key]...), nil
}
