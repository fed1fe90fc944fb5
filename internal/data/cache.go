package data

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"sync"
	"time"

	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"
)

const defaultResultCacheTTL = 1 * time.Hour

type cacheEntry struct {
	results   []optimizer.RankedConfiguration
	expiresAt time.Time
}

// ResultCache memoizes ranking results per project input. A nil
// *ResultCache is valid and caches nothing.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewResultCache starts a cache whose entries live for ttl.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = defaultResultCacheTTL
	}
	c := &ResultCache{
		store: make(map[string]cacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.cleanup(5 * time.Minute)
	return c
}

// ResultCacheFromEnv returns a cache when ENABLE_RESULT_CACHE=true and nil
// otherwise. RESULT_CACHE_TTL takes a Go duration ("30m").
func ResultCacheFromEnv() *ResultCache {
	if os.Getenv("ENABLE_RESULT_CACHE") != "true" {
		return nil
	}
	ttl := defaultResultCacheTTL
	if s := os.Getenv("RESULT_CACHE_TTL"); s != "" {
		if parsed, err := time.ParseDuration(s); err == nil {
			ttl = parsed
		}
	}
	return NewResultCache(ttl)
}

// Get returns the cached results for key if present and not expired.
func (c *ResultCache) Get(key string) ([]optimizer.RankedConfiguration, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.results, true
}

func (c *ResultCache) Set(key string, results []optimizer.RankedConfiguration) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = cacheEntry{
		results:   results,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *ResultCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]cacheEntry)
}

// Close stops the background sweeper.
func (c *ResultCache) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}

func (c *ResultCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *ResultCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// CacheKey hashes the project input. Inputs that differ only in reporting
// fields such as City still get distinct keys.
func CacheKey(in model.ProjectInput) string {
	raw, _ := json.Marshal(in)
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:])
}
