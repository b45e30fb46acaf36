package inmemorycache

import (
	"encoding/json"
	"sync"
	"time"
	"ulascansenturk/weather-records/internal/ingest"
)

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

// Cache keeps recent ingestion reports so clients can fetch line failures
// after the upload response has been sent.
type Cache interface {
	Get(reportID string) (*ingest.Report, bool, error)
	Set(reportID string, report *ingest.Report, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache) Get(reportID string) (*ingest.Report, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[reportID]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, reportID)
		return nil, false, nil
	}

	var report ingest.Report
	if err := json.Unmarshal(entry.data, &report); err != nil {
		return nil, false, err
	}

	return &report, true, nil
}

func (m *InMemoryCache) Set(reportID string, report *ingest.Report, ttl time.Duration) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[reportID] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (m *InMemoryCache) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.removeExpired()
		}
	}
}

func (m *InMemoryCache) removeExpired() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now()
	for k, v := range m.cache {
		if now.After(v.expiration) {
			delete(m.cache, k)
		}
	}
}

func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}
