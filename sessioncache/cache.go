// Package sessioncache implements the SSL session-cache collaborator of
// spec.md §6: entries keyed by session id, subject to a TTL and a maximum
// entry count, evicted oldest-by-insertion-order when full.
//
// The pack's LRU implementations (e.g. hashicorp/golang-lru's
// simplelru, vendored throughout ethereum-go-ethereum) reorder entries on
// every read, which is the wrong eviction policy here: spec.md §6 and §9
// require FIFO-by-insertion-order eviction, with reads never touching
// position and only a refresh-of-an-expired-entry moving an entry to the
// tail. container/list (stdlib) is the same doubly-linked-list primitive
// those LRU implementations build on, used directly since the ordering
// policy itself is bespoke.
package sessioncache

import (
	"container/list"
	"log"
	"sync"
	"time"
)

// Session is the embedded session record a cache entry carries. The peer
// certificate is never stored, per spec.md §6.
type Session struct {
	ID            []byte
	MasterSecret  [48]byte
	CipherSuiteID uint16
	CompressionID uint8
}

type entry struct {
	session   Session
	timestamp time.Time
}

// Cache is a session-id-keyed cache with a TTL and a maximum entry count.
type Cache struct {
	mu         sync.Mutex
	timeout    time.Duration
	maxEntries int
	order      *list.List               // front = oldest, back = newest
	index      map[string]*list.Element // keyed by string(session.ID)
	now        func() time.Time
}

// New returns an empty cache with the given TTL and entry cap.
func New(timeout time.Duration, maxEntries int) *Cache {
	return &Cache{
		timeout:    timeout,
		maxEntries: maxEntries,
		order:      list.New(),
		index:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

func (c *Cache) expired(e *entry) bool {
	return c.timeout > 0 && c.now().Sub(e.timestamp) > c.timeout
}

// Get looks up a session by id, returning nil if absent or expired. A hit
// does not move the entry — only insertion and refresh-of-expired change
// position, per spec.md §6.
func (c *Cache) Get(id []byte) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[string(id)]
	if !ok {
		return nil
	}
	e := el.Value.(*entry)
	if c.expired(e) {
		return nil
	}
	sess := e.session
	return &sess
}

// Set inserts or updates a session entry.
//
// Spec.md §9 flags a bug in the reference implementation: on finding an
// existing but expired entry, it deletes and later re-inserts using the
// literal field name of the outer session rather than the entry's own
// key. This implementation deletes the stale index entry under the entry's
// stored session id, then re-inserts it under the id of the entry's updated
// session, which is the same id the lookup matched.
func (c *Cache) Set(sess Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := string(sess.ID)
	if el, ok := c.index[key]; ok {
		e := el.Value.(*entry)
		if c.expired(e) {
			c.order.Remove(el)
			delete(c.index, string(e.session.ID))

			e.session = sess
			e.timestamp = c.now()
			c.index[string(e.session.ID)] = c.order.PushBack(e)
			return
		}
		// Existing, non-expired entry: update in place, preserve position.
		e.session = sess
		return
	}

	if c.maxEntries > 0 && c.order.Len() >= c.maxEntries {
		c.evictOldest()
	}

	e := &entry{session: sess, timestamp: c.now()}
	c.index[key] = c.order.PushBack(e)
}

func (c *Cache) evictOldest() {
	front := c.order.Front()
	if front == nil {
		return
	}
	e := front.Value.(*entry)
	c.order.Remove(front)
	delete(c.index, string(e.session.ID))
	log.Printf("sessioncache: evicted session %x (cache full)", e.session.ID)
}

// Remove deletes a session by id, if present.
func (c *Cache) Remove(id []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[string(id)]
	if !ok {
		return
	}
	c.order.Remove(el)
	delete(c.index, string(id))
}

// Len reports the number of entries currently cached, including expired
// ones not yet evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
