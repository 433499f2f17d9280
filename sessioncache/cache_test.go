package sessioncache

import (
	"testing"
	"time"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := New(time.Hour, 10)
	sess := Session{ID: []byte("session-1"), CipherSuiteID: 0x1301}
	c.Set(sess)

	got := c.Get([]byte("session-1"))
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if got.CipherSuiteID != 0x1301 {
		t.Errorf("CipherSuiteID = %x, want 0x1301", got.CipherSuiteID)
	}
}

func TestGetMiss(t *testing.T) {
	c := New(time.Hour, 10)
	if got := c.Get([]byte("nope")); got != nil {
		t.Errorf("expected a cache miss, got %+v", got)
	}
}

func TestExpiry(t *testing.T) {
	c := New(10*time.Millisecond, 10)
	c.Set(Session{ID: []byte("session-1")})

	if got := c.Get([]byte("session-1")); got == nil {
		t.Fatal("expected a hit before expiry")
	}

	fakeNow := time.Now().Add(time.Second)
	c.now = func() time.Time { return fakeNow }

	if got := c.Get([]byte("session-1")); got != nil {
		t.Errorf("expected a miss after expiry, got %+v", got)
	}
}

func TestEvictOldestOnInsertWhenFull(t *testing.T) {
	c := New(time.Hour, 2)
	c.Set(Session{ID: []byte("a")})
	c.Set(Session{ID: []byte("b")})
	c.Set(Session{ID: []byte("c")}) // should evict "a"

	if got := c.Get([]byte("a")); got != nil {
		t.Errorf("expected %q to be evicted", "a")
	}
	if got := c.Get([]byte("b")); got == nil {
		t.Errorf("expected %q to survive", "b")
	}
	if got := c.Get([]byte("c")); got == nil {
		t.Errorf("expected %q to survive", "c")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestUpdateExistingNonExpiredPreservesPosition(t *testing.T) {
	c := New(time.Hour, 2)
	c.Set(Session{ID: []byte("a")})
	c.Set(Session{ID: []byte("b")})

	// Update "a" in place; since it is not expired, it should stay the
	// oldest entry and be the one evicted next.
	c.Set(Session{ID: []byte("a"), CipherSuiteID: 7})

	c.Set(Session{ID: []byte("c")}) // should still evict "a", not "b"

	if got := c.Get([]byte("a")); got != nil {
		t.Errorf("expected %q to be evicted despite the update", "a")
	}
	if got := c.Get([]byte("b")); got == nil {
		t.Errorf("expected %q to survive", "b")
	}
}

func TestRefreshExpiredEntryMovesToTail(t *testing.T) {
	c := New(10*time.Millisecond, 2)
	c.Set(Session{ID: []byte("a")})
	c.Set(Session{ID: []byte("b")})

	fakeNow := time.Now().Add(time.Second)
	c.now = func() time.Time { return fakeNow }

	// "a" is expired; re-setting it should refresh its timestamp and move
	// it to the tail, making "b" (now the front) the next eviction target.
	c.Set(Session{ID: []byte("a"), CipherSuiteID: 9})
	c.now = time.Now

	c.Set(Session{ID: []byte("c")}) // should evict "b", not "a"

	if got := c.Get([]byte("b")); got != nil {
		t.Errorf("expected %q to be evicted", "b")
	}
	if got := c.Get([]byte("a")); got == nil {
		t.Errorf("expected refreshed %q to survive", "a")
	}
}

func TestRemove(t *testing.T) {
	c := New(time.Hour, 10)
	c.Set(Session{ID: []byte("a")})
	c.Remove([]byte("a"))
	if got := c.Get([]byte("a")); got != nil {
		t.Errorf("expected %q to be removed", "a")
	}
}
