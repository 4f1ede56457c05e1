// Package verification holds pending email verification codes in process memory.
//
// Each normalized email address has at most one pending code. A code is consumed by
// the first matching Verify call and expires after the configured TTL. Expired entries
// are removed lazily when Verify reads them; nothing runs in the background unless a
// Sweeper is started explicitly.
package verification

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/loancompare/verify-api/internal/domain"
)

// DefaultTTL is how long an issued code stays eligible for verification.
const DefaultTTL = 10 * time.Minute

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims surrounding whitespace and lower-cases the address.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail is a syntactic local@domain.tld check on the normalized address.
// It does not look at DNS or deliverability.
func IsValidEmail(email string) bool {
	return emailShape.MatchString(Normalize(email))
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// Cache maps normalized email addresses to their pending verification record.
// The zero value is not usable; create one with NewCache.
type Cache struct {
	mu      sync.Mutex
	entries map[string]domain.VerificationRecord
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]domain.VerificationRecord),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured code lifetime.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Issue stores code as the only pending code for email, replacing any previous one.
// It silently does nothing when the normalized address is empty or has no '@'.
func (c *Cache) Issue(email, code string) {
	key := Normalize(email)
	if key == "" || !strings.Contains(key, "@") {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = domain.VerificationRecord{
		Code:      code,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Verify reports whether candidate matches the pending, unexpired code for email.
// A match consumes the record. A mismatch leaves it in place so the caller may retry.
// Missing, expired, wrong and already-consumed codes all yield false.
func (c *Cache) Verify(email, candidate string) bool {
	key := Normalize(email)
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.entries[key]
	if !ok {
		return false
	}
	if rec.Expired(c.now()) {
		delete(c.entries, key)
		return false
	}
	if rec.Code != strings.TrimSpace(candidate) {
		return false
	}
	delete(c.entries, key)
	return true
}

// Len returns the number of stored records, including expired ones not yet read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep drops every expired record and returns how many were removed.
// Issue and Verify never call it.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for key, rec := range c.entries {
		if rec.Expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
