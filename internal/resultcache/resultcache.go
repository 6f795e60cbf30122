// Package resultcache memoizes query result counts in Redis, keyed by
// snapshot generation and a canonical encoding of the query, so repeated
// identical requests against an unchanged snapshot skip re-walking the
// index.
package resultcache

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counts is the cached shape of a query result: just the two counts, not
// the gene/annotation payload itself.
type Counts struct {
	GeneCount       int
	AnnotationCount int
}

// TTL bounds how long a cached entry survives; snapshots are also
// invalidated structurally by keying on generation, so this is a backstop
// against unbounded growth rather than a correctness requirement.
const TTL = 10 * time.Minute

// Cache wraps a redis client. A nil *Cache is valid and every method is a
// no-op / always-miss on it, so the façade can run with no Redis
// configured at all.
type Cache struct {
	client *redis.Client
}

// New wraps an already-configured redis client.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Dial connects to addr and wraps the resulting client.
func Dial(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return New(redis.NewClient(&redis.Options{Addr: addr}))
}

// Key builds the canonical cache key for a snapshot generation, a query
// strategy name ("all", "union", "intersection") and its segment list. The
// segment list is sorted first so two requests naming the same segments in
// a different order hash to the same key.
func Key(generation uint64, strategy string, segments []string) string {
	sorted := append([]string(nil), segments...)
	sort.Strings(sorted)
	return fmt.Sprintf("goannot:%d:%s:%s", generation, strategy, strings.Join(sorted, "|"))
}

// Get returns the cached counts for key, or ok=false on a miss (including
// when the Cache itself is nil).
func (c *Cache) Get(ctx context.Context, key string) (Counts, bool) {
	if c == nil {
		return Counts{}, false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return Counts{}, false
	}
	genes, annos, ok := splitCounts(val)
	if !ok {
		return Counts{}, false
	}
	return Counts{GeneCount: genes, AnnotationCount: annos}, true
}

// Set stores counts under key with TTL. It is a no-op on a nil *Cache, and
// errors are swallowed: the cache is an optimization, never a dependency
// the query path can fail on.
func (c *Cache) Set(ctx context.Context, key string, counts Counts) {
	if c == nil {
		return
	}
	val := fmt.Sprintf("%d,%d", counts.GeneCount, counts.AnnotationCount)
	c.client.Set(ctx, key, val, TTL)
}

// Close releases the underlying connection. Safe to call on a nil *Cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func splitCounts(val string) (genes, annos int, ok bool) {
	parts := strings.SplitN(val, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	g, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	a, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return g, a, true
}
