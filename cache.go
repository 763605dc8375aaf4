package robolang

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/zeebo/blake3"
)

// DefaultCacheSize is the number of programs a Cache holds by default.
const DefaultCacheSize = 256

// Cache memoizes compilation. Lesson UIs recompile the learner's code on
// every edit and every run, and most of those compilations repeat.
// A Cache is safe for concurrent use.
type Cache struct {
	cfg      *config
	programs *lru.Cache
}

// NewCache returns a Cache holding up to size programs, compiled with opts.
// A size of zero or less selects DefaultCacheSize.
func NewCache(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	programs, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{cfg: newConfig(opts...), programs: programs}, nil
}

// Compile behaves like the package level Compile, returning a cached
// program when the same source was compiled against the same capability
// set. Failed compilations are not cached.
func (c *Cache) Compile(source string, actions, sensors []string) (*Program, error) {
	key := cacheKey(source, actions, sensors)
	if program, ok := c.programs.Get(key); ok {
		return program.(*Program), nil
	}
	program, err := compile(source, actions, sensors, c.cfg)
	if err != nil {
		return nil, err
	}
	c.programs.Add(key, program)
	return program, nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	return c.programs.Len()
}

// Purge removes every cached program.
func (c *Cache) Purge() {
	c.programs.Purge()
}

func cacheKey(source string, actions, sensors []string) [32]byte {
	key := strings.Join([]string{
		source,
		strings.Join(actions, "\x1f"),
		strings.Join(sensors, "\x1f"),
	}, "\x00")
	return blake3.Sum256([]byte(key))
}
