// Package typecache memoizes TypeInfo values per runtime type.
package typecache

import (
	"context"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.TypeCache = (*Cache)(nil)

// entry is built at most once; the result and error are kept together.
type entry struct {
	once sync.Once
	info *domain.TypeInfo
	err  error
}

// Cache builds a TypeInfo the first time a type is looked up and returns the
// same value afterwards. Entries are never evicted.
type Cache struct {
	describer ports.Describer
	logger    ports.Logger
	entries   sync.Map // reflect.Type -> *entry
	size      atomic.Int64
	limit     int
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report entry builds.
func WithLogger(l ports.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// WithWarmLimit bounds the number of entries Warm builds in parallel.
func WithWarmLimit(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.limit = n
		}
	}
}

// New creates an empty Cache backed by the given describer.
func New(describer ports.Describer, opts ...Option) *Cache {
	c := &Cache{
		describer: describer,
		limit:     runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the TypeInfo for t. Pointer types share the entry of their
// element type.
func (c *Cache) Lookup(t reflect.Type) (*domain.TypeInfo, error) {
	if t == nil {
		return nil, domain.ErrNilType
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	v, ok := c.entries.Load(t)
	if !ok {
		var loaded bool
		v, loaded = c.entries.LoadOrStore(t, &entry{})
		if !loaded {
			c.size.Add(1)
		}
	}
	e := v.(*entry) //nolint:forcetypeassert // only *entry values are stored

	e.once.Do(func() {
		e.info, e.err = c.describer.Describe(t)
		if e.err != nil {
			e.err = zerr.With(e.err, "type", t.String())
			return
		}
		if c.logger != nil {
			c.logger.Debug("described " + t.String())
		}
	})

	return e.info, e.err
}

// Warm builds the entries for types concurrently. It stops at the first
// failure or when ctx is done.
func (c *Cache) Warm(ctx context.Context, types ...reflect.Type) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for _, t := range types {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := c.Lookup(t)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Len reports the number of cached entries, including failed ones.
func (c *Cache) Len() int {
	return int(c.size.Load())
}

// LookupFor returns the TypeInfo for T.
func LookupFor[T any](c ports.TypeCache) (*domain.TypeInfo, error) {
	return c.Lookup(reflect.TypeFor[T]())
}
