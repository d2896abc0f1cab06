package earth

import (
	"context"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

var (
	tileCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_tile_cache_hits_total",
		Help: "The total number of hits on the tile cache",
	})
	tileCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_tile_cache_misses_total",
		Help: "The total number of misses on the tile cache",
	})
)

// A CachingTileSource wraps a TileSource with an LRU cache of decoded tiles.
// Concurrent requests for the same tile are collapsed into a single fetch.
// The canonical pipeline is uncached; wrap a source in a CachingTileSource
// only when repeated requests for the same area are expected.
type CachingTileSource struct {
	source TileSource
	cache  *lru.Cache[TileCoord, *image.RGBA]
	group  singleflight.Group
}

// A CachingTileSourceOption sets an option on a CachingTileSource.
type CachingTileSourceOption func(*cachingTileSourceConfig)

type cachingTileSourceConfig struct {
	cacheSize int
}

// NewCachingTileSource returns a new CachingTileSource wrapping source.
func NewCachingTileSource(source TileSource, options ...CachingTileSourceOption) (*CachingTileSource, error) {
	config := cachingTileSourceConfig{
		cacheSize: 64,
	}
	for _, option := range options {
		option(&config)
	}
	cache, err := lru.New[TileCoord, *image.RGBA](config.cacheSize)
	if err != nil {
		return nil, err
	}
	return &CachingTileSource{
		source: source,
		cache:  cache,
	}, nil
}

func WithCacheSize(cacheSize int) CachingTileSourceOption {
	return func(c *cachingTileSourceConfig) {
		c.cacheSize = cacheSize
	}
}

// Tile returns the tile at coord, fetching it from the wrapped source on a
// cache miss. Failed fetches are not cached.
func (s *CachingTileSource) Tile(ctx context.Context, coord TileCoord) (*image.RGBA, error) {
	if img, ok := s.cache.Get(coord); ok {
		tileCacheHits.Inc()
		return img, nil
	}
	tileCacheMisses.Inc()
	img, err, _ := s.group.Do(coord.String(), func() (any, error) {
		if img, ok := s.cache.Get(coord); ok {
			return img, nil
		}
		img, err := s.source.Tile(ctx, coord)
		if err != nil {
			return nil, err
		}
		s.cache.Add(coord, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return img.(*image.RGBA), nil
}
