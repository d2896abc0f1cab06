package earth

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tileFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_tile_fetches_total",
		Help: "The total number of tile fetches attempted",
	})
	tileFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_tile_fetch_failures_total",
		Help: "The total number of tile fetches that failed",
	})
)

// An HTTPTileSource fetches terrarium PNG tiles from a templated URL
// <baseURL>/{z}/{x}/{y}.png.
type HTTPTileSource struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// An HTTPTileSourceOption sets an option on an HTTPTileSource.
type HTTPTileSourceOption func(*HTTPTileSource)

// NewHTTPTileSource returns a new HTTPTileSource fetching tiles from baseURL.
func NewHTTPTileSource(baseURL string, options ...HTTPTileSourceOption) *HTTPTileSource {
	s := &HTTPTileSource{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func WithHTTPClient(client *http.Client) HTTPTileSourceOption {
	return func(s *HTTPTileSource) {
		s.client = client
	}
}

func WithUserAgent(userAgent string) HTTPTileSourceOption {
	return func(s *HTTPTileSource) {
		s.userAgent = userAgent
	}
}

// URL returns the tile URL for coord.
func (s *HTTPTileSource) URL(coord TileCoord) string {
	return fmt.Sprintf("%s/%d/%d/%d.png", s.baseURL, coord.Z, coord.X, coord.Y)
}

// Tile fetches and decodes a single tile. Network errors, non-2xx responses,
// and image decode failures are returned as a *TileLoadError carrying coord.
func (s *HTTPTileSource) Tile(ctx context.Context, coord TileCoord) (*image.RGBA, error) {
	tileFetches.Inc()
	img, err := s.fetch(ctx, coord)
	if err != nil {
		tileFetchFailures.Inc()
		return nil, &TileLoadError{Coord: coord, Err: err}
	}
	return img, nil
}

func (s *HTTPTileSource) fetch(ctx context.Context, coord TileCoord) (*image.RGBA, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(coord), http.NoBody)
	if err != nil {
		return nil, err
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return ensureRGBA(img), nil
}
