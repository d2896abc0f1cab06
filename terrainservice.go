package earth

import "context"

// A TerrainService builds renderer-ready terrain from a tile source. All
// buffers are allocated per request and processed synchronously to
// completion; results are never shared across concurrent requests.
type TerrainService struct {
	source           TileSource
	zoom             int
	synthesizeWater  bool
	waterSynthesizer *WaterDepthSynthesizer
}

// A TerrainServiceOption sets an option on a TerrainService.
type TerrainServiceOption func(*TerrainService)

// NewTerrainService returns a new TerrainService reading tiles from source.
func NewTerrainService(source TileSource, options ...TerrainServiceOption) *TerrainService {
	s := &TerrainService{
		source:           source,
		zoom:             11,
		synthesizeWater:  true,
		waterSynthesizer: NewWaterDepthSynthesizer(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func WithZoom(zoom int) TerrainServiceOption {
	return func(s *TerrainService) {
		s.zoom = zoom
	}
}

func WithWaterDepthSynthesis(synthesize bool) TerrainServiceOption {
	return func(s *TerrainService) {
		s.synthesizeWater = synthesize
	}
}

func WithWaterDepthOptions(options ...WaterDepthOption) TerrainServiceOption {
	return func(s *TerrainService) {
		s.waterSynthesizer = NewWaterDepthSynthesizer(options...)
	}
}

// Terrain returns the terrain around the given coordinate: a 2x2 tile
// neighborhood chosen so the coordinate lands within the central 50% of the
// stitched square, with water depth synthesized unless disabled. The result
// carries the real ground extent of the tile group so the consumer can derive
// a single meters-per-scene-unit ratio for both horizontal and vertical axes.
func (s *TerrainService) Terrain(ctx context.Context, lat, lon float64) (*TerrainResult, error) {
	origin := stitchOrigin(lat, lon, s.zoom)
	field, err := Stitch(ctx, s.source, origin)
	if err != nil {
		return nil, err
	}
	if s.synthesizeWater {
		s.waterSynthesizer.Synthesize(field)
	}
	lo, hi := field.Range()
	groundWidth, groundHeight := StitchBounds(origin).SizeMeters()
	return &TerrainResult{
		Field:              field,
		MinElevation:       lo,
		MaxElevation:       hi,
		Tile:               origin,
		GroundWidthMeters:  groundWidth,
		GroundHeightMeters: groundHeight,
	}, nil
}

// TerrainForTile returns the terrain of a single tile, without centering or
// ground extent metadata.
func (s *TerrainService) TerrainForTile(ctx context.Context, coord TileCoord) (*TerrainResult, error) {
	img, err := s.source.Tile(ctx, coord)
	if err != nil {
		return nil, err
	}
	field := DecodeImage(img)
	if s.synthesizeWater {
		s.waterSynthesizer.Synthesize(field)
	}
	lo, hi := field.Range()
	return &TerrainResult{
		Field:        field,
		MinElevation: lo,
		MaxElevation: hi,
		Tile:         coord,
	}, nil
}
