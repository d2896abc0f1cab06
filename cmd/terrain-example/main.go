package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/magnificus/earth"
)

const defaultTileURL = "https://s3.amazonaws.com/elevation-tiles-prod/terrarium"

func run() error {
	tileURL := flag.String("tile-url", envOr("TERRAIN_TILE_URL", defaultTileURL), "base URL for terrarium tiles")
	zoom := flag.Int("zoom", 11, "tile zoom level")
	subdivisions := flag.Int("subdivisions", 200, "mesh subdivisions per side")
	heightmap := flag.String("heightmap", "", "write legacy grayscale heightmap PNG to this path")
	flag.Parse()

	if flag.NArg() != 2 {
		return errors.New("syntax: terrain-example latitude longitude")
	}
	lat, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		return err
	}
	lon, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		return err
	}

	service := earth.NewTerrainService(
		earth.NewHTTPTileSource(*tileURL),
		earth.WithZoom(*zoom),
	)
	result, err := service.Terrain(context.Background(), lat, lon)
	if err != nil {
		return err
	}

	fmt.Printf("tile %s, field %dx%d\n", result.Tile, result.Field.Width, result.Field.Height)
	fmt.Printf("elevation %.2fm to %.2fm\n", result.MinElevation, result.MaxElevation)
	fmt.Printf("ground extent %.0fm x %.0fm\n", result.GroundWidthMeters, result.GroundHeightMeters)
	fmt.Printf("center elevation %.2fm\n", result.Field.SampleNormalized(0.5, 0.5))

	heights := result.Field.SampleGrid(*subdivisions)
	fmt.Printf("sampled %d mesh vertices\n", len(heights))

	if *heightmap != "" {
		f, err := os.Create(*heightmap)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := earth.WriteGrayscalePNG(f, result.Field); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *heightmap)
	}

	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
