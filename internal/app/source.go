package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"strings"

	"github.com/DarkTime312/Weather-App/internal/assets"
	"github.com/DarkTime312/Weather-App/internal/cli"
	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/ui"
	"github.com/DarkTime312/Weather-App/internal/weather"
)

func endpointsOf(cfg config.Config) weather.Endpoints {
	return weather.Endpoints{
		Forecast: cfg.Endpoints.Forecast,
		Search:   cfg.Endpoints.Search,
		Reverse:  cfg.Endpoints.Reverse,
		IPLookup: cfg.Endpoints.IPLookup,
	}
}

// fetchForecast resolves the configured location and fetches its forecast.
func fetchForecast(ctx context.Context, cfg config.Config) (weather.Location, weather.Forecast, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return weather.Location{}, weather.Forecast{}, weather.ErrMissingAPIKey
	}
	client := weather.NewClient(cfg.APIKey, endpointsOf(cfg), cfg.Timeout())

	loc, err := client.ResolveLocation(ctx, cli.QueryFor(cfg))
	if err != nil {
		return weather.Location{}, weather.Forecast{}, err
	}
	f, err := client.Forecast(ctx, loc.Latitude, loc.Longitude, cfg.Units)
	if err != nil {
		return weather.Location{}, weather.Forecast{}, err
	}
	log.Printf("Fetched forecast for %s, %s (%.4f, %.4f): %d upcoming days",
		loc.City, loc.Country, loc.Latitude, loc.Longitude, len(f.Upcoming))
	return loc, f, nil
}

// LiveSource fetches from the network and loads artwork from the assets
// directory.
type LiveSource struct{}

func (LiveSource) Load(ctx context.Context, cfg config.Config) (ui.Snapshot, error) {
	loc, f, err := fetchForecast(ctx, cfg)
	if err != nil {
		return ui.Snapshot{}, err
	}

	loader := assets.Loader{Root: cfg.AssetsDir}
	today, err := cfg.Condition(f.Today.Condition)
	if err != nil {
		return ui.Snapshot{}, err
	}
	frames, err := loader.Frames(today.Animation)
	if err != nil {
		return ui.Snapshot{}, fmt.Errorf("animation for %s: %w", f.Today.Condition, err)
	}

	icons := make([]image.Image, 0, len(f.Upcoming))
	for _, r := range f.Upcoming {
		style, err := cfg.Condition(r.Condition)
		if err != nil {
			return ui.Snapshot{}, err
		}
		icon, err := loader.Icon(style.Icon)
		if err != nil {
			return ui.Snapshot{}, fmt.Errorf("icon for %s: %w", r.Condition, err)
		}
		icons = append(icons, icon)
	}

	return ui.Snapshot{Location: loc, Forecast: f, Frames: frames, Icons: icons}, nil
}

// printForecast writes the plain-text forecast used when there is no
// terminal to draw on.
func printForecast(ctx context.Context, w io.Writer, cfg config.Config) error {
	loc, f, err := fetchForecast(ctx, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, weather.Summary(loc, f))
	return err
}
