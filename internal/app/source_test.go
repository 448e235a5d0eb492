package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/weather"
)

const forecastJSON = `{
  "list": [
    {"dt_txt": "2024-10-21 12:00:00", "main": {"temp_max": 21.0, "feels_like": 20.0}, "weather": [{"main": "Clear"}]},
    {"dt_txt": "2024-10-22 12:00:00", "main": {"temp_max": 16.5, "feels_like": 15.0}, "weather": [{"main": "Rain"}]},
    {"dt_txt": "2024-10-23 12:00:00", "main": {"temp_max": 12.4, "feels_like": 11.0}, "weather": [{"main": "Clouds"}]}
  ]
}`

func writePNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// testConfig points every endpoint at a local server and the assets at a
// temp dir holding the Clear animation and the Rain and Clouds icons.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastJSON)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"lat": "35.6892", "lon": "51.3890", "display_name": "Tehran, Tehran Province, Iran"}]`)
	})
	mux.HandleFunc("/ip", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city": "Berlin", "country_name": "Germany", "latitude": 52.52, "longitude": 13.40}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	root := t.TempDir()
	writePNG(t, filepath.Join(root, "animations", "clear", "01.png"))
	writePNG(t, filepath.Join(root, "animations", "clear", "02.png"))
	writePNG(t, filepath.Join(root, "icons", "Rain.png"))
	writePNG(t, filepath.Join(root, "icons", "Clouds.png"))

	cfg := config.DefaultConfig()
	cfg.APIKey = "key"
	cfg.City = "Tehran"
	cfg.AssetsDir = root
	cfg.Endpoints.Forecast = srv.URL + "/forecast"
	cfg.Endpoints.Search = srv.URL + "/search"
	cfg.Endpoints.Reverse = srv.URL + "/reverse"
	cfg.Endpoints.IPLookup = srv.URL + "/ip"
	return cfg
}

func TestLiveSource_Load(t *testing.T) {
	cfg := testConfig(t)

	snap, err := LiveSource{}.Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Location.City != "Tehran" || snap.Location.Country != "Iran" {
		t.Errorf("location = %+v", snap.Location)
	}
	if len(snap.Frames) != 2 {
		t.Errorf("frames = %d, want 2", len(snap.Frames))
	}
	if len(snap.Icons) != len(snap.Forecast.Upcoming) || len(snap.Icons) != 2 {
		t.Errorf("icons = %d, upcoming = %d", len(snap.Icons), len(snap.Forecast.Upcoming))
	}
}

func TestLiveSource_Errors(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.APIKey = ""
		if _, err := (LiveSource{}).Load(context.Background(), cfg); !errors.Is(err, weather.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("Missing Icon", func(t *testing.T) {
		cfg := testConfig(t)
		if err := os.Remove(filepath.Join(cfg.AssetsDir, "icons", "Clouds.png")); err != nil {
			t.Fatal(err)
		}
		_, err := LiveSource{}.Load(context.Background(), cfg)
		if err == nil || !strings.Contains(err.Error(), "icon for Clouds") {
			t.Errorf("err = %v, want a Clouds icon error", err)
		}
	})

	t.Run("Unknown Condition", func(t *testing.T) {
		cfg := testConfig(t)
		delete(cfg.Conditions, "Rain")
		if _, err := (LiveSource{}).Load(context.Background(), cfg); !errors.Is(err, config.ErrUnknownCondition) {
			t.Errorf("err = %v, want ErrUnknownCondition", err)
		}
	})
}

func TestPrintForecast(t *testing.T) {
	cfg := testConfig(t)
	cfg.City = ""

	var out bytes.Buffer
	if err := printForecast(context.Background(), &out, cfg); err != nil {
		t.Fatalf("printForecast: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if lines[0] != "Berlin, Germany" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "Tuesday") {
		t.Errorf("third line = %q", lines[2])
	}
}

func TestDescribe(t *testing.T) {
	got := describe(fmt.Errorf("load: %w", weather.ErrMissingAPIKey))
	if !strings.Contains(got, "api_key") {
		t.Errorf("describe() = %q, want an api_key hint", got)
	}
	if got := describe(errors.New("boom")); got != "boom" {
		t.Errorf("describe() = %q", got)
	}
}
