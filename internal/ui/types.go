package ui

import (
	"context"
	"image"
	"time"

	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/weather"
)

// Snapshot is everything one fetch produces: the resolved location, its
// forecast, the animation frames of today's condition and one icon per
// upcoming day.
type Snapshot struct {
	Location weather.Location
	Forecast weather.Forecast
	Frames   []image.Image
	Icons    []image.Image
}

// Source fetches a Snapshot. cfg is the configuration in effect at the time
// of the call, so a reload is honoured by the next fetch.
type Source interface {
	Load(ctx context.Context, cfg config.Config) (Snapshot, error)
}

type (
	snapshotMsg struct {
		id       int
		snapshot Snapshot
	}
	fetchFailedMsg struct {
		id  int
		err error
	}
	offlineMsg       struct{ id int }
	refreshTickMsg   struct{}
	networkStatusMsg struct {
		online bool
		t      time.Time
	}
	statusClearMsg struct {
		id int
	}
	copiedMsg struct {
		method string
		err    error
	}
	mapOpenedMsg struct {
		err error
	}
)
