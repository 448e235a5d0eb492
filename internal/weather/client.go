// Package weather resolves a location and fetches its five day forecast.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey        = errors.New("weather: missing OpenWeatherMap API key")
	ErrEmptyForecast        = errors.New("weather: forecast has no entries")
	ErrLocationNotFound     = errors.New("weather: location not found")
	ErrInsufficientLocation = errors.New("weather: give no location to use the IP address, or a city, or both coordinates")
)

// StatusError is returned when a service answers with anything but 200.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather: %s returned status %d", e.Service, e.StatusCode)
}

const (
	defaultUserAgent = "weather-terminal/1.0"
	dateLayout       = "2006-01-02"
	noonSuffix       = "12:00:00"
)

// Client talks to OpenWeatherMap, Nominatim and ipapi.
type Client struct {
	HTTP      *http.Client
	APIKey    string
	Endpoints Endpoints
	UserAgent string
}

func NewClient(apiKey string, endpoints Endpoints, timeout time.Duration) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		APIKey:    apiKey,
		Endpoints: endpoints,
		UserAgent: defaultUserAgent,
	}
}

func (c *Client) getJSON(ctx context.Context, service, rawURL string, params url.Values, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("weather: bad %s endpoint: %w", service, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("weather: %s request failed: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Service: service, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather: decode %s response: %w", service, err)
	}
	return nil
}

// ResolveLocation completes a Query:
//   - everything given: used as is, no request
//   - nothing given: located by IP address
//   - a city: searched by name
//   - both coordinates: reverse geocoded
//
// Anything else is ErrInsufficientLocation.
func (c *Client) ResolveLocation(ctx context.Context, q Query) (Location, error) {
	city := strings.TrimSpace(q.City)
	country := strings.TrimSpace(q.Country)
	hasCoords := q.Latitude != nil && q.Longitude != nil

	switch {
	case city != "" && country != "" && hasCoords:
		return Location{City: city, Country: country, Latitude: *q.Latitude, Longitude: *q.Longitude}, nil
	case city == "" && country == "" && q.Latitude == nil && q.Longitude == nil:
		return c.locateByIP(ctx)
	case city != "":
		return c.search(ctx, city, country)
	case hasCoords:
		return c.reverse(ctx, *q.Latitude, *q.Longitude)
	default:
		return Location{}, ErrInsufficientLocation
	}
}

func (c *Client) locateByIP(ctx context.Context) (Location, error) {
	var r ipResult
	if err := c.getJSON(ctx, "ip lookup", c.Endpoints.IPLookup, nil, &r); err != nil {
		return Location{}, err
	}
	if r.Error {
		return Location{}, fmt.Errorf("weather: ip lookup failed: %s", r.Reason)
	}
	log.Printf("Located by IP: %s, %s", r.City, r.CountryName)
	return Location{City: r.City, Country: r.CountryName, Latitude: r.Latitude, Longitude: r.Longitude}, nil
}

func (c *Client) search(ctx context.Context, city, country string) (Location, error) {
	name := city
	if country != "" {
		name = city + ", " + country
	}
	params := url.Values{
		"q":               {name},
		"format":          {"json"},
		"limit":           {"1"},
		"accept-language": {"en"},
	}
	var results []searchResult
	if err := c.getJSON(ctx, "search", c.Endpoints.Search, params, &results); err != nil {
		return Location{}, err
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("%w: %s", ErrLocationNotFound, name)
	}

	r := results[0]
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("weather: bad latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("weather: bad longitude %q: %w", r.Lon, err)
	}

	// display_name runs from the place itself to the country.
	parts := strings.Split(r.DisplayName, ", ")
	return Location{
		City:      parts[0],
		Country:   parts[len(parts)-1],
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

func (c *Client) reverse(ctx context.Context, lat, lon float64) (Location, error) {
	params := url.Values{
		"format":          {"json"},
		"lat":             {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":             {strconv.FormatFloat(lon, 'f', -1, 64)},
		"zoom":            {"10"},
		"addressdetails":  {"1"},
		"accept-language": {"en"},
	}
	var r reverseResult
	if err := c.getJSON(ctx, "reverse geocode", c.Endpoints.Reverse, params, &r); err != nil {
		return Location{}, err
	}

	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}
	return Location{City: city, Country: r.Address.Country, Latitude: lat, Longitude: lon}, nil
}

// Forecast fetches the 5 day / 3 hour forecast. Today is the first entry;
// each upcoming day is its noon entry.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, units string) (Forecast, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return Forecast{}, ErrMissingAPIKey
	}
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.APIKey},
		"units": {units},
	}
	var resp forecastResponse
	if err := c.getJSON(ctx, "forecast", c.Endpoints.Forecast, params, &resp); err != nil {
		return Forecast{}, err
	}
	return parseForecast(resp)
}

func parseForecast(resp forecastResponse) (Forecast, error) {
	if len(resp.List) == 0 {
		return Forecast{}, ErrEmptyForecast
	}

	today, err := toReading(resp.List[0])
	if err != nil {
		return Forecast{}, err
	}
	today.FeelsLike = resp.List[0].Main.FeelsLike
	todayDate := dayOf(resp.List[0].DtTxt)

	f := Forecast{Today: today}
	for _, item := range resp.List {
		if !strings.HasSuffix(item.DtTxt, noonSuffix) || dayOf(item.DtTxt) == todayDate {
			continue
		}
		r, err := toReading(item)
		if err != nil {
			return Forecast{}, err
		}
		f.Upcoming = append(f.Upcoming, r)
	}
	return f, nil
}

func dayOf(dtTxt string) string {
	day, _, _ := strings.Cut(dtTxt, " ")
	return day
}

func toReading(item forecastItem) (Reading, error) {
	date, err := time.Parse(dateLayout, dayOf(item.DtTxt))
	if err != nil {
		return Reading{}, fmt.Errorf("weather: bad dt_txt %q: %w", item.DtTxt, err)
	}
	r := Reading{Date: date, Temperature: item.Main.TempMax}
	if len(item.Weather) > 0 {
		r.Condition = item.Weather[0].Main
	}
	return r, nil
}
