package weather

import "time"

// Query is what the user told us about the location. Coordinates are
// pointers so that 0 stays a valid latitude.
type Query struct {
	City      string
	Country   string
	Latitude  *float64
	Longitude *float64
	Units     string
}

// Location is a resolved place.
type Location struct {
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

// Reading is the forecast for one day. FeelsLike is only set for today.
type Reading struct {
	Date        time.Time
	Temperature float64
	FeelsLike   float64
	Condition   string
}

// Forecast holds today plus the upcoming days, oldest first.
type Forecast struct {
	Today    Reading
	Upcoming []Reading
}

// Endpoints are the base URLs of the remote services.
type Endpoints struct {
	Forecast string
	Search   string
	Reverse  string
	IPLookup string
}

// Wire formats.

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		TempMax   float64 `json:"temp_max"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

type ipResult struct {
	City        string  `json:"city"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Error       bool    `json:"error"`
	Reason      string  `json:"reason"`
}
