// Package cli parses the command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/weather"
)

// Command is what the invocation asks for.
type Command int

const (
	// CommandRun starts the interactive widget.
	CommandRun Command = iota
	// CommandForecast prints the forecast as plain text.
	CommandForecast
	CommandVersion
	CommandHelp
)

// ErrUsage wraps every argument error.
var ErrUsage = errors.New("usage")

var validUnits = []string{"metric", "imperial", "standard"}

// Options are the parsed arguments. Nil coordinates were not given.
type Options struct {
	Command   Command
	City      string
	Country   string
	Latitude  *float64
	Longitude *float64
	Units     string
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

func floatFlag(dst **float64, name string, lo, hi float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		if v < lo || v > hi {
			return fmt.Errorf("%s must be between %g and %g", name, lo, hi)
		}
		*dst = &v
		return nil
	}
}

// Parse reads args without the program name. Flag errors and -h output go
// to stderr.
func Parse(args []string, stderr io.Writer) (Options, error) {
	var opts Options

	if len(args) > 0 {
		switch args[0] {
		case "forecast", "--forecast":
			opts.Command = CommandForecast
			args = args[1:]
		case "version", "--version", "-v":
			if len(args) > 1 {
				return Options{}, usageError("version takes no arguments")
			}
			return Options{Command: CommandVersion}, nil
		case "help", "--help", "-h":
			return Options{Command: CommandHelp}, nil
		}
	}

	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { Usage(stderr) }
	fs.StringVar(&opts.City, "city", "", "City to show")
	fs.StringVar(&opts.Country, "country", "", "Country of the city")
	fs.Func("lat", "Latitude in degrees", floatFlag(&opts.Latitude, "latitude", -90, 90))
	fs.Func("lon", "Longitude in degrees", floatFlag(&opts.Longitude, "longitude", -180, 180))
	fs.StringVar(&opts.Units, "units", "", "metric, imperial or standard")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Options{Command: CommandHelp}, nil
		}
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Options{}, usageError("unrecognized arguments: %v", fs.Args())
	}

	if (opts.Latitude == nil) != (opts.Longitude == nil) {
		return Options{}, usageError("--lat and --lon must be given together")
	}
	if opts.Units != "" {
		opts.Units = strings.ToLower(strings.TrimSpace(opts.Units))
		if !slices.Contains(validUnits, opts.Units) {
			return Options{}, usageError("unknown units %q (want %s)", opts.Units, strings.Join(validUnits, ", "))
		}
	}
	opts.City = strings.TrimSpace(opts.City)
	opts.Country = strings.TrimSpace(opts.Country)
	return opts, nil
}

// HasLocation reports whether any location flag was given.
func (o Options) HasLocation() bool {
	return o.City != "" || o.Country != "" || o.Latitude != nil || o.Longitude != nil
}

// Apply overrides the config with the flags. Location flags replace the
// configured location as a whole so the two are never mixed.
func (o Options) Apply(cfg *config.Config) {
	if o.HasLocation() {
		cfg.City = o.City
		cfg.Country = o.Country
		cfg.Latitude = o.Latitude
		cfg.Longitude = o.Longitude
	}
	if o.Units != "" {
		cfg.Units = o.Units
	}
}

// QueryFor builds the location query from a config that flags were applied to.
func QueryFor(cfg config.Config) weather.Query {
	return weather.Query{
		City:      cfg.City,
		Country:   cfg.Country,
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Units:     cfg.Units,
	}
}

// Usage prints the help text.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: weather [forecast] [--city NAME] [--country NAME] [--lat N --lon N] [--units UNITS]\n")
	fmt.Fprintf(w, "       weather version\n")
	fmt.Fprintf(w, "\nWith no location the city is found from your IP address.\n")
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  forecast   print the forecast as plain text and exit\n")
	fmt.Fprintf(w, "  version    print the version and exit\n")
	fmt.Fprintf(w, "\nFlags:\n")
	fmt.Fprintf(w, "  --city     city to show\n")
	fmt.Fprintf(w, "  --country  country of the city\n")
	fmt.Fprintf(w, "  --lat      latitude in degrees, needs --lon\n")
	fmt.Fprintf(w, "  --lon      longitude in degrees, needs --lat\n")
	fmt.Fprintf(w, "  --units    %s (default from config.toml)\n", strings.Join(validUnits, ", "))
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  weather --city Tehran --country Iran\n")
	fmt.Fprintf(w, "  weather forecast --lat 35.69 --lon 51.39 --units imperial\n")
}
