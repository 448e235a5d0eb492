package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DarkTime312/Weather-App/internal/cli"
	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/core"
	"github.com/DarkTime312/Weather-App/internal/ui"
	"github.com/DarkTime312/Weather-App/internal/weather"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const logFileName = "weather.log"

// Run wires everything together: arguments, config dir, logging, config,
// and then either the interactive widget or a plain-text forecast.
func Run() {
	opts, err := cli.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		cli.Usage(os.Stderr)
		os.Exit(2)
	}
	switch opts.Command {
	case cli.CommandHelp:
		cli.Usage(os.Stdout)
		return
	case cli.CommandVersion:
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not get config dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "could not create config dir: %v\n", err)
		os.Exit(1)
	}

	// =======================================
	// Logging setup

	logPath := filepath.Join(configDir, logFileName)
	core.RotateLogIfNeeded(logPath, core.LogMaxBytes)

	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)
	log.Printf("Starting %s %s", config.AppName, config.Version)

	config.LoadEnv(configDir)
	bundle, err := config.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if bundle.Bootstrapped {
		fmt.Fprintf(os.Stderr, "Created %s\n", bundle.Path)
	}
	opts.Apply(&bundle.Config)

	// No terminal to draw on (piped or redirected): print the forecast.
	if opts.Command == cli.CommandForecast || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, cancel := context.WithTimeout(context.Background(), 4*bundle.Config.Timeout())
		defer cancel()
		if err := printForecast(ctx, os.Stdout, bundle.Config); err != nil {
			log.Printf("Forecast failed: %v", err)
			fmt.Fprintf(os.Stderr, "%s\n", describe(err))
			os.Exit(1)
		}
		return
	}

	model := ui.NewModel(bundle, LiveSource{}).WithConfigOverride(opts.Apply)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// describe adds a hint to the errors a user can fix.
func describe(err error) string {
	switch {
	case errors.Is(err, weather.ErrMissingAPIKey):
		return err.Error() + "\nSet api_key in config.toml or OPENWEATHER_API_KEY in a .env file."
	case errors.Is(err, weather.ErrInsufficientLocation):
		return err.Error() + "\nGive --city, both --lat and --lon, or no location at all."
	}
	return err.Error()
}
