package config

// AppName is the full name of the application, used for display.
const AppName = "DarkTime312/Weather-App"

// Version is the current version of the application.
// Example: go build -ldflags "-X 'github.com/DarkTime312/Weather-App/internal/config.Version=v1.0.0'"
var Version = "v0.1.0"
