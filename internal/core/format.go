package core

import (
	"fmt"
	"math"
	"time"
)

// Ordinal returns n with its English suffix: 1st, 2nd, 3rd, 11th, 22nd.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// FormatDate renders t as "Mon, 21st October".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %s", t.Format("Mon"), Ordinal(t.Day()), t.Format("January"))
}

// RoundTemperature rounds half to even, so 2.5 becomes 2 and 3.5 becomes 4.
func RoundTemperature(v float64) int {
	return int(math.RoundToEven(v))
}

// TemperatureLabel renders a reading such as "21°".
func TemperatureLabel(v float64) string {
	return fmt.Sprintf("%d°", RoundTemperature(v))
}

// DayName returns the weekday, abbreviated to three letters when short.
func DayName(t time.Time, short bool) string {
	if short {
		return t.Format("Mon")
	}
	return t.Format("Monday")
}

// UnitSymbol maps an OpenWeatherMap unit system to its temperature symbol.
func UnitSymbol(units string) string {
	switch units {
	case "imperial":
		return "°F"
	case "standard":
		return "K"
	default:
		return "°C"
	}
}
