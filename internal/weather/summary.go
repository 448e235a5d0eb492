package weather

import (
	"fmt"
	"strings"

	"github.com/DarkTime312/Weather-App/internal/core"
)

// Summary renders a forecast as plain text, one line per day.
func Summary(loc Location, f Forecast) string {
	var b strings.Builder
	if loc.Country != "" {
		fmt.Fprintf(&b, "%s, %s\n", loc.City, loc.Country)
	} else {
		fmt.Fprintf(&b, "%s\n", loc.City)
	}
	fmt.Fprintf(&b, "%s  %s %s (feels like %s)\n",
		core.FormatDate(f.Today.Date),
		core.TemperatureLabel(f.Today.Temperature),
		f.Today.Condition,
		core.TemperatureLabel(f.Today.FeelsLike))
	for _, r := range f.Upcoming {
		fmt.Fprintf(&b, "%-10s %4s %s\n", core.DayName(r.Date, false), core.TemperatureLabel(r.Temperature), r.Condition)
	}
	return b.String()
}
