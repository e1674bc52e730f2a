package weather

import "weather-skill/internal/types"

// hourlyWindow is the number of hourly entries considered for the 24 hour high and low
const hourlyWindow = 24

// Forecast is a rendered-ready forecast for a place. Sections absent from the
// provider response are nil.
type Forecast struct {
	Place       types.Place
	Timezone    string
	Current     *CurrentConditions
	NextHour    *Outlook
	Next24Hours *DayOutlook
	Next7Days   *Outlook
}

type CurrentConditions struct {
	Summary             string
	Icon                string
	Temperature         types.Degrees
	ApparentTemperature types.Degrees
	DewPoint            types.Degrees
	Humidity            float64 // 0..1
	Storm               *Storm
}

// FeelsDifferent reports whether the rounded apparent temperature differs from the rounded temperature
func (c CurrentConditions) FeelsDifferent() bool {
	return c.Temperature.Round() != c.ApparentTemperature.Round()
}

// HumidityPercent returns humidity as a whole percentage, truncated
func (c CurrentConditions) HumidityPercent() int {
	return int(c.Humidity * 100)
}

// Storm is the nearest storm to the place
type Storm struct {
	DistanceMiles float64
	Bearing       float64
}

type Outlook struct {
	Summary string
}

type DayOutlook struct {
	Summary string
	// HasRange is false when the hourly block carried no data points
	HasRange bool
	High     types.Degrees
	Low      types.Degrees
}

// HighLow renders the range as "high°/low°", empty when there is no range
func (d *DayOutlook) HighLow() string {
	if d == nil || !d.HasRange {
		return ""
	}
	return d.High.String() + "/" + d.Low.String()
}
