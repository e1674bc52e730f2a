package weather

import (
	"fmt"
	"math"
	"strings"
)

var compassPoints = [8]string{
	"North",
	"Northeast",
	"East",
	"Southeast",
	"South",
	"Southwest",
	"West",
	"Northwest",
}

// Compass converts a bearing in degrees to one of eight compass directions
func Compass(bearing float64) string {
	idx := int(math.Floor(bearing/45+0.5)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassPoints[idx]
}

var ssmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// SSML renders the forecast as SSML paragraphs, without the enclosing <speak> element
func SSML(f *Forecast) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p>Here's the forecast for <say-as interpret-as="address">%s</say-as></p>`, ssmlEscaper.Replace(f.Place.FormattedAddress))
	for _, section := range sections(f) {
		sb.WriteString("<p>")
		sb.WriteString(ssmlEscaper.Replace(section))
		sb.WriteString("</p>")
	}
	return sb.String()
}

// Plain renders the forecast as newline separated text for a card
func Plain(f *Forecast) string {
	var sb strings.Builder
	sb.WriteString("Here's the forecast for ")
	sb.WriteString(f.Place.FormattedAddress)
	for _, section := range sections(f) {
		sb.WriteString("\n")
		sb.WriteString(section)
	}
	return sb.String()
}

// sections returns one sentence group per present section, in order
// current, next hour, next 24 hours, next 7 days
func sections(f *Forecast) []string {
	var out []string

	if now := f.Current; now != nil {
		out = append(out, currentSentence(now))
	}

	if f.NextHour != nil {
		out = append(out, "Next hour: "+f.NextHour.Summary)
	}

	if day := f.Next24Hours; day != nil {
		summary := strings.TrimSuffix(day.Summary, ".")
		if day.HasRange {
			out = append(out, fmt.Sprintf("Next 24 hours: %s, with a high of %s and a low of %s.", summary, day.High, day.Low))
		} else {
			out = append(out, fmt.Sprintf("Next 24 hours: %s.", summary))
		}
	}

	if f.Next7Days != nil {
		out = append(out, "Next 7 days: "+f.Next7Days.Summary)
	}

	return out
}

func currentSentence(now *CurrentConditions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Right now: %s, %s", now.Summary, now.Temperature)
	if now.FeelsDifferent() {
		fmt.Fprintf(&sb, " but it feels like %s", now.ApparentTemperature)
	}
	fmt.Fprintf(&sb, ", with %d%% humidity, and a dew point of %s.", now.HumidityPercent(), now.DewPoint)

	if storm := now.Storm; storm != nil {
		miles := int(math.Floor(storm.DistanceMiles + 0.5))
		unit := "miles"
		if miles == 1 {
			unit = "mile"
		}
		fmt.Fprintf(&sb, " The nearest storm is %d %s away to the %s.", miles, unit, Compass(storm.Bearing))
	}

	return sb.String()
}
