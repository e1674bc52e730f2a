package darksky

// ForecastAPIResponse is a Dark Sky forecast. Every block is optional; a nil
// pointer means the block was absent from the response.
type ForecastAPIResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Offset    float64    `json:"offset"`
	Currently *DataPoint `json:"currently,omitempty"`
	Minutely  *DataBlock `json:"minutely,omitempty"`
	Hourly    *DataBlock `json:"hourly,omitempty"`
	Daily     *DataBlock `json:"daily,omitempty"`
	Alerts    []Alert    `json:"alerts,omitempty"`
}

type DataBlock struct {
	Summary string      `json:"summary"`
	Icon    string      `json:"icon"`
	Data    []DataPoint `json:"data"`
}

type DataPoint struct {
	Time                 int64    `json:"time"`
	Summary              string   `json:"summary"`
	Icon                 string   `json:"icon"`
	NearestStormDistance *float64 `json:"nearestStormDistance,omitempty"`
	NearestStormBearing  *float64 `json:"nearestStormBearing,omitempty"`
	PrecipIntensity      float64  `json:"precipIntensity"`
	PrecipProbability    float64  `json:"precipProbability"`
	PrecipType           string   `json:"precipType,omitempty"`
	Temperature          float64  `json:"temperature"`
	ApparentTemperature  float64  `json:"apparentTemperature"`
	TemperatureHigh      float64  `json:"temperatureHigh,omitempty"`
	TemperatureLow       float64  `json:"temperatureLow,omitempty"`
	DewPoint             float64  `json:"dewPoint"`
	Humidity             float64  `json:"humidity"`
	Pressure             float64  `json:"pressure"`
	WindSpeed            float64  `json:"windSpeed"`
	WindGust             float64  `json:"windGust"`
	WindBearing          float64  `json:"windBearing"`
	CloudCover           float64  `json:"cloudCover"`
	UVIndex              int      `json:"uvIndex"`
	Visibility           float64  `json:"visibility"`
}

type Alert struct {
	Title       string   `json:"title"`
	Severity    string   `json:"severity"`
	Time        int64    `json:"time"`
	Expires     int64    `json:"expires"`
	Description string   `json:"description"`
	URI         string   `json:"uri"`
	Regions     []string `json:"regions"`
}
