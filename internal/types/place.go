package types

// Place is a geocoded location used for forecasting
type Place struct {
	Coordinates      Coords
	FormattedAddress string
}
