package deviceaddress

// Address is the full address registered for a device
type Address struct {
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	AddressLine3     string `json:"addressLine3"`
	City             string `json:"city"`
	StateOrRegion    string `json:"stateOrRegion"`
	DistrictOrCounty string `json:"districtOrCounty"`
	CountryCode      string `json:"countryCode"`
	PostalCode       string `json:"postalCode"`
}
