package schema

// Observation is one row of the WHO TB burden dataset after the verbose
// source headers have been renamed to canonical names. All estimate fields
// are optional in the source file and therefore carried as pointers.
type Observation struct {
	Country    string `json:"country"`
	ISOCode    string `json:"iso_code"`
	Region     string `json:"region"`
	Year       int    `json:"year"`
	Population *int64 `json:"population,omitempty"`

	PrevalencePer100k     *float64 `json:"prevalence_per_100k,omitempty"`
	PrevalencePer100kLow  *float64 `json:"prevalence_per_100k_low,omitempty"`
	PrevalencePer100kHigh *float64 `json:"prevalence_per_100k_high,omitempty"`

	MortalityPer100k     *float64 `json:"mortality_per_100k,omitempty"`
	MortalityPer100kLow  *float64 `json:"mortality_per_100k_low,omitempty"`
	MortalityPer100kHigh *float64 `json:"mortality_per_100k_high,omitempty"`

	IncidencePer100k     *float64 `json:"incidence_per_100k,omitempty"`
	IncidencePer100kLow  *float64 `json:"incidence_per_100k_low,omitempty"`
	IncidencePer100kHigh *float64 `json:"incidence_per_100k_high,omitempty"`
}

// GlobalCountry is the sentinel country value meaning "no country
// restriction" in a selection.
const GlobalCountry = "Global"
