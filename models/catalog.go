package models

// Specialty is one entry of the medical specialties catalog.
type Specialty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is one entry of the countries catalog.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// State is one entry of the per-country states catalog.
type State struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
