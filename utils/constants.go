package utils

// RegistrationSessionPrefix is the prefix used for Redis registration session keys.
const RegistrationSessionPrefix = "regSession:"

// AuthTokenPrefix and AuthUserPrefix are the two durable keys written when the
// platform accepts a registration: the opaque bearer token and the serialized
// user profile.
const (
	AuthTokenPrefix = "authToken:"
	AuthUserPrefix  = "authUser:"
)

// Catalog cache keys.
const (
	CatalogSpecialtiesKey = "catalog:specialties"
	CatalogCountriesKey   = "catalog:countries"
	CatalogStatesPrefix   = "catalog:states:"
)
