package constants

// Redis key patterns
const (
	// KeyAvailableDrivers is a set of driver ids available in a location,
	// formatted with the location id.
	KeyAvailableDrivers = "drivers:available:%s"

	// KeyDriverGeo is the geo index of reported driver positions.
	KeyDriverGeo = "drivers:geo"
)
