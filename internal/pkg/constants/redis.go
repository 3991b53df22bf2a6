package constants

// Redis key formats
const (
	KeyDriverPresence = "driver:presence:%s" // Format: driver:presence:{driver_id}
	KeyOnlineDrivers  = "drivers:online"     // Set of online driver IDs
	KeyDriverGeo      = "drivers:geo"        // Geo set of online driver positions
)

// Redis hash fields
const (
	FieldOnline    = "online"
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldUpdatedAt = "ts"
)
