package constants

// Redis keys for the shared presence store
const (
	// KeyDriverPresence holds one driver's presence hash
	KeyDriverPresence = "driver:presence:%s"
	// KeyDriverPresenceSet is the set of every driver id that ever reported
	KeyDriverPresenceSet = "drivers:presence"
	// KeyDriverGeo is the geo index of driver positions
	KeyDriverGeo = "drivers:locations"
	// KeyDriverUnindexed holds drivers whose latitude the geo index cannot store
	KeyDriverUnindexed = "drivers:presence:unindexed"
)

// Fields of the driver presence hash
const (
	FieldLatitude    = "lat"
	FieldLongitude   = "lng"
	FieldVehicleType = "vehicle_type"
	FieldIsAvailable = "is_available"
	FieldLastUpdated = "last_updated"
	FieldHeading     = "heading"
	FieldSpeed       = "speed"
	FieldTripID      = "trip_id"
	FieldGeohash     = "geohash"
)
