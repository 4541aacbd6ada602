package constants

import "time"

// DriverStaleAfter is the window after which a presence record is left out of nearby queries
const DriverStaleAfter = 5 * time.Minute

const (
	DefaultSearchRadiusKm  = 5.0
	DefaultSurgeMultiplier = 1.0
	GeohashPrecision       = 7
)

// Heat map sampling
const (
	HeatMapCellRadiusKm = 1.0 // drivers counted around each cell center
	HeatMapSaturation   = 5.0 // drivers per cell at which intensity reaches 1
	DefaultHeatMapGrid  = 20
	MaxHeatMapGrid      = 100
)
