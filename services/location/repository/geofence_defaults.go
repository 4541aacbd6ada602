package repository

import (
	"context"

	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location"
)

type defaultGeofenceSource struct{}

// NewDefaultGeofenceSource returns the built-in Chennai zones
func NewDefaultGeofenceSource() location.GeofenceSource {
	return defaultGeofenceSource{}
}

func (defaultGeofenceSource) Name() string { return "defaults" }

func (defaultGeofenceSource) Load(ctx context.Context) ([]models.Geofence, error) {
	return DefaultGeofences(), nil
}

// DefaultGeofences returns a fresh copy of the built-in zones
func DefaultGeofences() []models.Geofence {
	return []models.Geofence{
		{
			ID:              "chennai-airport",
			Name:            "Chennai International Airport",
			Type:            models.GeofenceAirport,
			Center:          models.Coordinates{Latitude: 12.9941, Longitude: 80.1709},
			RadiusMeters:    2000,
			SurgeMultiplier: 1.2,
			PickupPoints: []models.PickupPoint{
				{
					ID:           "maa-arrivals-t1",
					Name:         "Domestic Arrivals Pickup",
					Location:     models.Coordinates{Latitude: 12.9951, Longitude: 80.1693},
					Instructions: "Exit arrivals and walk to the app cab bay in the multi-level car park, level 1",
				},
				{
					ID:           "maa-arrivals-t2",
					Name:         "International Arrivals Pickup",
					Location:     models.Coordinates{Latitude: 12.9925, Longitude: 80.1732},
					Instructions: "Use the pedestrian bridge from international arrivals to the app cab bay",
				},
			},
			SpecialInstructions: "Drivers must wait in the designated holding area until a trip is assigned",
			Constraints: &models.GeofenceConstraints{
				AllowedVehicleTypes: []string{"sedan", "suv", "hatchback"},
				MaxWaitMinutes:      20,
				OperatingHours:      "00:00-24:00",
			},
			IsActive: true,
		},
		{
			ID:              "chennai-central",
			Name:            "Chennai Central Railway Station",
			Type:            models.GeofenceRailwayStation,
			Center:          models.Coordinates{Latitude: 13.0827, Longitude: 80.2757},
			RadiusMeters:    500,
			SurgeMultiplier: 1.1,
			PickupPoints: []models.PickupPoint{
				{
					ID:           "mas-gate-5",
					Name:         "Gate 5 Prepaid Bay",
					Location:     models.Coordinates{Latitude: 13.0822, Longitude: 80.2749},
					Instructions: "Pickup next to the prepaid taxi counter at gate 5",
				},
			},
			IsActive: true,
		},
		{
			ID:              "chennai-egmore",
			Name:            "Chennai Egmore Railway Station",
			Type:            models.GeofenceRailwayStation,
			Center:          models.Coordinates{Latitude: 13.0780, Longitude: 80.2609},
			RadiusMeters:    400,
			SurgeMultiplier: 1.1,
			PickupPoints: []models.PickupPoint{
				{
					ID:       "ms-main-entrance",
					Name:     "Gandhi Irwin Road Entrance",
					Location: models.Coordinates{Latitude: 13.0773, Longitude: 80.2613},
				},
			},
			IsActive: true,
		},
		{
			ID:              "cmbt-koyambedu",
			Name:            "CMBT Koyambedu Bus Stand",
			Type:            models.GeofenceBusStand,
			Center:          models.Coordinates{Latitude: 13.0678, Longitude: 80.2058},
			RadiusMeters:    600,
			SurgeMultiplier: 1.1,
			PickupPoints: []models.PickupPoint{
				{
					ID:           "cmbt-platform-exit",
					Name:         "Inner Ring Road Exit",
					Location:     models.Coordinates{Latitude: 13.0689, Longitude: 80.2049},
					Instructions: "Meet the driver outside the inner ring road exit",
				},
			},
			IsActive: true,
		},
		{
			ID:              "phoenix-marketcity",
			Name:            "Phoenix Marketcity Velachery",
			Type:            models.GeofenceMall,
			Center:          models.Coordinates{Latitude: 12.9915, Longitude: 80.2167},
			RadiusMeters:    300,
			SurgeMultiplier: 1.0,
			PickupPoints: []models.PickupPoint{
				{
					ID:       "phoenix-gate-2",
					Name:     "Gate 2 Cab Bay",
					Location: models.Coordinates{Latitude: 12.9909, Longitude: 80.2172},
				},
			},
			IsActive: true,
		},
		{
			ID:              "express-avenue",
			Name:            "Express Avenue Mall",
			Type:            models.GeofenceMall,
			Center:          models.Coordinates{Latitude: 13.0585, Longitude: 80.2640},
			RadiusMeters:    250,
			SurgeMultiplier: 1.0,
			PickupPoints: []models.PickupPoint{
				{
					ID:       "ea-whites-road",
					Name:     "Whites Road Drop-off",
					Location: models.Coordinates{Latitude: 13.0590, Longitude: 80.2633},
				},
			},
			IsActive: true,
		},
		{
			ID:              "apollo-greams-road",
			Name:            "Apollo Hospitals Greams Road",
			Type:            models.GeofenceHospital,
			Center:          models.Coordinates{Latitude: 13.0614, Longitude: 80.2531},
			RadiusMeters:    200,
			SurgeMultiplier: 1.0,
			PickupPoints: []models.PickupPoint{
				{
					ID:           "apollo-main-porch",
					Name:         "Main Porch",
					Location:     models.Coordinates{Latitude: 13.0612, Longitude: 80.2534},
					Instructions: "Emergency lane must be kept clear",
				},
			},
			SpecialInstructions: "Priority pickup for patients, no horn zone",
			IsActive:            true,
		},
	}
}
