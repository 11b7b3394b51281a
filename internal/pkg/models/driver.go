package models

import (
	"time"
)

// DefaultDisplayRating is shown for drivers that have not been rated yet.
// Unrated drivers still sort as 0 in availability queries; the stored data
// keeps the rating column NULL until the first rating lands.
const DefaultDisplayRating = 5.0

// Vehicle describes the car a driver operates
type Vehicle struct {
	Make  string `json:"make" db:"vehicle_make"`
	Model string `json:"model" db:"vehicle_model"`
	Year  int    `json:"year" db:"vehicle_year"`
	Color string `json:"color" db:"vehicle_color"`
	Plate string `json:"plate" db:"vehicle_plate"`
}

// Driver represents a driver record in the directory
type Driver struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Phone          string    `json:"phone" db:"phone"`
	Email          string    `json:"email" db:"email"`
	PhotoURL       string    `json:"photo,omitempty" db:"photo_url"`
	Vehicle        Vehicle   `json:"vehicle"`
	Rating         *float64  `json:"rating,omitempty" db:"rating"`
	Available      bool      `json:"available" db:"available"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	IsAdmin        bool      `json:"isAdmin,omitempty" db:"is_admin"`
	LocationID     string    `json:"locationId" db:"location_id"`
	TotalRides     int       `json:"totalRides" db:"total_rides"`
	CompletedRides int       `json:"completedRides" db:"completed_rides"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Eligible reports whether the driver may be assigned a ride
func (d *Driver) Eligible() bool {
	return d.Available && d.IsActive
}

// DisplayRating returns the rating shown to riders
func (d *Driver) DisplayRating() float64 {
	if d.Rating == nil {
		return DefaultDisplayRating
	}
	return *d.Rating
}

// DriverSnapshot is the denormalized driver entry embedded in a ride at
// creation time. It is a point-in-time capture and is never refreshed.
type DriverSnapshot struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Photo  string  `json:"photo,omitempty"`
	Rating float64 `json:"rating"`
}

// DriverRegistrationRequest is the payload for driver onboarding
type DriverRegistrationRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	PhotoURL   string  `json:"photo,omitempty"`
	Vehicle    Vehicle `json:"vehicle"`
	LocationID string  `json:"locationId"`
}

// DriverPosition is a reported driver coordinate used for proximity lookups
type DriverPosition struct {
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Geohash    string    `json:"geohash,omitempty"`
	DistanceKm float64   `json:"distance_km,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
