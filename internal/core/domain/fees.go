package domain

import (
	"math"
	"time"
)

// Hourly parking rates
const (
	CarHourlyRate  = 5.00
	BikeHourlyRate = 2.00
)

// HourlyRate returns the parking rate for a vehicle class. Cars and
// "other" vehicles share the car rate.
func HourlyRate(vehicleType VehicleType) float64 {
	if vehicleType == VehicleTypeBike {
		return BikeHourlyRate
	}
	return CarHourlyRate
}

// ParkingFee computes the fee for a stay. Fractional hours are charged
// pro rata, rounded to 2 decimal places, with a minimum one-hour charge
// even for stays under an hour.
func ParkingFee(entry, exit time.Time, vehicleType VehicleType) float64 {
	rate := HourlyRate(vehicleType)
	hours := exit.Sub(entry).Hours()
	fee := math.Round(hours*rate*100) / 100
	if fee < rate {
		fee = rate
	}
	return fee
}
