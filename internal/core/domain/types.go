package domain

// VehicleType represents the class of a vehicle
type VehicleType string

const (
	VehicleTypeCar   VehicleType = "car"
	VehicleTypeBike  VehicleType = "bike"
	VehicleTypeOther VehicleType = "other"
)

// ParseVehicleType validates a raw vehicle type string
func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleTypeCar, VehicleTypeBike, VehicleTypeOther:
		return VehicleType(s), nil
	}
	return "", ErrValidation
}

// OccupiesCarSlot reports whether the vehicle parks in the car-class pool.
// Everything that is not a bike takes a car slot.
func (t VehicleType) OccupiesCarSlot() bool {
	return t != VehicleTypeBike
}

// PassType represents a parking pass duration class
type PassType string

const (
	PassTypeDaily   PassType = "daily"
	PassTypeWeekly  PassType = "weekly"
	PassTypeMonthly PassType = "monthly"
	PassTypeYearly  PassType = "yearly"
)

// ParsePassType validates a raw pass type string
func ParsePassType(s string) (PassType, error) {
	switch PassType(s) {
	case PassTypeDaily, PassTypeWeekly, PassTypeMonthly, PassTypeYearly:
		return PassType(s), nil
	}
	return "", ErrValidation
}

// GuestOwnerName is attached to vehicles first seen at the entry gate
const GuestOwnerName = "Guest"
