package domain

import "strings"

type VehicleType string

const (
	VehicleBike  VehicleType = "bike"
	VehicleAuto  VehicleType = "auto"
	VehicleSedan VehicleType = "sedan"
	VehicleSUV   VehicleType = "suv"
)

// ParseVehicleType normalizes a ride type filter. "" and "any" return
// ok with an empty type, meaning no filter.
func ParseVehicleType(s string) (VehicleType, bool) {
	switch v := VehicleType(strings.ToLower(strings.TrimSpace(s))); v {
	case "", "any":
		return "", true
	case VehicleBike, VehicleAuto, VehicleSedan, VehicleSUV:
		return v, true
	default:
		return "", false
	}
}

type Driver struct {
	ID          string // stable UUID derived from the phone number
	Name        string
	Phone       string
	VehicleType VehicleType
	Rating      float64
	Available   bool
}

// Offer is a priced ride option from one driver.
type Offer struct {
	Driver     Driver
	Fare       float64
	ETAMinutes int
}
